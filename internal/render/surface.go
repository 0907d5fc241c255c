package render

import (
	"image/color"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
)

// Stroke is an outline style.
type Stroke struct {
	Color color.RGBA
	Width float64
}

// Style holds the strokes for one frame.
type Style struct {
	Background color.RGBA
	Circle     Stroke
	Membrane   Stroke
}

// Surface is the drawing target of a frame. StrokePath must join segments
// with round joins.
type Surface interface {
	Clear(bg color.RGBA)
	StrokeCircle(center geom.Point, r float64, s Stroke)
	StrokePath(p curve.Path, s Stroke)
}

// Scheduler runs fn once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func())
}
