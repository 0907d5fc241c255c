package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/render"
)

const ringSegments = 72

// Surface draws into the current raylib frame. It must only be used between
// BeginDrawing and EndDrawing.
type Surface struct{}

func (Surface) Clear(bg color.RGBA) {
	rl.ClearBackground(toColor(bg))
}

func (Surface) StrokeCircle(c geom.Point, r float64, s render.Stroke) {
	half := s.Width / 2
	inner := max(r-half, 0)
	rl.DrawRing(toVec(c), float32(inner), float32(r+half), 0, 360, ringSegments, toColor(s.Color))
}

// StrokePath draws each quadratic segment and fills a disc at every junction
// so corners join round.
func (Surface) StrokePath(p curve.Path, s render.Stroke) {
	if p.Empty() {
		return
	}
	col := toColor(s.Color)
	w := float32(s.Width)
	from := p.Start
	rl.DrawCircleV(toVec(from), w/2, col)
	for _, q := range p.Segments {
		rl.DrawSplineSegmentBezierQuadratic(toVec(from), toVec(q.Ctrl), toVec(q.End), w, col)
		rl.DrawCircleV(toVec(q.End), w/2, col)
		from = q.End
	}
}

func toVec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
