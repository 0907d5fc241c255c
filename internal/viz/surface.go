package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/render"
)

// flattenSteps is the number of chords per membrane segment.
const flattenSteps = 4

// Viewport maps scene coordinates to canvas dots: dot = (p - Origin) * Scale.
type Viewport struct {
	Origin geom.Point
	Scale  float64
}

func (v Viewport) ToDots(p geom.Point) (int, int) {
	d := p.Sub(v.Origin).Mul(v.Scale)
	return int(math.Round(d.X)), int(math.Round(d.Y))
}

// CellToScene returns the scene point under the centre of a terminal cell.
func (v Viewport) CellToScene(col, row int) geom.Point {
	dots := geom.Pt(float64(col*2)+1, float64(row*4)+2)
	return dots.Div(v.Scale).Add(v.Origin)
}

// Surface draws circles and the membrane onto separate canvases so the
// view can color them independently. Stroke widths are ignored: a dot is
// the thinnest and thickest line a Braille cell can show.
type Surface struct {
	Circles  *Canvas
	Membrane *Canvas
	View     Viewport
}

func NewSurface(cols, rows int, view Viewport) *Surface {
	return &Surface{
		Circles:  NewCanvas(cols, rows),
		Membrane: NewCanvas(cols, rows),
		View:     view,
	}
}

// Resize replaces both canvases with blank ones of the given cell size.
func (s *Surface) Resize(cols, rows int) {
	s.Circles = NewCanvas(cols, rows)
	s.Membrane = NewCanvas(cols, rows)
}

func (s *Surface) Clear(color.RGBA) {
	s.Circles.Clear()
	s.Membrane.Clear()
}

func (s *Surface) StrokeCircle(c geom.Point, r float64, _ render.Stroke) {
	x, y := s.View.ToDots(c)
	s.Circles.DrawCircle(float64(x), float64(y), r*s.View.Scale)
}

func (s *Surface) StrokePath(p curve.Path, _ render.Stroke) {
	pts := p.Flatten(flattenSteps)
	for i := 1; i < len(pts); i++ {
		x0, y0 := s.View.ToDots(pts[i-1])
		x1, y1 := s.View.ToDots(pts[i])
		s.Membrane.DrawLine(x0, y0, x1, y1)
	}
}
