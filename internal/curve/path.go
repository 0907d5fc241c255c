package curve

import (
	"errors"

	"github.com/gogpu/gg"

	"github.com/san-kum/membrane/internal/geom"
)

// ErrDegenerateHull indicates a hull with fewer than three vertices.
var ErrDegenerateHull = errors.New("curve: hull has fewer than 3 vertices")

// Quad is a quadratic Bézier segment continuing from the previous end point.
type Quad struct {
	Ctrl, End geom.Point
}

// Path is a closed sequence of quadratic segments starting at Start.
type Path struct {
	Start    geom.Point
	Segments []Quad
}

func (p Path) Len() int { return len(p.Segments) }

func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Closed reports whether the last segment ends at Start.
func (p Path) Closed() bool {
	if p.Empty() {
		return false
	}
	return p.Segments[len(p.Segments)-1].End == p.Start
}

// Flatten approximates the path with a polyline, evaluating each segment
// at steps evenly spaced parameters. The first point is Start and the last
// is the final segment's end point.
func (p Path) Flatten(steps int) []geom.Point {
	if p.Empty() {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	out := make([]geom.Point, 0, 1+len(p.Segments)*steps)
	out = append(out, p.Start)
	from := p.Start
	for _, q := range p.Segments {
		for i := 1; i <= steps; i++ {
			out = append(out, q.At(from, float64(i)/float64(steps)))
		}
		from = q.End
	}
	return out
}

// At evaluates the segment starting at from for t in [0, 1].
func (q Quad) At(from geom.Point, t float64) geom.Point {
	return gg.NewQuadBez(from, q.Ctrl, q.End).Eval(t)
}
