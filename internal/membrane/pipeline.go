package membrane

import (
	"fmt"

	"github.com/san-kum/membrane/internal/curve"
	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/hull"
	"github.com/san-kum/membrane/internal/sampler"
	"github.com/san-kum/membrane/internal/scene"
)

const (
	DefaultMargin           = 16.0
	DefaultSamplesPerCircle = 50
)

type Params struct {
	Margin           float64
	SamplesPerCircle int
	Blend            float64
}

func DefaultParams() Params {
	return Params{
		Margin:           DefaultMargin,
		SamplesPerCircle: DefaultSamplesPerCircle,
		Blend:            curve.DefaultBlend,
	}
}

// Frame is the result of one pipeline pass. Err is non-nil only for
// degenerate geometry, in which case Path is empty and the membrane is not
// drawn.
type Frame struct {
	Points []geom.Point
	Hull   []geom.Point
	Path   curve.Path
	Err    error
}

func (f Frame) HasMembrane() bool { return f.Err == nil && !f.Path.Empty() }

// Compute samples circles, builds their hull and rounds it. It never
// panics and returns a fresh Frame on every call.
func Compute(circles []scene.Circle, p Params) Frame {
	var f Frame
	f.Points = sampler.Sample(circles, p.Margin, p.SamplesPerCircle)
	f.Hull = hull.Convex(f.Points)
	if len(f.Points) < 3 {
		f.Err = fmt.Errorf("%d sample points: %w", len(f.Points), curve.ErrDegenerateHull)
		return f
	}
	f.Path, f.Err = curve.NewBuilder(p.Blend).Build(f.Hull)
	return f
}

// Stats summarises a frame for status displays and the bench command.
type Stats struct {
	Circles   int
	Samples   int
	Vertices  int
	Perimeter float64
	Area      float64
}

func (f Frame) Stats(circles int) Stats {
	return Stats{
		Circles:   circles,
		Samples:   len(f.Points),
		Vertices:  len(f.Hull),
		Perimeter: hull.Perimeter(f.Hull),
		Area:      hull.Area(f.Hull),
	}
}
