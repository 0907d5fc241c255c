package metrics

import (
	"time"

	"github.com/san-kum/membrane/internal/membrane"
)

// Vertices is the mean hull vertex count per frame.
type Vertices struct {
	name    string
	sum     int
	samples int
}

func NewVertices() *Vertices {
	return &Vertices{
		name: "vertices",
	}
}

func (v *Vertices) Name() string { return v.name }

func (v *Vertices) Observe(f membrane.Frame, _ time.Duration) {
	v.sum += len(f.Hull)
	v.samples++
}

func (v *Vertices) Value() float64 {
	if v.samples == 0 {
		return 0
	}
	return float64(v.sum) / float64(v.samples)
}

func (v *Vertices) Reset() {
	v.sum = 0
	v.samples = 0
}
