package metrics

import (
	"time"

	"github.com/san-kum/membrane/internal/membrane"
)

// ComputeTime is the mean pipeline time per frame in milliseconds.
type ComputeTime struct {
	name    string
	total   time.Duration
	samples int
}

func NewComputeTime() *ComputeTime {
	return &ComputeTime{
		name: "compute_ms",
	}
}

func (c *ComputeTime) Name() string {
	return c.name
}

func (c *ComputeTime) Observe(_ membrane.Frame, elapsed time.Duration) {
	c.total += elapsed
	c.samples++
}

func (c *ComputeTime) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples) / float64(time.Millisecond)
}

func (c *ComputeTime) Reset() {
	c.total = 0
	c.samples = 0
}
