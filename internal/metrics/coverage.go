package metrics

import (
	"time"

	"github.com/san-kum/membrane/internal/membrane"
)

// Coverage is the fraction of frames that produced a membrane.
type Coverage struct {
	name       string
	degenerate int
	samples    int
}

func NewCoverage() *Coverage {
	return &Coverage{
		name: "coverage",
	}
}

func (c *Coverage) Name() string {
	return c.name
}

func (c *Coverage) Observe(f membrane.Frame, _ time.Duration) {
	c.samples++
	if !f.HasMembrane() {
		c.degenerate++
	}
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.degenerate)/float64(c.samples)
}

func (c *Coverage) Reset() {
	c.degenerate = 0
	c.samples = 0
}
