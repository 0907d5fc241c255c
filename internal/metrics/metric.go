package metrics

import (
	"time"

	"github.com/san-kum/membrane/internal/membrane"
)

// Metric accumulates a running value over rendered frames.
type Metric interface {
	Name() string
	Observe(f membrane.Frame, elapsed time.Duration)
	Value() float64
	Reset()
}

// Standard returns a fresh set of the metrics shown by the frontends.
func Standard() []Metric {
	return []Metric{NewComputeTime(), NewCoverage(), NewVertices()}
}
