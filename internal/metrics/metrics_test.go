package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/scene"
)

func TestComputeTime(t *testing.T) {
	m := NewComputeTime()
	if m.Value() != 0 {
		t.Errorf("expected 0 before any frame, got %f", m.Value())
	}

	m.Observe(membrane.Frame{}, 2*time.Millisecond)
	m.Observe(membrane.Frame{}, 4*time.Millisecond)
	if math.Abs(m.Value()-3) > 1e-9 {
		t.Errorf("expected mean 3ms, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestCoverage(t *testing.T) {
	m := NewCoverage()
	if m.Value() != 1.0 {
		t.Errorf("expected full coverage with no frames, got %f", m.Value())
	}

	ok := membrane.Compute([]scene.Circle{{X: 0, Y: 0, R: 10}}, membrane.DefaultParams())
	empty := membrane.Compute(nil, membrane.DefaultParams())

	m.Observe(ok, 0)
	m.Observe(ok, 0)
	m.Observe(ok, 0)
	m.Observe(empty, 0)
	if math.Abs(m.Value()-0.75) > 1e-9 {
		t.Errorf("expected 0.75, got %f", m.Value())
	}
}

func TestVertices(t *testing.T) {
	m := NewVertices()
	m.Observe(membrane.Frame{}, 0)
	m.Observe(membrane.Compute([]scene.Circle{{X: 0, Y: 0, R: 10}}, membrane.DefaultParams()), 0)

	if math.Abs(m.Value()-25) > 1e-9 {
		t.Errorf("expected mean of 0 and 50 vertices, got %f", m.Value())
	}
}

func TestStandard(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Standard() {
		names[m.Name()] = true
	}
	for _, want := range []string{"compute_ms", "coverage", "vertices"} {
		if !names[want] {
			t.Errorf("missing metric %s", want)
		}
	}
}
