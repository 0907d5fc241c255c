package sampler

import (
	"math"
	"testing"

	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/scene"
)

func TestCirclePointsDensity(t *testing.T) {
	tests := []struct {
		cx, cy, r, margin float64
		n                 int
	}{
		{100, 100, 10, 16, 50},
		{0, 0, 5, 0, 3},
		{-40, 12.5, 36.8, 16, 100},
	}

	for _, tt := range tests {
		pts := CirclePoints(tt.cx, tt.cy, tt.r, tt.margin, tt.n)
		if len(pts) != tt.n {
			t.Fatalf("expected %d points, got %d", tt.n, len(pts))
		}
		center := geom.Pt(tt.cx, tt.cy)
		for i, p := range pts {
			if d := geom.Dist(center, p); math.Abs(d-(tt.r+tt.margin)) > 1e-9 {
				t.Errorf("point %d at distance %f, want %f", i, d, tt.r+tt.margin)
			}
		}
	}
}

func TestCirclePointsStartAtZeroAngle(t *testing.T) {
	pts := CirclePoints(0, 0, 10, 16, 4)
	want := []geom.Point{{X: 26, Y: 0}, {X: 0, Y: 26}, {X: -26, Y: 0}, {X: 0, Y: -26}}
	for i := range want {
		if geom.Dist(pts[i], want[i]) > 1e-9 {
			t.Errorf("point %d: got %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestCirclePointsNonPositiveCount(t *testing.T) {
	if pts := CirclePoints(0, 0, 1, 1, 0); pts != nil {
		t.Errorf("expected nil, got %d points", len(pts))
	}
	if pts := CirclePoints(0, 0, 1, 1, -3); pts != nil {
		t.Errorf("expected nil, got %d points", len(pts))
	}
}

func TestSampleConcatenatesInOrder(t *testing.T) {
	circles := []scene.Circle{{X: 0, Y: 0, R: 5}, {X: 1000, Y: 1000, R: 5}}
	pts := Sample(circles, 16, 50)

	if len(pts) != 100 {
		t.Fatalf("expected 100 points, got %d", len(pts))
	}
	for i, p := range pts {
		c := circles[i/50]
		if d := geom.Dist(c.Center(), p); math.Abs(d-21) > 1e-9 {
			t.Errorf("point %d not on circle %d", i, i/50)
		}
	}
}

func TestSampleEmpty(t *testing.T) {
	if pts := Sample(nil, 16, 50); len(pts) != 0 {
		t.Errorf("expected no points, got %d", len(pts))
	}
}
