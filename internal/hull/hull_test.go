package hull

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/sampler"
	"github.com/san-kum/membrane/internal/scene"
)

func randomPoints(r *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(r.Float64()*400-200, r.Float64()*300-150)
	}
	return pts
}

func TestConvexSquareWithInterior(t *testing.T) {
	pts := []geom.Point{
		{1, 1}, {0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 0.5}, {0.5, 1.5},
	}
	h := Convex(pts)

	want := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	if len(h) != len(want) {
		t.Fatalf("expected %d vertices, got %d: %v", len(want), len(h), h)
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, h[i], want[i])
		}
	}
	if a := Area(h); a != 4 {
		t.Errorf("expected area 4, got %f", a)
	}
	if p := Perimeter(h); p != 8 {
		t.Errorf("expected perimeter 8, got %f", p)
	}
}

func TestConvexContainsAllInputs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		pts := randomPoints(r, 3+r.Intn(200))
		h := Convex(pts)
		if len(h) < 3 {
			t.Fatalf("trial %d: degenerate hull for random input", trial)
		}
		for _, p := range pts {
			if !Contains(h, p, 1e-9) {
				t.Fatalf("trial %d: point %v outside hull", trial, p)
			}
		}
	}
}

func TestConvexStrictlyLeftTurns(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		h := Convex(randomPoints(r, 10+r.Intn(100)))
		if m := MinTurn(h); m <= 0 {
			t.Fatalf("trial %d: non-left turn %g in %v", trial, m, h)
		}
		if Area(h) <= 0 {
			t.Fatalf("trial %d: hull not counter-clockwise", trial)
		}
	}
}

func TestConvexNoDuplicateConsecutive(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 4}}
	h := Convex(pts)
	for i := range h {
		if h[i] == h[(i+1)%len(h)] {
			t.Fatalf("duplicate consecutive vertex at %d: %v", i, h)
		}
	}
	if len(h) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(h))
	}
}

func TestConvexDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []geom.Point
		want int
	}{
		{"empty", nil, 0},
		{"single", []geom.Point{{X: 3, Y: 4}}, 1},
		{"pair", []geom.Point{{X: 5, Y: 5}, {X: 1, Y: 1}}, 2},
		{"collinear", []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: -1, Y: -1}}, 2},
		{"vertical", []geom.Point{{X: 1, Y: 0}, {X: 1, Y: 5}, {X: 1, Y: 2}}, 2},
		{"coincident", []geom.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}}, 1},
	}

	for _, tt := range tests {
		h := Convex(tt.pts)
		if len(h) != tt.want {
			t.Errorf("%s: expected %d points, got %d: %v", tt.name, tt.want, len(h), h)
		}
	}
}

func TestConvexCollinearKeepsExtremes(t *testing.T) {
	h := Convex([]geom.Point{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 3, Y: 3}, {X: 1, Y: 1}})
	if len(h) != 2 || h[0] != (geom.Pt(0, 0)) || h[1] != (geom.Pt(3, 3)) {
		t.Errorf("expected extremes, got %v", h)
	}
}

func TestConvexCollapsesCollinearEdgePoints(t *testing.T) {
	// midpoints on every edge of a triangle
	pts := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 2}, {X: 2, Y: 4}, {X: 1, Y: 2}}
	h := Convex(pts)
	if len(h) != 3 {
		t.Errorf("expected triangle, got %v", h)
	}
}

func TestConvexDoesNotMutateInput(t *testing.T) {
	pts := []geom.Point{{X: 3, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 1}}
	orig := append([]geom.Point(nil), pts...)
	Convex(pts)
	for i := range pts {
		if pts[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestConvexIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	pts := randomPoints(r, 120)
	a, b := Convex(pts), Convex(pts)
	if len(a) != len(b) {
		t.Fatal("hull size changed between runs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs", i)
		}
	}
	again := Convex(a)
	if len(again) != len(a) {
		t.Errorf("hull of hull changed size: %d -> %d", len(a), len(again))
	}
}

func TestConvexSampledCircle(t *testing.T) {
	pts := sampler.CirclePoints(100, 100, 10, 16, 50)
	h := Convex(pts)
	if len(h) != 50 {
		t.Errorf("expected every sample on the hull, got %d", len(h))
	}
	for _, p := range h {
		if d := geom.Dist(geom.Pt(100, 100), p); math.Abs(d-26) > 1e-9 {
			t.Errorf("vertex %v off the sampling circle", p)
		}
	}
}

func TestConvexTwoDistantCircles(t *testing.T) {
	circles := []scene.Circle{{X: 0, Y: 0, R: 5}, {X: 1000, Y: 1000, R: 5}}
	pts := sampler.Sample(circles, 16, 50)
	h := Convex(pts)

	var near, far int
	for _, p := range h {
		switch {
		case geom.Dist(p, circles[0].Center()) < 22:
			near++
		case geom.Dist(p, circles[1].Center()) < 22:
			far++
		default:
			t.Fatalf("vertex %v belongs to neither circle", p)
		}
	}
	if near == 0 || far == 0 {
		t.Errorf("hull does not span both circles: near=%d far=%d", near, far)
	}
	for _, p := range pts {
		if !Contains(h, p, 1e-9) {
			t.Fatalf("sample %v outside hull", p)
		}
	}
}

func TestContainsDegenerate(t *testing.T) {
	if Contains([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, geom.Pt(0.5, 0.5), 1e-9) {
		t.Error("degenerate hull should contain nothing")
	}
}

func BenchmarkConvex(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	pts := randomPoints(r, 15*50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Convex(pts)
	}
}
