package geom

import (
	"math"
	"testing"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name    string
		o, a, b Point
		sign    int
	}{
		{"left turn", Pt(0, 0), Pt(1, 0), Pt(1, 1), 1},
		{"right turn", Pt(0, 0), Pt(1, 0), Pt(1, -1), -1},
		{"collinear", Pt(0, 0), Pt(1, 1), Pt(2, 2), 0},
	}

	for _, tt := range tests {
		c := Cross(tt.o, tt.a, tt.b)
		switch {
		case tt.sign > 0 && c <= 0, tt.sign < 0 && c >= 0, tt.sign == 0 && c != 0:
			t.Errorf("%s: unexpected cross %f", tt.name, c)
		}
	}
}

func TestLerpMidpoint(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, -4)
	if got := Lerp(a, b, 0.5); got != Midpoint(a, b) {
		t.Errorf("lerp 0.5 = %v, midpoint = %v", got, Midpoint(a, b))
	}
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("lerp 0 = %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("lerp 1 = %v", got)
	}
}

func TestMidpointIsHalfway(t *testing.T) {
	a, b := Pt(-3, 7), Pt(5, 1)
	m := Midpoint(a, b)
	if math.Abs(Dist(a, m)-Dist(m, b)) > 1e-12 || Cross(a, m, b) != 0 {
		t.Errorf("midpoint %v is not halfway along %v-%v", m, a, b)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Pt(1, 1), Pt(4, 5)); math.Abs(d-5) > 1e-12 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestLess(t *testing.T) {
	if !Less(Pt(0, 5), Pt(1, 0)) {
		t.Error("x should dominate")
	}
	if !Less(Pt(1, 0), Pt(1, 2)) {
		t.Error("y should break ties")
	}
	if Less(Pt(1, 2), Pt(1, 2)) {
		t.Error("equal points are not less")
	}
}
