// Package hull computes convex hulls of planar point sets with Andrew's
// monotone chain algorithm.
package hull

import (
	"math"
	"sort"

	"github.com/san-kum/membrane/internal/geom"
)

// Convex returns the convex hull of points in counter-clockwise order.
// Collinear points are dropped, so no three consecutive hull vertices are
// collinear. Fewer than three input points are returned as a sorted copy.
// The input slice is not modified.
func Convex(points []geom.Point) []geom.Point {
	n := len(points)
	sorted := make([]geom.Point, n)
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return geom.Less(sorted[i], sorted[j]) })
	if n < 3 {
		return sorted
	}

	lower := make([]geom.Point, 0, n)
	for _, p := range sorted {
		for len(lower) >= 2 && geom.Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]geom.Point, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && geom.Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// the last point of each chain is the first point of the other
	h := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(h) == 2 && h[0] == h[1] {
		return h[:1]
	}
	return h
}

// Contains reports whether p lies inside or on the boundary of a
// counter-clockwise hull, within eps.
func Contains(h []geom.Point, p geom.Point, eps float64) bool {
	if len(h) < 3 {
		return false
	}
	for i := range h {
		a, b := h[i], h[(i+1)%len(h)]
		// normalise by edge length so eps is a distance
		if geom.Cross(a, b, p)/geom.Dist(a, b) < -eps {
			return false
		}
	}
	return true
}

// Area is the signed shoelace area; positive for counter-clockwise hulls.
func Area(h []geom.Point) float64 {
	if len(h) < 3 {
		return 0
	}
	var sum float64
	for i := range h {
		a, b := h[i], h[(i+1)%len(h)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func Perimeter(h []geom.Point) float64 {
	switch len(h) {
	case 0, 1:
		return 0
	case 2:
		return 2 * geom.Dist(h[0], h[1])
	}
	var sum float64
	for i := range h {
		sum += geom.Dist(h[i], h[(i+1)%len(h)])
	}
	return sum
}

// MinTurn returns the smallest cross product of consecutive edges around
// the hull. A strictly convex counter-clockwise hull has MinTurn > 0.
func MinTurn(h []geom.Point) float64 {
	if len(h) < 3 {
		return 0
	}
	minTurn := math.Inf(1)
	for i := range h {
		c := geom.Cross(h[i], h[(i+1)%len(h)], h[(i+2)%len(h)])
		if c < minTurn {
			minTurn = c
		}
	}
	return minTurn
}
