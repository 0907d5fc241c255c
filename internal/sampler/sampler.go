// Package sampler turns circles into discrete boundary points for the
// hull solver.
package sampler

import (
	"math"

	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/scene"
)

// CirclePoints returns n points evenly spaced by angle on the circle of
// radius r+margin centred at (cx, cy), starting at angle 0.
func CirclePoints(cx, cy, r, margin float64, n int) []geom.Point {
	if n <= 0 {
		return nil
	}
	pts := make([]geom.Point, n)
	appendCircle(pts[:0], cx, cy, r+margin, n)
	return pts
}

// Sample concatenates the boundary points of every circle in order.
func Sample(circles []scene.Circle, margin float64, n int) []geom.Point {
	if n <= 0 || len(circles) == 0 {
		return nil
	}
	pts := make([]geom.Point, 0, len(circles)*n)
	for _, c := range circles {
		pts = appendCircle(pts, c.X, c.Y, c.R+margin, n)
	}
	return pts
}

func appendCircle(dst []geom.Point, cx, cy, radius float64, n int) []geom.Point {
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		dst = append(dst, geom.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return dst
}
