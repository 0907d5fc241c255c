package geom

import "github.com/gogpu/gg"

// Point is a position or displacement in the plane. It shares gg's vector
// type so raster output needs no conversion.
type Point = gg.Point

func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Lerp returns a + (b-a)*t.
func Lerp(a, b Point, t float64) Point { return a.Lerp(b, t) }

func Midpoint(a, b Point) Point { return gg.NewLine(a, b).Midpoint() }

func Dist(a, b Point) float64 { return a.Distance(b) }

// Cross returns the z component of (a-o) x (b-o). Positive means o->a->b
// turns left (counter-clockwise).
func Cross(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// Less orders points by X, then Y.
func Less(a, b Point) bool {
	if a.X == b.X {
		return a.Y < b.Y
	}
	return a.X < b.X
}
