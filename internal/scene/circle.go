package scene

import (
	"math"

	"github.com/san-kum/membrane/internal/geom"
)

// Circle is a user-editable disc. Circles have no identity beyond their
// position in the Store.
type Circle struct {
	X, Y, R float64
}

func (c Circle) Center() geom.Point { return geom.Pt(c.X, c.Y) }

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p geom.Point) bool {
	dx, dy := c.X-p.X, c.Y-p.Y
	return dx*dx+dy*dy < c.R*c.R
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
