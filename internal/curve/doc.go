// Package curve converts a convex hull into the closed, rounded membrane
// path.
//
// Every hull edge contributes an anchor (its midpoint by default) and every
// hull vertex becomes the control point of a quadratic segment joining the
// anchors on either side of it. The resulting path touches each edge and
// bulges toward, but never reaches, each vertex:
//
//	path, err := curve.Build(hull.Convex(points))
//	if errors.Is(err, curve.ErrDegenerateHull) {
//	    // draw nothing this frame
//	}
package curve
