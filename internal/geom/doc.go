// Package geom provides the planar primitives shared by the membrane
// pipeline. Points are gg vectors; this package adds the orientation
// predicate and ordering used by the hull solver.
package geom
