package curve

import "github.com/san-kum/membrane/internal/geom"

// DefaultBlend places each edge anchor at the edge midpoint.
const DefaultBlend = 0.5

// Builder turns hulls into membrane paths. Blend is the position of each
// edge anchor along its edge; 0.5 is the midpoint.
type Builder struct {
	Blend float64
}

// NewBuilder returns a Builder, falling back to DefaultBlend when blend is
// not strictly between 0 and 1.
func NewBuilder(blend float64) Builder {
	if !(blend > 0 && blend < 1) {
		blend = DefaultBlend
	}
	return Builder{Blend: blend}
}

// Build is Builder{DefaultBlend}.Build.
func Build(h []geom.Point) (Path, error) {
	return Builder{Blend: DefaultBlend}.Build(h)
}

// Build walks the hull in order. For each vertex triple (start, end, next)
// it emits a segment controlled by end and terminating at the anchor of
// edge end->next. The path starts at the anchor of the first edge, so the
// k-th segment closes it.
func (b Builder) Build(h []geom.Point) (Path, error) {
	k := len(h)
	if k < 3 {
		return Path{}, ErrDegenerateHull
	}
	blend := b.Blend
	if !(blend > 0 && blend < 1) {
		blend = DefaultBlend
	}
	anchor := func(i int) geom.Point {
		a, c := h[i%k], h[(i+1)%k]
		if blend == DefaultBlend {
			return geom.Midpoint(a, c)
		}
		return geom.Lerp(a, c, blend)
	}

	path := Path{
		Start:    anchor(0),
		Segments: make([]Quad, 0, k),
	}
	for i := 0; i < k; i++ {
		path.Segments = append(path.Segments, Quad{
			Ctrl: h[(i+1)%k],
			End:  anchor(i + 1),
		})
	}
	return path, nil
}
