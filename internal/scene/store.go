package scene

import (
	"fmt"
	"math"
)

// Store is the ordered, mutable circle collection that every frame reads.
// It is owned by one goroutine: the frontend's event pump mutates it
// between frames and the render loop reads it during a frame.
type Store struct {
	circles   []Circle
	minRadius float64
}

// NewStore creates a store that never holds a radius below minRadius.
// Seed circles are copied in order with their radii clamped.
func NewStore(minRadius float64, seed ...Circle) *Store {
	s := &Store{
		circles:   make([]Circle, 0, len(seed)),
		minRadius: minRadius,
	}
	for _, c := range seed {
		if !finite(c.X, c.Y, c.R) {
			continue
		}
		c.R = s.clamp(c.R)
		s.circles = append(s.circles, c)
	}
	return s
}

func (s *Store) MinRadius() float64 { return s.minRadius }

func (s *Store) Len() int { return len(s.circles) }

// Circles returns the live backing slice. It is valid until the next
// mutation and must not be retained across frames.
func (s *Store) Circles() []Circle { return s.circles }

func (s *Store) At(i int) (Circle, bool) {
	if i < 0 || i >= len(s.circles) {
		return Circle{}, false
	}
	return s.circles[i], true
}

// Add appends a circle and returns its index.
func (s *Store) Add(x, y, r float64) (int, error) {
	if !finite(x, y, r) {
		return -1, ErrNonFinite
	}
	s.circles = append(s.circles, Circle{X: x, Y: y, R: s.clamp(r)})
	return len(s.circles) - 1, nil
}

func (s *Store) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.circles = append(s.circles[:i], s.circles[i+1:]...)
	return nil
}

func (s *Store) Move(i int, x, y float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	if !finite(x, y) {
		return ErrNonFinite
	}
	s.circles[i].X, s.circles[i].Y = x, y
	return nil
}

// Resize sets the radius of circle i, clamped to the minimum radius.
func (s *Store) Resize(i int, r float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	if !finite(r) {
		return ErrNonFinite
	}
	s.circles[i].R = s.clamp(r)
	return nil
}

func (s *Store) Clear() { s.circles = s.circles[:0] }

// HitTest returns the index of the first circle containing (x, y), or -1.
func (s *Store) HitTest(x, y float64) int {
	for i, c := range s.circles {
		dx, dy := c.X-x, c.Y-y
		if dx*dx+dy*dy < c.R*c.R {
			return i
		}
	}
	return -1
}

// Snapshot returns a copy of the circles for callers that outlive a frame.
func (s *Store) Snapshot() []Circle {
	out := make([]Circle, len(s.circles))
	copy(out, s.circles)
	return out
}

func (s *Store) clamp(r float64) float64 { return math.Max(r, s.minRadius) }

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.circles) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.circles))
	}
	return nil
}
