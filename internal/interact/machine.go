// Package interact maps pointer input onto scene edits.
//
// The Machine has three states. Idle waits for a press. Dragging moves a
// circle, keeping the offset between the pointer and the centre where the
// press landed. Resizing grows a freshly created circle so its edge follows
// the pointer.
package interact

import (
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/membrane/internal/geom"
	"github.com/san-kum/membrane/internal/scene"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type Mode int

const (
	Idle Mode = iota
	Dragging
	Resizing
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "idle"
	}
}

type Machine struct {
	store  *scene.Store
	log    *zap.Logger
	mode   Mode
	index  int
	offset geom.Point
}

func NewMachine(store *scene.Store, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{store: store, log: log, index: -1}
}

func (m *Machine) Mode() Mode { return m.mode }

// Active returns the index of the circle being dragged or resized, or -1.
func (m *Machine) Active() int {
	if m.mode == Idle {
		return -1
	}
	return m.index
}

// Press handles a button going down at p. The right button deletes the
// circle under p; any other button drags it. Any button over empty space
// adds a circle and resizes it. A press while a gesture is in progress is
// ignored.
func (m *Machine) Press(p geom.Point, b Button) {
	if m.mode != Idle {
		return
	}
	hit := m.store.HitTest(p.X, p.Y)
	if hit >= 0 {
		if b == ButtonRight {
			if err := m.store.Remove(hit); err != nil {
				m.log.Warn("remove circle", zap.Int("index", hit), zap.Error(err))
			}
			return
		}
		c, _ := m.store.At(hit)
		m.mode, m.index, m.offset = Dragging, hit, p.Sub(c.Center())
		return
	}
	i, err := m.store.Add(p.X, p.Y, m.store.MinRadius())
	if err != nil {
		m.log.Warn("add circle", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Error(err))
		return
	}
	m.mode, m.index = Resizing, i
}

// Move handles pointer motion to p.
func (m *Machine) Move(p geom.Point) {
	var err error
	switch m.mode {
	case Dragging:
		c := p.Sub(m.offset)
		err = m.store.Move(m.index, c.X, c.Y)
	case Resizing:
		c, ok := m.store.At(m.index)
		if !ok {
			m.reset()
			return
		}
		err = m.store.Resize(m.index, math.Max(geom.Dist(c.Center(), p), m.store.MinRadius()))
	default:
		return
	}
	if err != nil {
		m.log.Warn("pointer move", zap.Stringer("mode", m.mode), zap.Int("index", m.index), zap.Error(err))
		m.reset()
	}
}

// Release ends the current gesture and logs the scene.
func (m *Machine) Release() {
	if m.mode == Idle {
		return
	}
	m.log.Debug("gesture finished",
		zap.Stringer("mode", m.mode),
		zap.Int("index", m.index),
		zap.Any("circles", m.store.Snapshot()))
	m.reset()
}

// Cancel drops the current gesture without logging.
func (m *Machine) Cancel() { m.reset() }

func (m *Machine) reset() {
	m.mode, m.index, m.offset = Idle, -1, geom.Point{}
}
