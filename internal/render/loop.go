package render

import (
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/membrane/internal/membrane"
	"github.com/san-kum/membrane/internal/metrics"
	"github.com/san-kum/membrane/internal/scene"
)

type Loop struct {
	store     *scene.Store
	surface   Surface
	scheduler Scheduler
	style     Style
	params    membrane.Params
	log       *zap.Logger
	metrics   []metrics.Metric

	stopped    bool
	degenerate bool
	frames     uint64
	last       membrane.Frame
}

func NewLoop(store *scene.Store, surface Surface, scheduler Scheduler, style Style, params membrane.Params, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		store:     store,
		surface:   surface,
		scheduler: scheduler,
		style:     style,
		params:    params,
		log:       log,
	}
}

// Start schedules the first frame. Each frame schedules the next until
// Stop is called.
func (l *Loop) Start() {
	l.stopped = false
	l.scheduler.RequestFrame(l.tick)
}

// Stop prevents the next frame from being requested. A frame already
// handed to the scheduler still runs.
func (l *Loop) Stop() { l.stopped = true }

func (l *Loop) Stopped() bool { return l.stopped }

func (l *Loop) Frames() uint64 { return l.frames }

// Last returns the pipeline result of the most recent frame.
func (l *Loop) Last() membrane.Frame { return l.last }

// Observe adds metrics that see every frame's pipeline result and time.
func (l *Loop) Observe(ms ...metrics.Metric) { l.metrics = append(l.metrics, ms...) }

func (l *Loop) Metrics() []metrics.Metric { return l.metrics }

func (l *Loop) SetParams(p membrane.Params) { l.params = p }

func (l *Loop) Params() membrane.Params { return l.params }

func (l *Loop) tick() {
	l.Frame()
	if l.stopped {
		return
	}
	l.scheduler.RequestFrame(l.tick)
}

// Frame draws one frame: clear, circle outlines, then the membrane if the
// scene is not degenerate.
func (l *Loop) Frame() membrane.Frame {
	circles := l.store.Circles()

	l.surface.Clear(l.style.Background)
	for _, c := range circles {
		l.surface.StrokeCircle(c.Center(), c.R, l.style.Circle)
	}

	start := time.Now()
	f := membrane.Compute(circles, l.params)
	elapsed := time.Since(start)
	for _, m := range l.metrics {
		m.Observe(f, elapsed)
	}
	if f.HasMembrane() {
		l.surface.StrokePath(f.Path, l.style.Membrane)
	}
	l.trackDegenerate(f.Err, len(circles))

	l.frames++
	l.last = f
	return f
}

// trackDegenerate logs transitions only, so an empty scene does not log
// every frame.
func (l *Loop) trackDegenerate(err error, circles int) {
	switch {
	case err != nil && !l.degenerate:
		l.degenerate = true
		l.log.Debug("membrane skipped",
			zap.Int("circles", circles),
			zap.Uint64("frame", l.frames),
			zap.Error(err))
	case err == nil && l.degenerate:
		l.degenerate = false
		l.log.Debug("membrane restored",
			zap.Int("circles", circles),
			zap.Uint64("frame", l.frames))
	}
}
