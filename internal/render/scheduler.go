package render

// ManualScheduler holds at most one pending frame callback until Step is
// called. Headless frontends and tests use it in place of a display clock.
type ManualScheduler struct {
	pending func()
}

func (s *ManualScheduler) RequestFrame(fn func()) { s.pending = fn }

func (s *ManualScheduler) Pending() bool { return s.pending != nil }

// Step runs the pending callback, if any, and reports whether one ran.
func (s *ManualScheduler) Step() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}

// Run steps up to n frames and returns how many ran.
func (s *ManualScheduler) Run(n int) int {
	ran := 0
	for ran < n && s.Step() {
		ran++
	}
	return ran
}
