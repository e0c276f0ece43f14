package clock

// Scheduler holds the per-refresh callback. It is the only place that knows
// whether a frame loop is currently registered.
type Scheduler struct {
	frame   func()
	active  bool
	started bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Start registers fn to run on every frame, replacing any previous callback
func (s *Scheduler) Start(fn func()) {
	s.frame = fn
	s.active = true
	s.started = true
}

// Stop deregisters the callback. A stopped scheduler still remembers it was started.
func (s *Scheduler) Stop() {
	s.active = false
}

// Clear stops the scheduler and forgets it was ever started
func (s *Scheduler) Clear() {
	s.frame = nil
	s.active = false
	s.started = false
}

// Active reports whether a callback is registered and running
func (s *Scheduler) Active() bool {
	return s.active
}

// Started reports whether Start was called since the last Clear
func (s *Scheduler) Started() bool {
	return s.started
}

// Frame runs the callback once if the scheduler is active
func (s *Scheduler) Frame() {
	if s.active && s.frame != nil {
		s.frame()
	}
}
