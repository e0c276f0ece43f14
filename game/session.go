package game

import (
	"time"

	"gridsnake/clock"
	"gridsnake/game/types"
)

// Listener is told about every step that ran
type Listener func(result StepResult, state State)

// Session drives a Game from a display refresh loop. It holds the frame
// schedule so the game state itself carries no loop handles.
type Session struct {
	game      *Game
	scheduler *clock.Scheduler
	throttle  *clock.Throttle
	listeners []Listener
}

// NewSession steps g at most once per interval as measured by tp
func NewSession(g *Game, interval time.Duration, tp clock.TimeProvider) *Session {
	return &Session{
		game:      g,
		scheduler: clock.NewScheduler(),
		throttle:  clock.NewThrottle(interval, tp),
	}
}

// OnStep registers a listener
func (s *Session) OnStep(l Listener) {
	s.listeners = append(s.listeners, l)
}

// State returns a snapshot for rendering
func (s *Session) State() State {
	return s.game.State()
}

// Settings returns the board configuration
func (s *Session) Settings() Settings {
	return s.game.Settings()
}

// Scheduled reports whether a frame callback is currently registered
func (s *Session) Scheduled() bool {
	return s.scheduler.Active()
}

// Started reports whether play began since the last reset; a paused game
// is started but not scheduled.
func (s *Session) Started() bool {
	return s.scheduler.Started()
}

// Start begins play, replacing any running schedule
func (s *Session) Start() {
	s.scheduler.Stop()
	if !s.game.Start() {
		return
	}
	s.scheduler.Start(s.tick)
}

// TogglePlay pauses or resumes. It does nothing before the first Start or
// after the game ended.
func (s *Session) TogglePlay() {
	if !s.scheduler.Started() || s.game.Over() {
		return
	}
	if s.game.TogglePlay() {
		s.scheduler.Start(s.tick)
	} else {
		s.scheduler.Stop()
	}
}

// Reset discards the current game for a fresh idle one
func (s *Session) Reset() {
	s.scheduler.Clear()
	s.game.Reset()
}

// SetDirection queues a turn
func (s *Session) SetDirection(d types.Direction) bool {
	return s.game.EnqueueDirection(d)
}

// Frame is called on every display refresh
func (s *Session) Frame() {
	s.scheduler.Frame()
}

func (s *Session) tick() {
	if !s.game.Playing() {
		return
	}
	s.throttle.Run(func() {
		result := s.game.Step()
		if len(s.listeners) > 0 {
			state := s.game.State()
			for _, l := range s.listeners {
				l(result, state)
			}
		}
	})
	if !s.game.Playing() {
		s.scheduler.Stop()
	}
}
