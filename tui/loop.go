package tui

import (
	"context"
	"time"

	"gridsnake/app"
	"gridsnake/game"
	"gridsnake/input"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DefaultRefresh is roughly one display frame
const DefaultRefresh = 16 * time.Millisecond

var arrowCodes = map[tcell.Key]string{
	tcell.KeyUp:    input.CodeArrowUp,
	tcell.KeyDown:  input.CodeArrowDown,
	tcell.KeyLeft:  input.CodeArrowLeft,
	tcell.KeyRight: input.CodeArrowRight,
}

var runeCodes = map[rune]string{
	'w': input.CodeKeyW,
	'a': input.CodeKeyA,
	's': input.CodeKeyS,
	'd': input.CodeKeyD,
	' ': input.CodeSpace,
}

// keyCode translates a terminal key to the code the input tracker expects
func keyCode(ev *tcell.EventKey) (string, bool) {
	if ev.Key() == tcell.KeyRune {
		code, ok := runeCodes[ev.Rune()]
		return code, ok
	}
	code, ok := arrowCodes[ev.Key()]
	return code, ok
}

// OpenScreen creates and initialises the terminal screen
func OpenScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	s.HideCursor()
	return s, nil
}

// Loop owns a session and feeds it terminal events and refresh ticks
type Loop struct {
	screen  tcell.Screen
	session *game.Session
	tracker input.Tracker
	refresh time.Duration
}

func NewLoop(screen tcell.Screen, session *game.Session, refresh time.Duration) *Loop {
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return &Loop{screen: screen, session: session, refresh: refresh}
}

// Run blocks until the player quits, the screen closes or ctx is cancelled.
// Events are read on a separate goroutine and handed over so only this
// goroutine touches the session.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				// Screen finalised
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(l.refresh)
	defer ticker.Stop()

	l.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !l.handle(ev) {
				return nil
			}
		case <-ticker.C:
			l.session.Frame()
		}
		l.draw()
	}
}

// handle applies one event and reports whether the loop should continue
func (l *Loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
	case *tcell.EventKey:
		return l.key(ev)
	}
	return true
}

func (l *Loop) key(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		app.PrimaryAction(l.session)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			l.session.Reset()
			return true
		}
	}

	code, ok := keyCode(ev)
	if !ok {
		return true
	}
	glog.V(2).Infof("Key %s", code)

	// Terminals report presses only, so each press is a full press and release
	l.tracker.KeyDown(code)
	cmd, d := l.tracker.KeyUp(code, l.session.State().IsPlaying)
	switch cmd {
	case input.CommandToggle:
		l.session.TogglePlay()
	case input.CommandDirection:
		l.session.SetDirection(d)
	}
	return true
}

func (l *Loop) draw() {
	cells := l.session.Settings().Sizes.Cells()
	Draw(l.screen, l.session.State(), cells, l.session.Started())
	l.screen.Show()
}
