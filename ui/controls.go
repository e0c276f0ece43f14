package ui

import (
	"gridsnake/app"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylib key to browser-style key code
var keyCodes = map[int32]string{
	rl.KeyUp:    input.CodeArrowUp,
	rl.KeyDown:  input.CodeArrowDown,
	rl.KeyLeft:  input.CodeArrowLeft,
	rl.KeyRight: input.CodeArrowRight,
	rl.KeyW:     input.CodeKeyW,
	rl.KeyA:     input.CodeKeyA,
	rl.KeyS:     input.CodeKeyS,
	rl.KeyD:     input.CodeKeyD,
	rl.KeySpace: input.CodeSpace,
}

// Controls feeds keyboard and mouse input from the raylib window into a session
type Controls struct {
	session *game.Session
	tracker input.Tracker
}

func NewControls(s *game.Session) *Controls {
	return &Controls{session: s}
}

// Pressed is the direction key currently held
func (c *Controls) Pressed() types.Direction {
	return c.tracker.Active()
}

// Poll reads this frame's input events. Call once per frame before Draw.
func (c *Controls) Poll(r *Renderer) {
	for key, code := range keyCodes {
		if rl.IsKeyPressed(key) {
			c.tracker.KeyDown(code)
		}
		if rl.IsKeyReleased(key) {
			c.apply(c.tracker.KeyUp(code, c.session.State().IsPlaying))
		}
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		app.PrimaryAction(c.session)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		c.session.Reset()
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		c.click(r, rl.GetMousePosition())
	}
}

func (c *Controls) apply(cmd input.Command, d types.Direction) {
	switch cmd {
	case input.CommandToggle:
		c.session.TogglePlay()
	case input.CommandDirection:
		c.session.SetDirection(d)
	}
}

func (c *Controls) click(r *Renderer, p rl.Vector2) {
	if b := r.ActionButton(); b.Width > 0 && rl.CheckCollisionPointRec(p, b) {
		app.PrimaryAction(c.session)
		return
	}

	for _, d := range controlOrder {
		if rect, ok := r.Control(d); ok && rl.CheckCollisionPointRec(p, rect) {
			// Buttons are disabled while stopped, keys still queue turns
			if c.session.State().IsPlaying {
				c.session.SetDirection(d)
			}
			return
		}
	}

	// Clicking the board pauses and resumes
	if r.Layout().Contains(int(p.X), int(p.Y)) {
		c.session.TogglePlay()
	}
}
