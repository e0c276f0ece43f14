// Package input turns key codes into snake directions and game commands.
// Codes follow the browser KeyboardEvent.code names ("ArrowUp", "KeyW", "Space").
package input

import "gridsnake/game/types"

// Key codes understood by the tracker
const (
	CodeArrowUp    = "ArrowUp"
	CodeArrowDown  = "ArrowDown"
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowRight = "ArrowRight"
	CodeKeyW       = "KeyW"
	CodeKeyA       = "KeyA"
	CodeKeyS       = "KeyS"
	CodeKeyD       = "KeyD"
	CodeSpace      = "Space"
)

var directionKeys = map[string]types.Direction{
	CodeKeyW:       types.Up,
	CodeArrowUp:    types.Up,
	CodeKeyS:       types.Down,
	CodeArrowDown:  types.Down,
	CodeKeyA:       types.Left,
	CodeArrowLeft:  types.Left,
	CodeKeyD:       types.Right,
	CodeArrowRight: types.Right,
}

// DecodeDirectionKey maps arrows and WASD to a direction. Other codes report false.
func DecodeDirectionKey(code string) (types.Direction, bool) {
	d, ok := directionKeys[code]
	return d, ok
}

// Command is what a released key asks the game to do
type Command int

const (
	CommandNone Command = iota
	CommandDirection
	CommandToggle
)

// Tracker remembers which direction key is held so on-screen controls can
// highlight it. Directions are applied when the key is released.
type Tracker struct {
	active types.Direction
}

// KeyDown records a held direction key
func (t *Tracker) KeyDown(code string) {
	if d, ok := DecodeDirectionKey(code); ok {
		t.active = d
	}
}

// KeyUp clears the held key and returns the resulting command. Space only
// toggles while the game is playing.
func (t *Tracker) KeyUp(code string, playing bool) (Command, types.Direction) {
	d, ok := DecodeDirectionKey(code)
	if ok {
		t.active = types.None
	}

	switch {
	case code == CodeSpace && playing:
		return CommandToggle, types.None
	case ok:
		return CommandDirection, d
	default:
		return CommandNone, types.None
	}
}

// Active returns the held direction, or None
func (t *Tracker) Active() types.Direction {
	return t.active
}
