package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Command is what a frame's input resolves to beyond camera movement.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
)

// Movement rates in world units (or radians) per second; each keypress
// contributes one frame's worth.
const (
	forwardRate = 4.0
	turnRate    = math.Pi / 2
)

// Controls folds key events into per-frame camera deltas for a fixed-step
// frame loop.
type Controls struct {
	fps float64
}

// NewControls returns controls scaled for the given frame rate.
func NewControls(fps int) Controls {
	return Controls{fps: float64(fps)}
}

// Apply adds one key event to the accumulated (forward, angle) deltas and
// reports any session command the key carries.
func (c Controls) Apply(ev *tcell.EventKey, forward, angle float64) (float64, float64, Command) {
	switch {
	case ev.Key() == tcell.KeyUp || keyRune(ev) == 'w':
		forward += forwardRate / c.fps
	case ev.Key() == tcell.KeyDown || keyRune(ev) == 's':
		forward -= forwardRate / c.fps
	case ev.Key() == tcell.KeyLeft || keyRune(ev) == 'a':
		angle += turnRate / c.fps
	case ev.Key() == tcell.KeyRight || keyRune(ev) == 'd':
		angle -= turnRate / c.fps
	case ev.Key() == tcell.KeyEscape || keyRune(ev) == 'q':
		return forward, angle, CommandQuit
	}
	return forward, angle, CommandNone
}

func keyRune(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return ev.Rune()
}
