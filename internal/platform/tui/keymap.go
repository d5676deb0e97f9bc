package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-catcher/internal/core"
)

// DefaultHold is how long a direction key press counts as held when the
// configuration does not say otherwise.
const DefaultHold = 200 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k":
		return core.ActionUp, false
	case "down", "s", "j":
		return core.ActionDown, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "m", "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionYes
	MenuActionNo
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "y", "Y":
		return MenuActionYes
	case "n", "N":
		return MenuActionNo
	}

	return MenuActionNone
}

// DirectionLatch emulates a held direction key.
//
// Terminals report key presses (and auto-repeats) but never key releases, so
// a press is treated as held until the hold time elapses without a repeat,
// or until the opposite direction is pressed.
type DirectionLatch struct {
	hold  time.Duration
	dir   core.Direction
	until time.Time
}

// NewDirectionLatch creates a latch. Non-positive hold uses DefaultHold.
func NewDirectionLatch(hold time.Duration) DirectionLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return DirectionLatch{hold: hold}
}

// Press records a direction key press at now.
func (l *DirectionLatch) Press(dir core.Direction, now time.Time) {
	if dir == core.DirectionNone {
		l.Release()
		return
	}
	l.dir = dir
	l.until = now.Add(l.hold)
}

// Release drops any held direction.
func (l *DirectionLatch) Release() {
	l.dir = core.DirectionNone
	l.until = time.Time{}
}

// Held returns the direction held at now.
func (l *DirectionLatch) Held(now time.Time) core.Direction {
	if l.dir == core.DirectionNone || !now.Before(l.until) {
		return core.DirectionNone
	}
	return l.dir
}

// Apply sets the held direction's action on frame.
func (l *DirectionLatch) Apply(frame *core.InputFrame, now time.Time) {
	switch l.Held(now) {
	case core.DirectionLeft:
		frame.Set(core.ActionLeft)
	case core.DirectionRight:
		frame.Set(core.ActionRight)
	}
}

// directionFor returns the direction an action steers, if any.
func directionFor(a core.Action) (core.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return core.DirectionLeft, true
	case core.ActionRight:
		return core.DirectionRight, true
	default:
		return core.DirectionNone, false
	}
}
