package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-jump/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapMouse returns the clicked cell for a left-button press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (x, y int, ok bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return 0, 0, false
	}
	return msg.X, msg.Y, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// heldKey emulates a held direction key. Terminals only report presses and
// auto-repeats, so each press keeps the direction down for a few ticks.
type heldKey struct {
	action core.Action
	ticks  int
}

// holdTicks is how long one press keeps a direction held: long enough to
// bridge the gap between auto-repeats at the given tick rate.
func holdTicks(tickRate int) int {
	return max(tickRate/6, 1)
}

// press starts holding a, replacing any previous direction.
func (h *heldKey) press(a core.Action, ticks int) {
	h.action = a
	h.ticks = ticks
}

// apply sets the held direction on frame and counts down one tick.
func (h *heldKey) apply(frame *core.InputFrame) {
	if h.ticks <= 0 {
		return
	}
	frame.Set(h.action)
	h.ticks--
}

func (h *heldKey) release() {
	h.ticks = 0
}
