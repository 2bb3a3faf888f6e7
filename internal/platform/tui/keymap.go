package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-defender/internal/core"
)

// DefaultLatch is how long a held action stays down after its last key
// event. Terminals only report presses and autorepeat, never releases.
const DefaultLatch = 180 * time.Millisecond

// held lists the actions that stay down while their key repeats.
var held = map[core.Action]bool{
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionFire:  true,
}

// opposite maps a direction to the one it cancels.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// KeyMapper translates Bubble Tea key messages to game actions and turns
// key-down events into a per-frame held state.
type KeyMapper struct {
	latch  time.Duration
	last   map[core.Action]time.Time // Last press of each held action
	pulses []core.Action             // One-shot actions since the last frame
}

// NewKeyMapper creates a key mapper with the given latch window.
// Non-positive windows use DefaultLatch.
func NewKeyMapper(latch time.Duration) *KeyMapper {
	if latch <= 0 {
		latch = DefaultLatch
	}
	return &KeyMapper{
		latch: latch,
		last:  make(map[core.Action]time.Time),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key event at now. Returns true for a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit || action == core.ActionNone {
		return isQuit
	}

	if !held[action] {
		km.pulses = append(km.pulses, action)
		return false
	}
	km.last[action] = now
	if o, ok := opposite[action]; ok {
		delete(km.last, o)
	}
	return false
}

// Frame returns the input for a frame sampled at now: held actions still
// inside the latch window plus every one-shot action since the last call.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, at := range km.last {
		if now.Sub(at) > km.latch {
			delete(km.last, action)
			continue
		}
		frame.Set(action)
	}
	for _, a := range km.pulses {
		frame.Set(a)
	}
	km.pulses = km.pulses[:0]
	return frame
}

// Release drops every held action, e.g. after focus loss or a restart.
func (km *KeyMapper) Release() {
	clear(km.last)
	km.pulses = km.pulses[:0]
}
