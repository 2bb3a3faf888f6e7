package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-defender/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey('d'), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey('s'), core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}
	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
		}
	}
}

func TestHeldActionLatch(t *testing.T) {
	km := NewKeyMapper(100 * time.Millisecond)
	start := time.Unix(0, 0)

	km.Press(runeKey('a'), start)

	if f := km.Frame(start.Add(50 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("left should be held inside the latch window")
	}
	if f := km.Frame(start.Add(90 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("held actions persist across frames")
	}
	if f := km.Frame(start.Add(150 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("left should be released after the latch window")
	}
}

func TestAutorepeatExtendsLatch(t *testing.T) {
	km := NewKeyMapper(100 * time.Millisecond)
	start := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		km.Press(runeKey(' '), start.Add(time.Duration(i)*80*time.Millisecond))
	}
	if f := km.Frame(start.Add(400 * time.Millisecond)); !f.Has(core.ActionFire) {
		t.Error("repeated presses should keep fire held")
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(0, 0)

	km.Press(runeKey('a'), now)
	km.Press(runeKey('d'), now)

	f := km.Frame(now)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("Frame() = %v, expected only right", f.Actions)
	}
}

func TestPulseActionsLastOneFrame(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(0, 0)

	km.Press(runeKey('p'), now)
	if f := km.Frame(now); !f.Has(core.ActionPause) {
		t.Error("pause should be delivered once")
	}
	if f := km.Frame(now); f.Has(core.ActionPause) {
		t.Error("pause must not repeat on the next frame")
	}
}

func TestPressReportsQuit(t *testing.T) {
	km := NewKeyMapper(0)
	if !km.Press(runeKey('q'), time.Now()) {
		t.Error("q should request quit")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper(0)
	now := time.Unix(0, 0)

	km.Press(runeKey('a'), now)
	km.Press(runeKey('r'), now)
	km.Release()

	if f := km.Frame(now); len(f.Actions) != 0 {
		t.Errorf("Frame() after Release() = %v, expected empty", f.Actions)
	}
}
