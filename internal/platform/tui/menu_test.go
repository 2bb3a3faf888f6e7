package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-defender/internal/storage"
)

func press(m tea.Model, msgs ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestMenuStartsOnDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"easy", "easy"},
		{"hard", "hard"},
		{"", "normal"},
		{"bogus", "normal"},
	}
	for _, tt := range tests {
		if got := NewMenuModel(nil, "defender", tt.in, 80, 24).Difficulty(); got != tt.expected {
			t.Errorf("NewMenuModel(%q).Difficulty() = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestMenuPlay(t *testing.T) {
	m, cmd := press(NewMenuModel(nil, "defender", "normal", 80, 24), keyEnter)
	if cmd == nil {
		t.Fatal("enter on Play should quit the menu")
	}
	if got := m.(MenuModel).Choice(); got != ChoicePlay {
		t.Errorf("Choice() = %v, expected ChoicePlay", got)
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m, _ := press(NewMenuModel(nil, "defender", "normal", 80, 24), keyDown, keyRight, keyRight)
	if got := m.(MenuModel).Difficulty(); got != "fixed" {
		t.Errorf("Difficulty() = %q, expected fixed", got)
	}

	m, _ = press(m, keyRight)
	if got := m.(MenuModel).Difficulty(); got != "easy" {
		t.Errorf("Difficulty() after wrap = %q, expected easy", got)
	}

	m, _ = press(m, keyLeft)
	if got := m.(MenuModel).Difficulty(); got != "fixed" {
		t.Errorf("Difficulty() after left = %q, expected fixed", got)
	}

	m, cmd := press(m, keyEnter)
	if cmd != nil || m.(MenuModel).Choice() != ChoiceNone {
		t.Error("enter on the difficulty row should not close the menu")
	}
}

func TestMenuLeftRightIgnoredOffDifficultyRow(t *testing.T) {
	m, _ := press(NewMenuModel(nil, "defender", "normal", 80, 24), keyRight)
	if got := m.(MenuModel).Difficulty(); got != "normal" {
		t.Errorf("Difficulty() = %q, expected normal", got)
	}
}

func TestMenuScoresAndWrap(t *testing.T) {
	m, _ := press(NewMenuModel(nil, "defender", "normal", 80, 24), keyDown, keyDown, keyEnter)
	if got := m.(MenuModel).Choice(); got != ChoiceScores {
		t.Errorf("Choice() = %v, expected ChoiceScores", got)
	}

	m, _ = press(NewMenuModel(nil, "defender", "normal", 80, 24), keyUp, keyEnter)
	if got := m.(MenuModel).Choice(); got != ChoiceQuit {
		t.Errorf("Choice() after wrapping up = %v, expected ChoiceQuit", got)
	}
}

func TestMenuQuitKey(t *testing.T) {
	m, cmd := press(NewMenuModel(nil, "defender", "normal", 80, 24), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || m.(MenuModel).Choice() != ChoiceQuit {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("closed menu should render nothing")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("defender", storage.Record{Score: 4200, Wave: 3}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	view := NewMenuModel(store, "defender", "normal", 80, 24).View()
	if !strings.Contains(view, "High score 4200") {
		t.Errorf("View() missing high score line:\n%s", view)
	}
	if !strings.Contains(view, "Difficulty: < normal >") {
		t.Errorf("View() missing difficulty row:\n%s", view)
	}
}

func TestScoreboardShowsEntries(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{300, 900} {
		if _, err := store.SaveScore("defender", storage.Record{Score: score, Wave: 2, Kills: 5}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "defender", "Star Defender", 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %+v, expected 900 first", m.scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Star Defender", "900", "300"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestScoreboardClearConfirm(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("defender", storage.Record{Score: 100}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	clearKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}}
	no := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	yes := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}

	m, _ := press(NewScoreboardModel(store, "defender", "Star Defender", 100, 30), clearKey, no)
	if got := len(m.(ScoreboardModel).scores); got != 1 {
		t.Errorf("cancel left %d scores, expected 1", got)
	}

	m, _ = press(m, clearKey)
	if !strings.Contains(m.View(), "Clear all scores? (y/n)") {
		t.Error("clear should ask for confirmation")
	}
	m, _ = press(m, yes)
	if got := len(m.(ScoreboardModel).scores); got != 0 {
		t.Errorf("confirm left %d scores, expected 0", got)
	}
	if best, _ := store.HighScore("defender"); best != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", best)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0s", "0:00"},
		{"59s", "0:59"},
		{"61s", "1:01"},
		{"10m30.6s", "10:31"},
	}
	for _, tt := range tests {
		d, err := time.ParseDuration(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got := formatDuration(d); got != tt.expected {
			t.Errorf("formatDuration(%s) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
