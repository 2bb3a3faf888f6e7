// Package tui provides the Bubble Tea integration for Star Defender.
// It handles the terminal UI loop, input latching, scoreboard and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures the real time between frames in milliseconds.
type frameClock struct {
	last time.Time
}

// delta returns the milliseconds since the previous call, or nominal on the
// first call and after clock jumps backwards.
func (c *frameClock) delta(now time.Time, nominal float64) float64 {
	prev := c.last
	c.last = now
	if prev.IsZero() || now.Before(prev) {
		return nominal
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}

func (c *frameClock) reset() {
	c.last = time.Time{}
}
