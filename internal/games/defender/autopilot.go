package defender

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/session"
	"github.com/vovakirdan/star-defender/internal/games/defender/world"
)

// Autopilot tuning, in world pixels.
const (
	dangerRange = 140.0 // How far above the ship enemy bullets are dodged
	deadband    = 6.0
)

// Autopilot steers the ship for headless runs. It always fires, tracks the
// lowest enemy and sidesteps enemy bullets falling toward it.
type Autopilot struct{}

// Intents returns the input for the next frame of s.
func (Autopilot) Intents(s *session.Session) core.Intents {
	w := s.World()
	p := w.Player()
	if p == nil || !p.Active {
		return core.Intents{}
	}
	px, _ := p.Center()
	in := core.Intents{Fire: true}

	for _, b := range w.ActiveEnemyBullets() {
		bx, by := b.Center()
		if by > p.Y+p.H || p.Y-by > dangerRange || math.Abs(bx-px) > p.W {
			continue
		}
		if bx >= px {
			in.Left = true
		} else {
			in.Right = true
		}
		return in
	}

	target, lowest := 0.0, math.Inf(-1)
	for _, e := range w.ActiveEnemies() {
		if e.Y > p.Y || e.Y <= lowest {
			continue
		}
		lowest = e.Y
		target, _ = e.Center()
	}
	if math.IsInf(lowest, -1) {
		return in
	}
	switch {
	case target < px-deadband:
		in.Left = true
	case target > px+deadband:
		in.Right = true
	}
	return in
}

// Report summarizes a headless run.
type Report struct {
	Result   session.Result
	Frames   int
	GameOver bool
	Counts   world.Counts
}

// Simulate runs a session under the autopilot for up to frames steps of
// dt milliseconds and stops early on game over.
func Simulate(cfg config.DefenderConfig, seed int64, frames int, dt float64, logger *log.Logger) Report {
	s := session.New(cfg, seed, logger)
	var pilot Autopilot

	n := 0
	for ; n < frames && !s.State().GameOver; n++ {
		s.Step(pilot.Intents(s), dt)
		s.Drain()
	}

	return Report{
		Result:   s.Result(),
		Frames:   n,
		GameOver: s.State().GameOver,
		Counts:   s.World().Counts(),
	}
}
