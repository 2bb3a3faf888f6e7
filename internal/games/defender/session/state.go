package session

import (
	"maps"
	"math"

	"github.com/vovakirdan/star-defender/internal/config"
)

// BuffKind identifies a timed buff.
type BuffKind int

const (
	BuffRapidFire BuffKind = iota
	BuffShield
)

func (b BuffKind) String() string {
	switch b {
	case BuffRapidFire:
		return "Rapid"
	case BuffShield:
		return "Shield"
	default:
		return "?"
	}
}

// State is the aggregate session state. Only the session mutates it.
type State struct {
	Score      int
	Wave       int
	Combo      int
	ComboTimer float64              // Milliseconds until the combo resets
	Buffs      map[BuffKind]float64 // Remaining milliseconds per active buff
	Kills      int
	LastPoints int // Points awarded by the most recent kill

	GameOver bool
	Paused   bool
	Ticks    int
	Elapsed  float64 // Simulated milliseconds
}

func newState() State {
	return State{Wave: 1, Buffs: make(map[BuffKind]float64)}
}

// clone returns a copy that does not share the buff map.
func (s State) clone() State {
	s.Buffs = maps.Clone(s.Buffs)
	return s
}

// Multiplier returns the score multiplier for a combo count:
// min(1 + combo*step, max), rounded to cancel float accumulation.
func Multiplier(combo int, cfg config.ComboConfig) float64 {
	if combo < 0 {
		combo = 0
	}
	m := 1 + float64(combo)*cfg.Step
	m = math.Round(m*1e9) / 1e9
	return math.Min(m, cfg.MaxMultiplier)
}

// Points returns floor(score * multiplier).
func Points(score int, multiplier float64) int {
	return int(math.Floor(float64(score)*multiplier + 1e-9))
}

// Result is the outcome of a finished session.
type Result struct {
	Score   int
	Wave    int
	Kills   int
	Elapsed float64
}
