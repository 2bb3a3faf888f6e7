// Package pattern implements enemy movement patterns.
//
// A pattern moves one enemy by dt milliseconds. The horizontal and vertical
// displacement is integrated exactly over the frame, so calling a pattern
// every frame reproduces the same trajectory regardless of frame timing.
// Continuity between frames lives in the enemy's Scratch map.
package pattern

import (
	"sort"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
)

// Pattern names.
const (
	Straight = "straight"
	Sine     = "sine"
	Zigzag   = "zigzag"
	Circular = "circular"
	Random   = "random"
	Dive     = "dive"
	Strafe   = "strafe"
)

// Context is the read-only view of the world a pattern may consult.
type Context struct {
	PlayerX, PlayerY float64 // Player center
	HasPlayer        bool
	Width, Height    float64 // Play area
	Params           config.PatternConfig
	RNG              *core.RNG
}

// Func moves an enemy by dt milliseconds.
type Func func(e *entity.Enemy, dt float64, ctx Context)

var registry = map[string]Func{
	Straight: straight,
	Sine:     sine,
	Zigzag:   zigzag,
	Circular: circular,
	Random:   random,
	Dive:     dive,
	Strafe:   strafe,
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Resolve returns the named pattern, or straight when the name is unknown.
// The second result is the name actually used.
func Resolve(name string) (Func, string) {
	if fn, ok := registry[name]; ok {
		return fn, name
	}
	return straight, Straight
}

// Names returns all registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scratch keys.
const (
	keyPhase   = "phase"
	keyDir     = "dir"
	keyTimer   = "timer"
	keyCharged = "charged"
	keyDiving  = "diving"
	keyAngle   = "angle"
	keyRolled  = "rolled"
)

func seconds(dt float64) float64 {
	return dt / 1000
}

// descend moves the enemy straight down at its speed.
func descend(e *entity.Enemy, dt float64) {
	e.VY = e.Speed
	e.Y += e.Speed * seconds(dt)
}

// direction returns the stored horizontal direction, defaulting to +1.
func direction(e *entity.Enemy) float64 {
	d := e.Scratch[keyDir]
	if d == 0 {
		d = 1
		e.Scratch[keyDir] = d
	}
	return d
}

// straight falls at constant speed.
func straight(e *entity.Enemy, dt float64, _ Context) {
	e.VX = 0
	descend(e, dt)
}
