// Package entity defines the simulated objects of Star Defender.
//
// Every entity embeds Base, a shared record of position, velocity, size,
// health and lifecycle state. Kind-specific behavior is dispatched by the
// owning collection, not by virtual methods.
package entity

import "github.com/vovakirdan/star-defender/internal/core"

// Category is the collision category of an entity.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryPlayerBullet
	CategoryEnemyBullet
	CategoryPowerUp
	CategoryEffect // Explosions and floating texts, never collide
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayerBullet:
		return "player-bullet"
	case CategoryEnemyBullet:
		return "enemy-bullet"
	case CategoryPowerUp:
		return "powerup"
	case CategoryEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Base is the state shared by all entities.
// X, Y is the top-left corner; velocities are pixels per second.
type Base struct {
	X, Y      float64
	VX, VY    float64
	W, H      float64
	Health    int
	MaxHealth int
	Active    bool
	Category  Category
	Age       float64 // Milliseconds since spawn
}

// Rect returns the bounding box.
func (b *Base) Rect() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center point.
func (b *Base) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Advance moves the entity by its velocity over dt milliseconds.
func (b *Base) Advance(dt float64) {
	s := dt / 1000
	b.X += b.VX * s
	b.Y += b.VY * s
	b.Age += dt
}

// Damage subtracts n health, clamping at zero. It reports true only on the
// call that takes health from above zero to zero, so repeated hits on a dead
// entity never report a second kill.
func (b *Base) Damage(n int) bool {
	if !b.Active || b.Health <= 0 || n <= 0 {
		return false
	}
	b.Health -= n
	if b.Health <= 0 {
		b.Health = 0
		return true
	}
	return false
}

// Deactivate marks the entity for removal at the next cleanup.
func (b *Base) Deactivate() {
	b.Active = false
}

// Alive reports whether the entity is active.
func (b *Base) Alive() bool {
	return b.Active
}
