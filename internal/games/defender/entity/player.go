package entity

import (
	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
)

// HitResult describes what a hit did to the player.
type HitResult int

const (
	HitIgnored  HitResult = iota // Invincibility window active, nothing changed
	HitAbsorbed                  // Shield consumed, health untouched
	HitDamaged                   // Health lost, invincibility granted
	HitKilled                    // Health reached zero
)

func (r HitResult) String() string {
	switch r {
	case HitIgnored:
		return "ignored"
	case HitAbsorbed:
		return "absorbed"
	case HitDamaged:
		return "damaged"
	case HitKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// Player is the ship controlled by the user.
type Player struct {
	Base

	Speed float64

	WeaponLevel    int // 1..MaxWeaponLevel, only grows until reset
	MaxWeaponLevel int

	BaseFireRate float64 // Milliseconds between shots without buffs
	FireRate     float64 // Current interval, halved while rapid fire is active
	FireCooldown float64

	Shielded bool

	Invincible          bool
	InvincibleRemaining float64
	InvincibleDuration  float64
}

// NewPlayer creates a player at the spawn point: horizontally centered,
// SpawnOffset above the bottom edge.
func NewPlayer(cfg config.PlayerConfig, arenaW, arenaH float64) *Player {
	return &Player{
		Base: Base{
			X:         (arenaW - cfg.Width) / 2,
			Y:         arenaH - cfg.Height - cfg.SpawnOffset,
			W:         cfg.Width,
			H:         cfg.Height,
			Health:    cfg.Health,
			MaxHealth: cfg.Health,
			Active:    true,
			Category:  CategoryPlayer,
		},
		Speed:              cfg.Speed,
		WeaponLevel:        1,
		MaxWeaponLevel:     cfg.MaxWeaponLevel,
		BaseFireRate:       cfg.FireRate,
		FireRate:           cfg.FireRate,
		InvincibleDuration: cfg.InvincibleDuration,
	}
}

// Hit applies damage. An active invincibility window ignores the hit and
// leaves the shield alone; otherwise a shield absorbs exactly one hit.
func (p *Player) Hit(damage int) HitResult {
	if !p.Active {
		return HitIgnored
	}
	if p.Invincible {
		return HitIgnored
	}
	if p.Shielded {
		p.Shielded = false
		return HitAbsorbed
	}

	if p.Damage(damage) {
		return HitKilled
	}
	p.Invincible = true
	p.InvincibleRemaining = p.InvincibleDuration
	return HitDamaged
}

// Move steers the player from intents and keeps it inside the arena.
func (p *Player) Move(in core.Intents, dt, arenaW, arenaH float64) {
	dx, dy := in.Axis()
	p.VX = dx * p.Speed
	p.VY = dy * p.Speed
	p.Advance(dt)

	p.X = core.ClampF(p.X, 0, arenaW-p.W)
	p.Y = core.ClampF(p.Y, 0, arenaH-p.H)
}

// Tick decrements the fire cooldown and the invincibility window.
func (p *Player) Tick(dt float64) {
	if p.FireCooldown > 0 {
		p.FireCooldown = max(0, p.FireCooldown-dt)
	}
	if p.Invincible {
		p.InvincibleRemaining -= dt
		if p.InvincibleRemaining <= 0 {
			p.InvincibleRemaining = 0
			p.Invincible = false
		}
	}
}

// CanFire reports whether the fire cooldown has elapsed.
func (p *Player) CanFire() bool {
	return p.Active && p.FireCooldown <= 0
}

// Fired restarts the fire cooldown.
func (p *Player) Fired() {
	p.FireCooldown = p.FireRate
}

// UpgradeWeapon raises the weapon level. Returns false at the cap.
func (p *Player) UpgradeWeapon() bool {
	if p.WeaponLevel >= p.MaxWeaponLevel {
		return false
	}
	p.WeaponLevel++
	return true
}

// SetRapidFire switches between the base and the halved fire interval.
func (p *Player) SetRapidFire(on bool) {
	if on {
		p.FireRate = p.BaseFireRate / 2
	} else {
		p.FireRate = p.BaseFireRate
	}
	if p.FireCooldown > p.FireRate {
		p.FireCooldown = p.FireRate
	}
}

// RapidFire reports whether the halved fire interval is in effect.
func (p *Player) RapidFire() bool {
	return p.FireRate < p.BaseFireRate
}
