package entity

import "github.com/vovakirdan/star-defender/internal/config"

// EnemyKind represents an enemy archetype.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
	EnemyZigzag
	EnemyBoss
	EnemyKindCount // Sentinel for counting kinds
)

// String returns the configuration name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyZigzag:
		return "zigzag"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for the kind.
func (k EnemyKind) Glyph() rune {
	switch k {
	case EnemyBasic:
		return 'V'
	case EnemyFast:
		return 'Y'
	case EnemyTank:
		return 'H'
	case EnemyZigzag:
		return 'Z'
	case EnemyBoss:
		return 'W'
	default:
		return '?'
	}
}

// ParseEnemyKind converts a configuration name to a kind.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	for k := EnemyBasic; k < EnemyKindCount; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return EnemyBasic, false
}

// KindConfig returns the archetype configuration for k.
func KindConfig(cfg config.EnemiesConfig, k EnemyKind) config.EnemyKindConfig {
	switch k {
	case EnemyFast:
		return cfg.Fast
	case EnemyTank:
		return cfg.Tank
	case EnemyZigzag:
		return cfg.Zigzag
	case EnemyBoss:
		return cfg.Boss
	default:
		return cfg.Basic
	}
}

// Enemy is a hostile ship.
type Enemy struct {
	Base

	Kind       EnemyKind
	ScoreValue int
	Speed      float64 // Already scaled by the wave speed multiplier

	Pattern string             // Resolved movement pattern name
	Scratch map[string]float64 // Pattern-private state carried across frames

	CanShoot     bool
	ShotInterval float64
	ShotCooldown float64
}

// NewEnemy builds an enemy of kind k at (x, y). speedMul scales the archetype
// speed; a positive health overrides the archetype health (bosses).
func NewEnemy(k EnemyKind, kc config.EnemyKindConfig, x, y, speedMul float64, health int, pattern string) *Enemy {
	if health <= 0 {
		health = kc.Health
	}
	if health <= 0 {
		health = 1
	}
	return &Enemy{
		Base: Base{
			X:         x,
			Y:         y,
			W:         kc.Width,
			H:         kc.Height,
			Health:    health,
			MaxHealth: health,
			Active:    true,
			Category:  CategoryEnemy,
		},
		Kind:         k,
		ScoreValue:   kc.Score,
		Speed:        kc.Speed * speedMul,
		Pattern:      pattern,
		Scratch:      make(map[string]float64),
		CanShoot:     kc.ShotInterval > 0,
		ShotInterval: kc.ShotInterval,
		ShotCooldown: kc.ShotInterval,
	}
}

// ShowHealthBar reports whether the renderer should draw a health bar.
func (e *Enemy) ShowHealthBar() bool {
	return (e.Kind == EnemyTank || e.Kind == EnemyBoss) && e.MaxHealth > 1
}

// TickShot advances the shot cooldown and reports whether the enemy fires
// this frame.
func (e *Enemy) TickShot(dt float64) bool {
	if !e.CanShoot || !e.Active {
		return false
	}
	e.ShotCooldown -= dt
	if e.ShotCooldown > 0 {
		return false
	}
	e.ShotCooldown += e.ShotInterval
	if e.ShotCooldown < 0 {
		e.ShotCooldown = 0
	}
	return true
}
