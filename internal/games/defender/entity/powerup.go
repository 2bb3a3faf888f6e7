package entity

import "github.com/vovakirdan/star-defender/internal/config"

// PowerUpKind represents different types of power-up pickups.
type PowerUpKind int

const (
	PowerUpTripleShot PowerUpKind = iota // Weapon level +1
	PowerUpRapidFire                     // Halved fire interval for a while
	PowerUpShield                        // Absorbs one hit
	PowerUpBomb                          // Destroys every enemy on screen
	PowerUpKindCount                     // Sentinel for counting kinds
)

// String returns the configuration name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpTripleShot:
		return "triple_shot"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpShield:
		return "shield"
	case PowerUpBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Label returns the short HUD name.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpTripleShot:
		return "Triple"
	case PowerUpRapidFire:
		return "Rapid"
	case PowerUpShield:
		return "Shield"
	case PowerUpBomb:
		return "Bomb"
	default:
		return "?"
	}
}

// Glyph returns the display character for the kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpTripleShot:
		return 'T'
	case PowerUpRapidFire:
		return 'R'
	case PowerUpShield:
		return 'S'
	case PowerUpBomb:
		return 'B'
	default:
		return '?'
	}
}

// ParsePowerUpKind converts a configuration name to a kind.
func ParsePowerUpKind(s string) (PowerUpKind, bool) {
	for k := PowerUpTripleShot; k < PowerUpKindCount; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return PowerUpTripleShot, false
}

// PowerUp is a falling pickup.
type PowerUp struct {
	Base
	Kind PowerUpKind
}

// NewPowerUp creates a pickup centered on (cx, cy) falling at the configured speed.
func NewPowerUp(k PowerUpKind, cx, cy float64, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{
		Base: Base{
			X:         cx - cfg.Width/2,
			Y:         cy - cfg.Height/2,
			VY:        cfg.FallSpeed,
			W:         cfg.Width,
			H:         cfg.Height,
			Health:    1,
			MaxHealth: 1,
			Active:    true,
			Category:  CategoryPowerUp,
		},
		Kind: k,
	}
}
