package world

import "github.com/vovakirdan/star-defender/internal/games/defender/entity"

func active[T any](list []*T, alive func(*T) bool) []*T {
	out := make([]*T, 0, len(list))
	for _, v := range list {
		if alive(v) {
			out = append(out, v)
		}
	}
	return out
}

// ActiveEnemies returns the active enemies.
func (w *World) ActiveEnemies() []*entity.Enemy {
	return active(w.enemies, func(e *entity.Enemy) bool { return e.Active })
}

// ActivePlayerBullets returns the active player bullets.
func (w *World) ActivePlayerBullets() []*entity.Bullet {
	return active(w.playerBullets, func(b *entity.Bullet) bool { return b.Active })
}

// ActiveEnemyBullets returns the active enemy bullets.
func (w *World) ActiveEnemyBullets() []*entity.Bullet {
	return active(w.enemyBullets, func(b *entity.Bullet) bool { return b.Active })
}

// ActivePowerUps returns the active power-ups.
func (w *World) ActivePowerUps() []*entity.PowerUp {
	return active(w.powerUps, func(p *entity.PowerUp) bool { return p.Active })
}

// Explosions returns the running explosion effects.
func (w *World) Explosions() []*entity.Explosion {
	return active(w.explosions, func(x *entity.Explosion) bool { return x.Active })
}

// Texts returns the running floating texts.
func (w *World) Texts() []*entity.FloatingText {
	return active(w.texts, func(t *entity.FloatingText) bool { return t.Active })
}
