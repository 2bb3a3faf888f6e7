// Package collision detects AABB overlaps between entity categories and
// applies their immediate effects, recording the outcome as events.
package collision

import (
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/event"
)

// Views is the read-only set of collections the resolver inspects.
// *world.World satisfies it.
type Views interface {
	Player() *entity.Player
	ActiveEnemies() []*entity.Enemy
	ActivePlayerBullets() []*entity.Bullet
	ActiveEnemyBullets() []*entity.Bullet
	ActivePowerUps() []*entity.PowerUp
}

// Resolver runs the per-frame collision pass.
type Resolver struct {
	contactDamage int
}

// NewResolver creates a resolver. contactDamage is dealt to an enemy that
// touches the player; it is raised to the enemy's remaining health so
// contact is always fatal.
func NewResolver(contactDamage int) *Resolver {
	return &Resolver{contactDamage: contactDamage}
}

// Resolve tests, in order, player bullets against enemies, enemy bullets
// against the player, the player against enemies and the player against
// power-ups. Entities deactivated by an earlier hit, the player included,
// are skipped by later tests in the same pass.
func (r *Resolver) Resolve(v Views, q *event.Queue) {
	enemies := v.ActiveEnemies()

	r.playerBullets(v.ActivePlayerBullets(), enemies, q)

	p := v.Player()
	if p == nil || !p.Active {
		return
	}
	r.enemyBullets(p, v.ActiveEnemyBullets(), q)
	r.contacts(p, enemies, q)
	r.pickups(p, v.ActivePowerUps(), q)
}

func (r *Resolver) playerBullets(bullets []*entity.Bullet, enemies []*entity.Enemy, q *event.Queue) {
	for _, b := range bullets {
		for _, e := range enemies {
			if !b.Active {
				break
			}
			if !e.Active || !b.Rect().Overlaps(e.Rect()) {
				continue
			}
			b.Deactivate()
			if e.Damage(b.Damage) {
				destroy(e, q)
			}
		}
	}
}

func (r *Resolver) enemyBullets(p *entity.Player, bullets []*entity.Bullet, q *event.Queue) {
	for _, b := range bullets {
		if !p.Active {
			return
		}
		if !b.Active || !b.Rect().Overlaps(p.Rect()) {
			continue
		}
		b.Deactivate()
		hitPlayer(p, b.Damage, q)
	}
}

func (r *Resolver) contacts(p *entity.Player, enemies []*entity.Enemy, q *event.Queue) {
	for _, e := range enemies {
		if !p.Active {
			return
		}
		if !e.Active || !p.Rect().Overlaps(e.Rect()) {
			continue
		}
		if e.Damage(max(r.contactDamage, e.Health)) {
			destroy(e, q)
		}
		hitPlayer(p, 1, q)
	}
}

func (r *Resolver) pickups(p *entity.Player, powerUps []*entity.PowerUp, q *event.Queue) {
	for _, pu := range powerUps {
		if !p.Active {
			return
		}
		if !pu.Active || !p.Rect().Overlaps(pu.Rect()) {
			continue
		}
		pu.Deactivate()
		cx, cy := pu.Center()
		q.Push(event.Event{Kind: event.PowerUpCollected, PowerUp: pu.Kind, X: cx, Y: cy})
	}
}

// destroy deactivates a killed enemy and records its destruction.
func destroy(e *entity.Enemy, q *event.Queue) {
	e.Deactivate()
	cx, cy := e.Center()
	q.Push(event.Event{Kind: event.EnemyDestroyed, Enemy: e.Kind, Score: e.ScoreValue, X: cx, Y: cy})
}

func hitPlayer(p *entity.Player, damage int, q *event.Queue) {
	cx, cy := p.Center()
	switch p.Hit(damage) {
	case entity.HitAbsorbed:
		q.Push(event.Event{Kind: event.ShieldAbsorbed, X: cx, Y: cy})
	case entity.HitDamaged:
		q.Push(event.Event{Kind: event.PlayerHit, X: cx, Y: cy})
	case entity.HitKilled:
		q.Push(event.Event{Kind: event.PlayerHit, X: cx, Y: cy})
		q.Push(event.Event{Kind: event.PlayerKilled, X: cx, Y: cy})
		p.Deactivate()
	}
}
