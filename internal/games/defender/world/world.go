// Package world owns every live entity of a session.
//
// The World is the only writer of the entity collections. Other components
// read them through the Active* accessors, which never return inactive
// entities, and must not keep the returned slices past the current frame.
package world

import (
	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/pattern"
	"github.com/vovakirdan/star-defender/internal/games/defender/pool"
)

// Counts is a snapshot of collection sizes.
type Counts struct {
	Enemies       int
	PlayerBullets int
	EnemyBullets  int
	PowerUps      int
	Effects       int

	PoolInUse     int
	PoolFree      int
	PoolAllocated int
}

// World holds the player slot and one collection per category.
type World struct {
	cfg config.DefenderConfig
	rng *core.RNG

	player        *entity.Player
	enemies       []*entity.Enemy
	playerBullets []*entity.Bullet
	enemyBullets  []*entity.Bullet
	powerUps      []*entity.PowerUp
	explosions    []*entity.Explosion
	texts         []*entity.FloatingText

	bullets *pool.Pool[entity.Bullet]
}

// New creates an empty world with a prewarmed bullet pool.
func New(cfg config.DefenderConfig, rng *core.RNG) *World {
	w := &World{
		cfg:     cfg,
		rng:     rng,
		bullets: pool.New(entity.NewBullet, entity.ResetBullet),
	}
	w.bullets.Prewarm(cfg.Bullets.Prewarm)
	return w
}

// Width returns the arena width.
func (w *World) Width() float64 { return w.cfg.Arena.Width }

// Height returns the arena height.
func (w *World) Height() float64 { return w.cfg.Arena.Height }

// SpawnPlayer places a fresh player at the spawn point.
func (w *World) SpawnPlayer() *entity.Player {
	w.player = entity.NewPlayer(w.cfg.Player, w.cfg.Arena.Width, w.cfg.Arena.Height)
	return w.player
}

// Player returns the player, or nil if none has been spawned.
func (w *World) Player() *entity.Player {
	return w.player
}

// PlayerAlive reports whether an active player exists.
func (w *World) PlayerAlive() bool {
	return w.player != nil && w.player.Active
}

// AddEnemy adds a spawned enemy.
func (w *World) AddEnemy(e *entity.Enemy) {
	w.enemies = append(w.enemies, e)
}

// ActiveEnemyCount returns the number of active enemies.
func (w *World) ActiveEnemyCount() int {
	n := 0
	for _, e := range w.enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// PatternContext builds the read-only view handed to movement patterns.
func (w *World) PatternContext() pattern.Context {
	ctx := pattern.Context{
		Width:  w.cfg.Arena.Width,
		Height: w.cfg.Arena.Height,
		Params: w.cfg.Patterns,
		RNG:    w.rng,
	}
	if w.PlayerAlive() {
		ctx.PlayerX, ctx.PlayerY = w.player.Center()
		ctx.HasPlayer = true
	}
	return ctx
}

// Update advances every entity by dt milliseconds: the player first (if
// alive), then enemies, bullets, power-ups and effects. Non-enemy entities
// that leave the arena by more than the bounds margin are deactivated.
// Enemies are never culled; the re-entry policy steers them back instead.
func (w *World) Update(dt float64, in core.Intents) {
	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height

	if w.PlayerAlive() {
		w.player.Move(in, dt, aw, ah)
		w.player.Tick(dt)
	}

	ctx := w.PatternContext()
	for _, e := range w.enemies {
		if !e.Active {
			continue
		}
		fn, _ := pattern.Resolve(e.Pattern)
		fn(e, dt, ctx)
		e.Age += dt
		w.reenter(e)

		if e.TickShot(dt) {
			w.FireEnemy(e)
		}
	}

	for _, b := range w.playerBullets {
		w.advance(&b.Base, dt)
	}
	for _, b := range w.enemyBullets {
		w.advance(&b.Base, dt)
	}
	for _, p := range w.powerUps {
		w.advance(&p.Base, dt)
	}

	for _, x := range w.explosions {
		x.Update(dt)
	}
	for _, t := range w.texts {
		t.Update(dt)
	}
}

// advance moves a non-enemy entity and culls it once it is out of bounds.
func (w *World) advance(b *entity.Base, dt float64) {
	if !b.Active {
		return
	}
	b.Advance(dt)
	if b.Rect().Outside(w.cfg.Arena.Width, w.cfg.Arena.Height, w.cfg.Arena.BoundsMargin) {
		b.Deactivate()
	}
}

// reenter applies the enemy re-entry policy.
func (w *World) reenter(e *entity.Enemy) {
	if w.cfg.Arena.EnemyReentry != config.ReentryWrap {
		return
	}
	maxX := w.cfg.Arena.Width - e.W
	if maxX > 0 {
		e.X = core.ClampF(e.X, 0, maxX)
	}
	if e.Y > w.cfg.Arena.Height+w.cfg.Arena.BoundsMargin {
		e.Y = -e.H
	}
}

// FirePlayer fires the player's weapon and returns the number of bullets.
// Level 1 fires one bullet, level 2 two parallel bullets, level 3 a spread
// of three.
func (w *World) FirePlayer() int {
	if !w.PlayerAlive() {
		return 0
	}
	p := w.player
	bc := w.cfg.Bullets
	cx, _ := p.Center()
	y := p.Y - bc.Height
	vy := -bc.PlayerSpeed

	shots := []struct{ dx, vx float64 }{{0, 0}}
	switch {
	case p.WeaponLevel == 2:
		shots = []struct{ dx, vx float64 }{{-p.W / 4, 0}, {p.W / 4, 0}}
	case p.WeaponLevel >= 3:
		s := w.cfg.Player.SpreadSpeed
		shots = []struct{ dx, vx float64 }{{0, 0}, {-p.W / 4, -s}, {p.W / 4, s}}
	}

	for _, s := range shots {
		b := w.bullets.Acquire(func(b *entity.Bullet) {
			b.Launch(entity.CategoryPlayer, cx+s.dx, y, s.vx, vy, bc.Width, bc.Height, bc.PlayerDamage)
		})
		w.playerBullets = append(w.playerBullets, b)
	}
	return len(shots)
}

// FireEnemy fires one bullet straight down from the bottom of e.
func (w *World) FireEnemy(e *entity.Enemy) {
	bc := w.cfg.Bullets
	cx, _ := e.Center()
	b := w.bullets.Acquire(func(b *entity.Bullet) {
		b.Launch(entity.CategoryEnemy, cx, e.Y+e.H, 0, bc.EnemySpeed, bc.Width, bc.Height, bc.EnemyDamage)
	})
	w.enemyBullets = append(w.enemyBullets, b)
}

// SpawnPowerUp drops a pickup centered on (cx, cy).
func (w *World) SpawnPowerUp(k entity.PowerUpKind, cx, cy float64) *entity.PowerUp {
	p := entity.NewPowerUp(k, cx, cy, w.cfg.PowerUps)
	w.powerUps = append(w.powerUps, p)
	return p
}

// SpawnExplosion adds an explosion effect centered on (cx, cy).
func (w *World) SpawnExplosion(cx, cy float64) {
	fx := w.cfg.Effects
	w.explosions = append(w.explosions, entity.NewExplosion(cx, cy, fx.ExplosionRadius, fx.ExplosionDuration))
}

// SpawnText adds a floating label centered on (cx, cy).
func (w *World) SpawnText(text string, cx, cy float64) {
	fx := w.cfg.Effects
	w.texts = append(w.texts, entity.NewFloatingText(text, cx, cy, fx.TextRise, fx.TextDuration))
}

// Cleanup removes inactive entities and returns bullets to the pool.
func (w *World) Cleanup() {
	w.enemies = compact(w.enemies, func(e *entity.Enemy) bool { return e.Active })
	w.playerBullets = w.releaseInactive(w.playerBullets)
	w.enemyBullets = w.releaseInactive(w.enemyBullets)
	w.powerUps = compact(w.powerUps, func(p *entity.PowerUp) bool { return p.Active })
	w.explosions = compact(w.explosions, func(x *entity.Explosion) bool { return x.Active })
	w.texts = compact(w.texts, func(t *entity.FloatingText) bool { return t.Active })
}

func (w *World) releaseInactive(list []*entity.Bullet) []*entity.Bullet {
	return compact(list, func(b *entity.Bullet) bool {
		if b.Active {
			return true
		}
		w.bullets.Release(b)
		return false
	})
}

// compact filters list in place, keeping the elements for which keep is true.
func compact[T any](list []*T, keep func(*T) bool) []*T {
	out := list[:0]
	for _, v := range list {
		if keep(v) {
			out = append(out, v)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}

// ClearAll empties every collection and the player slot.
func (w *World) ClearAll() {
	for _, b := range w.playerBullets {
		w.bullets.Release(b)
	}
	for _, b := range w.enemyBullets {
		w.bullets.Release(b)
	}
	w.player = nil
	w.enemies = nil
	w.playerBullets = nil
	w.enemyBullets = nil
	w.powerUps = nil
	w.explosions = nil
	w.texts = nil
}

// Counts returns collection sizes and pool statistics.
func (w *World) Counts() Counts {
	return Counts{
		Enemies:       len(w.enemies),
		PlayerBullets: len(w.playerBullets),
		EnemyBullets:  len(w.enemyBullets),
		PowerUps:      len(w.powerUps),
		Effects:       len(w.explosions) + len(w.texts),
		PoolInUse:     w.bullets.InUse(),
		PoolFree:      w.bullets.Free(),
		PoolAllocated: w.bullets.Allocated(),
	}
}
