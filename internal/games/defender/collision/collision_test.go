package collision

import (
	"testing"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
	"github.com/vovakirdan/star-defender/internal/games/defender/event"
	"github.com/vovakirdan/star-defender/internal/games/defender/world"
)

type fixture struct {
	cfg      config.DefenderConfig
	w        *world.World
	resolver *Resolver
	q        event.Queue
}

func newFixture() *fixture {
	cfg := config.DefaultDefenderConfig()
	w := world.New(cfg, core.NewRNG(1))
	w.SpawnPlayer()
	return &fixture{cfg: cfg, w: w, resolver: NewResolver(cfg.Enemies.ContactDamage)}
}

func (f *fixture) enemy(k entity.EnemyKind, x, y float64, health int) *entity.Enemy {
	e := entity.NewEnemy(k, entity.KindConfig(f.cfg.Enemies, k), x, y, 1, health, "straight")
	f.w.AddEnemy(e)
	return e
}

// playerBullets fires n player bullets and stacks them on (x, y).
func (f *fixture) playerBullets(n int, x, y float64) []*entity.Bullet {
	for i := 0; i < n; i++ {
		f.w.FirePlayer()
	}
	bullets := f.w.ActivePlayerBullets()
	for _, b := range bullets {
		b.X, b.Y = x, y
	}
	return bullets
}

// enemyBullets fires n enemy bullets stacked on the player's center.
func (f *fixture) enemyBullets(n int) []*entity.Bullet {
	shooter := entity.NewEnemy(entity.EnemyTank, f.cfg.Enemies.Tank, 0, 0, 1, 0, "straight")
	for i := 0; i < n; i++ {
		f.w.FireEnemy(shooter)
	}
	cx, cy := f.w.Player().Center()
	bullets := f.w.ActiveEnemyBullets()
	for _, b := range bullets {
		b.X, b.Y = cx, cy
	}
	return bullets
}

func (f *fixture) resolve() {
	f.resolver.Resolve(f.w, &f.q)
}

func TestNoDoubleDestruction(t *testing.T) {
	f := newFixture()
	e := f.enemy(entity.EnemyBasic, 100, 100, 0)
	bullets := f.playerBullets(2, 110, 110)

	f.resolve()

	if got := f.q.Count(event.EnemyDestroyed); got != 1 {
		t.Errorf("EnemyDestroyed events = %d, expected 1", got)
	}
	if e.Active || e.Health != 0 {
		t.Errorf("enemy active=%v health=%d, expected destroyed", e.Active, e.Health)
	}
	if bullets[0].Active {
		t.Error("the bullet that hit should be deactivated")
	}
}

func TestBulletDamageAccumulates(t *testing.T) {
	f := newFixture()
	e := f.enemy(entity.EnemyTank, 100, 100, 0)
	f.playerBullets(2, 110, 110)

	f.resolve()

	if e.Health != 1 || !e.Active {
		t.Errorf("tank health=%d active=%v, expected 1, alive", e.Health, e.Active)
	}
	if f.q.Count(event.EnemyDestroyed) != 0 {
		t.Error("tank should survive two hits")
	}
}

func TestShieldAbsorbsExactlyOneHit(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	p.Shielded = true
	bullets := f.enemyBullets(2)

	f.resolve()

	if p.Shielded {
		t.Error("shield should be consumed")
	}
	if p.Health != 2 {
		t.Errorf("Health = %d, expected the second bullet to deal damage", p.Health)
	}
	if f.q.Count(event.ShieldAbsorbed) != 1 || f.q.Count(event.PlayerHit) != 1 {
		t.Errorf("ShieldAbsorbed = %d, PlayerHit = %d, expected 1, 1",
			f.q.Count(event.ShieldAbsorbed), f.q.Count(event.PlayerHit))
	}
	for i, b := range bullets {
		if b.Active {
			t.Errorf("bullet %d should be deactivated", i)
		}
	}
}

func TestShieldOnlyBulletLeavesHealth(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	p.Shielded = true
	bullets := f.enemyBullets(1)

	f.resolve()

	if p.Health != 3 || p.Shielded || bullets[0].Active {
		t.Errorf("health=%d shielded=%v bullet active=%v", p.Health, p.Shielded, bullets[0].Active)
	}
}

func TestInvincibilityKeepsShield(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	p.Invincible = true
	p.InvincibleRemaining = 1000
	p.Shielded = true
	bullets := f.enemyBullets(1)

	f.resolve()

	if !p.Shielded || p.Health != 3 {
		t.Errorf("shielded=%v health=%d, expected hit ignored", p.Shielded, p.Health)
	}
	if bullets[0].Active {
		t.Error("bullet should be deactivated even when the hit is ignored")
	}
	if f.q.Len() != 0 {
		t.Errorf("events = %v, expected none", f.q.Drain())
	}
}

func TestContactIsFatalToEnemy(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	boss := f.enemy(entity.EnemyBoss, p.X, p.Y, 5000)

	f.resolve()

	if boss.Active || f.q.Count(event.EnemyDestroyed) != 1 {
		t.Errorf("boss active=%v, destroyed events=%d, expected destroyed once", boss.Active, f.q.Count(event.EnemyDestroyed))
	}
	if p.Health != 2 {
		t.Errorf("player Health = %d, expected 2", p.Health)
	}
}

func TestPlayerKilled(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	p.Health = 1
	f.enemyBullets(2)

	f.resolve()

	if p.Active || p.Health != 0 {
		t.Errorf("player active=%v health=%d, expected dead", p.Active, p.Health)
	}
	if f.q.Count(event.PlayerKilled) != 1 {
		t.Errorf("PlayerKilled events = %d, expected 1", f.q.Count(event.PlayerKilled))
	}
}

func TestPowerUpCollected(t *testing.T) {
	f := newFixture()
	cx, cy := f.w.Player().Center()
	pu := f.w.SpawnPowerUp(entity.PowerUpRapidFire, cx, cy)

	f.resolve()

	if pu.Active {
		t.Error("collected power-up should be deactivated")
	}
	evs := f.q.Drain()
	if len(evs) != 1 || evs[0].Kind != event.PowerUpCollected || evs[0].PowerUp != entity.PowerUpRapidFire {
		t.Errorf("events = %+v, expected one rapid fire collection", evs)
	}
}

func TestDeadPlayerCollectsNothing(t *testing.T) {
	f := newFixture()
	p := f.w.Player()
	p.Health = 1
	f.enemyBullets(1)
	cx, cy := p.Center()
	pu := f.w.SpawnPowerUp(entity.PowerUpBomb, cx, cy)

	f.resolve()

	if p.Active {
		t.Fatal("player should be killed by the bullet")
	}
	if !pu.Active {
		t.Error("power-up touched by a dead player should stay in play")
	}
	if got := f.q.Count(event.PowerUpCollected); got != 0 {
		t.Errorf("PowerUpCollected events = %d, expected 0", got)
	}
}

func TestTouchingEdgesCollide(t *testing.T) {
	f := newFixture()
	e := f.enemy(entity.EnemyBasic, 100, 100, 0)

	// Bullet bottom edge exactly on the enemy top edge
	f.playerBullets(1, 110, 100-f.cfg.Bullets.Height)

	f.resolve()

	if e.Active {
		t.Error("touching boxes should collide")
	}
}

func TestMissesDoNothing(t *testing.T) {
	f := newFixture()
	e := f.enemy(entity.EnemyBasic, 100, 100, 0)
	bullets := f.playerBullets(1, 400, 100)

	f.resolve()

	if !e.Active || !bullets[0].Active || f.q.Len() != 0 {
		t.Error("non-overlapping entities must not interact")
	}
}
