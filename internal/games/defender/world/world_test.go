package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/entity"
)

func newWorld(mutate func(*config.DefenderConfig)) *World {
	cfg := config.DefaultDefenderConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w := New(cfg, core.NewRNG(1))
	w.SpawnPlayer()
	return w
}

func addBasic(w *World, x, y float64) *entity.Enemy {
	kc := w.cfg.Enemies.Basic
	e := entity.NewEnemy(entity.EnemyBasic, kc, x, y, 1, 0, "straight")
	w.AddEnemy(e)
	return e
}

func TestBoundsExemption(t *testing.T) {
	w := newWorld(func(c *config.DefenderConfig) { c.Arena.EnemyReentry = config.ReentryNone })

	e := addBasic(w, 100, 600+1000)
	w.FirePlayer()
	b := w.ActivePlayerBullets()[0]
	b.Y = 600 + 1000

	w.Update(16, core.Intents{})

	if !e.Active {
		t.Error("enemy far below the arena must stay active")
	}
	if b.Active {
		t.Error("player bullet far below the arena must be deactivated")
	}
}

func TestEnemyReentryWrap(t *testing.T) {
	w := newWorld(nil)

	e := addBasic(w, -200, 600+w.cfg.Arena.BoundsMargin+1)
	w.Update(16, core.Intents{})

	if !e.Active {
		t.Fatal("wrapped enemy must stay active")
	}
	if e.Y != -e.H {
		t.Errorf("Y = %v, expected wrap to %v", e.Y, -e.H)
	}
	if e.X != 0 {
		t.Errorf("X = %v, expected clamp to 0", e.X)
	}
}

func TestBulletsCulledAboveTop(t *testing.T) {
	w := newWorld(nil)
	w.FirePlayer()

	// 600px/s needs about a second to clear the arena plus margin
	for i := 0; i < 70; i++ {
		w.Update(16, core.Intents{})
		w.Cleanup()
	}
	if n := len(w.ActivePlayerBullets()); n != 0 {
		t.Errorf("%d bullets still active, expected 0", n)
	}
	if c := w.Counts(); c.PlayerBullets != 0 || c.PoolInUse != 0 {
		t.Errorf("Counts() = %+v, expected bullets released", c)
	}
}

func TestFirePlayerLevels(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
	}

	for _, tc := range tests {
		w := newWorld(nil)
		w.Player().WeaponLevel = tc.level

		if got := w.FirePlayer(); got != tc.expected {
			t.Errorf("level %d FirePlayer() = %d, expected %d", tc.level, got, tc.expected)
		}
		for _, b := range w.ActivePlayerBullets() {
			if b.VY >= 0 || b.Category != entity.CategoryPlayerBullet {
				t.Errorf("level %d bullet VY = %v, category %v", tc.level, b.VY, b.Category)
			}
		}
	}

	w := newWorld(nil)
	w.Player().WeaponLevel = 3
	w.FirePlayer()
	spread := 0
	for _, b := range w.ActivePlayerBullets() {
		if b.VX != 0 {
			spread++
		}
	}
	if spread != 2 {
		t.Errorf("level 3 angled bullets = %d, expected 2", spread)
	}
}

func TestCleanupReleasesToPool(t *testing.T) {
	w := newWorld(nil)
	allocated := w.Counts().PoolAllocated

	w.FirePlayer()
	w.FirePlayer()
	for _, b := range w.ActivePlayerBullets() {
		b.Deactivate()
	}
	if len(w.ActivePlayerBullets()) != 0 {
		t.Error("ActivePlayerBullets() returned inactive bullets")
	}

	w.Cleanup()
	c := w.Counts()
	if c.PlayerBullets != 0 || c.PoolInUse != 0 {
		t.Errorf("after Cleanup(): %+v", c)
	}
	if c.PoolAllocated != allocated {
		t.Errorf("PoolAllocated = %d, expected prewarmed %d", c.PoolAllocated, allocated)
	}
}

func TestCleanupRemovesDeadEnemies(t *testing.T) {
	w := newWorld(nil)
	a := addBasic(w, 100, 100)
	addBasic(w, 200, 100)

	a.Deactivate()
	if w.ActiveEnemyCount() != 1 || len(w.ActiveEnemies()) != 1 {
		t.Errorf("active enemies = %d, expected 1", w.ActiveEnemyCount())
	}

	w.Cleanup()
	if w.Counts().Enemies != 1 {
		t.Errorf("Counts().Enemies = %d, expected 1", w.Counts().Enemies)
	}
}

func TestEnemyShooting(t *testing.T) {
	w := newWorld(nil)
	kc := w.cfg.Enemies.Tank
	tank := entity.NewEnemy(entity.EnemyTank, kc, 100, 100, 1, 0, "straight")
	tank.ShotCooldown = 16
	w.AddEnemy(tank)

	w.Update(16, core.Intents{})

	bullets := w.ActiveEnemyBullets()
	if len(bullets) != 1 {
		t.Fatalf("enemy bullets = %d, expected 1", len(bullets))
	}
	if bullets[0].VY <= 0 {
		t.Errorf("enemy bullet VY = %v, expected downward", bullets[0].VY)
	}
}

func TestPlayerMovesWithIntents(t *testing.T) {
	w := newWorld(nil)
	x := w.Player().X

	w.Update(100, core.Intents{Right: true})
	if math.Abs(w.Player().X-(x+30)) > 1e-9 {
		t.Errorf("X = %v, expected %v", w.Player().X, x+30)
	}
}

func TestEffectsExpire(t *testing.T) {
	w := newWorld(nil)
	w.SpawnExplosion(100, 100)
	w.SpawnText("+100", 100, 100)

	if len(w.Explosions()) != 1 || len(w.Texts()) != 1 {
		t.Fatal("effects were not added")
	}

	w.Update(1000, core.Intents{})
	w.Cleanup()
	if c := w.Counts(); c.Effects != 0 {
		t.Errorf("Counts().Effects = %d, expected 0", c.Effects)
	}
}

func TestPowerUpFalls(t *testing.T) {
	w := newWorld(nil)
	p := w.SpawnPowerUp(entity.PowerUpShield, 100, 100)
	y := p.Y

	w.Update(500, core.Intents{})
	if p.Y != y+50 {
		t.Errorf("Y = %v, expected %v", p.Y, y+50)
	}
}

func TestClearAll(t *testing.T) {
	w := newWorld(nil)
	addBasic(w, 100, 100)
	w.FirePlayer()
	w.SpawnPowerUp(entity.PowerUpBomb, 10, 10)
	w.SpawnExplosion(10, 10)

	w.ClearAll()

	c := w.Counts()
	if c.Enemies+c.PlayerBullets+c.EnemyBullets+c.PowerUps+c.Effects != 0 {
		t.Errorf("Counts() after ClearAll() = %+v", c)
	}
	if c.PoolInUse != 0 {
		t.Errorf("PoolInUse = %d, expected 0", c.PoolInUse)
	}
	if w.Player() != nil || w.PlayerAlive() {
		t.Error("player slot should be empty after ClearAll()")
	}
}

func TestPatternContextTracksPlayer(t *testing.T) {
	w := newWorld(nil)

	ctx := w.PatternContext()
	cx, cy := w.Player().Center()
	if !ctx.HasPlayer || ctx.PlayerX != cx || ctx.PlayerY != cy {
		t.Errorf("PatternContext() = %+v, expected player at (%v, %v)", ctx, cx, cy)
	}

	w.Player().Deactivate()
	if w.PatternContext().HasPlayer {
		t.Error("dead player should not be visible to patterns")
	}
}
