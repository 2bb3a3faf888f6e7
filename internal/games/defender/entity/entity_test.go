package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultDefenderConfig().Player, 800, 600)
}

func TestDamageTransition(t *testing.T) {
	b := Base{Health: 2, MaxHealth: 2, Active: true}

	if b.Damage(1) {
		t.Error("Damage(1) from 2 should not report killed")
	}
	if !b.Damage(5) {
		t.Error("Damage(5) from 1 should report killed")
	}
	if b.Health != 0 {
		t.Errorf("Health = %d, expected clamp to 0", b.Health)
	}
	if b.Damage(1) {
		t.Error("Damage on a dead entity must not report a second kill")
	}
}

func TestAdvance(t *testing.T) {
	b := Base{X: 10, Y: 10, VX: 100, VY: -50, Active: true}
	b.Advance(500)

	if b.X != 60 || b.Y != -15 {
		t.Errorf("Advance(500) = (%v, %v), expected (60, -15)", b.X, b.Y)
	}
	if b.Age != 500 {
		t.Errorf("Age = %v, expected 500", b.Age)
	}
}

func TestNewPlayerSpawnPoint(t *testing.T) {
	p := newTestPlayer()

	if p.X != 380 || p.Y != 550 {
		t.Errorf("spawn = (%v, %v), expected (380, 550)", p.X, p.Y)
	}
	if p.WeaponLevel != 1 || p.Health != 3 {
		t.Errorf("WeaponLevel = %d, Health = %d, expected 1, 3", p.WeaponLevel, p.Health)
	}
}

func TestPlayerHitOrder(t *testing.T) {
	p := newTestPlayer()
	p.Shielded = true

	if got := p.Hit(1); got != HitAbsorbed {
		t.Fatalf("Hit() with shield = %v, expected absorbed", got)
	}
	if p.Shielded || p.Health != 3 || p.Invincible {
		t.Errorf("after absorb: shielded=%v health=%d invincible=%v", p.Shielded, p.Health, p.Invincible)
	}

	if got := p.Hit(1); got != HitDamaged {
		t.Fatalf("Hit() without shield = %v, expected damaged", got)
	}
	if p.Health != 2 || !p.Invincible {
		t.Errorf("after damage: health=%d invincible=%v", p.Health, p.Invincible)
	}

	// Invincibility ignores hits without touching a fresh shield
	p.Shielded = true
	if got := p.Hit(1); got != HitIgnored {
		t.Errorf("Hit() while invincible = %v, expected ignored", got)
	}
	if !p.Shielded {
		t.Error("ignored hit must not consume the shield")
	}
}

func TestPlayerKilled(t *testing.T) {
	p := newTestPlayer()
	p.Health = 1

	if got := p.Hit(1); got != HitKilled {
		t.Errorf("Hit() at 1 health = %v, expected killed", got)
	}
	if p.Health != 0 {
		t.Errorf("Health = %d, expected 0", p.Health)
	}
}

func TestPlayerInvincibilityExpires(t *testing.T) {
	p := newTestPlayer()
	p.Hit(1)

	p.Tick(1000)
	if !p.Invincible {
		t.Error("invincibility should still be active after 1000ms")
	}
	p.Tick(600)
	if p.Invincible || p.InvincibleRemaining != 0 {
		t.Errorf("invincible=%v remaining=%v, expected expired", p.Invincible, p.InvincibleRemaining)
	}
}

func TestPlayerMoveClamped(t *testing.T) {
	p := newTestPlayer()
	p.Move(core.Intents{Left: true, Down: true}, 10000, 800, 600)

	if p.X != 0 {
		t.Errorf("X = %v, expected clamp to 0", p.X)
	}
	if p.Y != 600-p.H {
		t.Errorf("Y = %v, expected clamp to %v", p.Y, 600-p.H)
	}
}

func TestPlayerFireRate(t *testing.T) {
	p := newTestPlayer()

	if !p.CanFire() {
		t.Fatal("fresh player should be able to fire")
	}
	p.Fired()
	if p.CanFire() {
		t.Error("player should be on cooldown after firing")
	}
	p.Tick(250)
	if !p.CanFire() {
		t.Error("cooldown should elapse after FireRate ms")
	}

	p.SetRapidFire(true)
	if p.FireRate != 125 || !p.RapidFire() {
		t.Errorf("rapid FireRate = %v, expected 125", p.FireRate)
	}
	p.SetRapidFire(false)
	if p.FireRate != 250 || p.RapidFire() {
		t.Errorf("restored FireRate = %v, expected 250", p.FireRate)
	}
}

func TestUpgradeWeaponCapped(t *testing.T) {
	p := newTestPlayer()
	p.UpgradeWeapon()
	p.UpgradeWeapon()

	if p.UpgradeWeapon() {
		t.Error("UpgradeWeapon() at level 3 should report false")
	}
	if p.WeaponLevel != 3 {
		t.Errorf("WeaponLevel = %d, expected 3", p.WeaponLevel)
	}
}

func TestNewEnemy(t *testing.T) {
	cfg := config.DefaultDefenderConfig().Enemies

	e := NewEnemy(EnemyTank, cfg.Tank, 100, -40, 1.5, 0, "straight")
	if e.Health != 3 || e.ScoreValue != 300 {
		t.Errorf("tank health=%d score=%d, expected 3, 300", e.Health, e.ScoreValue)
	}
	if e.Speed != 75 {
		t.Errorf("tank speed = %v, expected 75", e.Speed)
	}
	if !e.CanShoot || !e.ShowHealthBar() {
		t.Error("tank should shoot and show a health bar")
	}

	boss := NewEnemy(EnemyBoss, cfg.Boss, 0, 0, 1, cfg.BossHealth(2), "strafe")
	if boss.Health != 30 || boss.MaxHealth != 30 {
		t.Errorf("boss health = %d/%d, expected 30/30", boss.Health, boss.MaxHealth)
	}

	basic := NewEnemy(EnemyBasic, cfg.Basic, 0, 0, 1, 0, "straight")
	if basic.CanShoot || basic.ShowHealthBar() {
		t.Error("basic enemy should neither shoot nor show a health bar")
	}
}

func TestEnemyTickShot(t *testing.T) {
	cfg := config.DefaultDefenderConfig().Enemies
	e := NewEnemy(EnemyTank, cfg.Tank, 0, 0, 1, 0, "straight")

	shots := 0
	for i := 0; i < 100; i++ {
		if e.TickShot(50) {
			shots++
		}
	}
	// 5000ms at one shot per 2000ms
	if shots != 2 {
		t.Errorf("shots = %d, expected 2", shots)
	}
}

func TestParseKinds(t *testing.T) {
	for k := EnemyBasic; k < EnemyKindCount; k++ {
		got, ok := ParseEnemyKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseEnemyKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseEnemyKind("dragon"); ok {
		t.Error("ParseEnemyKind should reject unknown kinds")
	}

	for k := PowerUpTripleShot; k < PowerUpKindCount; k++ {
		got, ok := ParsePowerUpKind(k.String())
		if !ok || got != k {
			t.Errorf("ParsePowerUpKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
}

func TestBulletLaunch(t *testing.T) {
	b := NewBullet()
	b.Launch(CategoryEnemy, 100, 50, 0, 250, 4, 12, 1)

	if b.Category != CategoryEnemyBullet || !b.Active {
		t.Errorf("Category = %v, Active = %v", b.Category, b.Active)
	}
	if b.X != 98 {
		t.Errorf("X = %v, expected centered at 98", b.X)
	}

	ResetBullet(b)
	if b.Active || b.Damage != 0 {
		t.Error("ResetBullet should clear the bullet")
	}
}

func TestPowerUpCentered(t *testing.T) {
	cfg := config.DefaultDefenderConfig().PowerUps
	p := NewPowerUp(PowerUpShield, 100, 100, cfg)

	cx, cy := p.Center()
	if cx != 100 || cy != 100 {
		t.Errorf("Center() = (%v, %v), expected (100, 100)", cx, cy)
	}
	if p.VY != cfg.FallSpeed {
		t.Errorf("VY = %v, expected %v", p.VY, cfg.FallSpeed)
	}
}

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(50, 50, 30, 500)

	e.Update(250)
	if !e.Active {
		t.Fatal("explosion ended early")
	}
	if e.Radius <= 0 || e.Radius >= 30 {
		t.Errorf("mid-life Radius = %v, expected within (0, 30)", e.Radius)
	}

	e.Update(300)
	if e.Active {
		t.Error("explosion should end after its duration")
	}
	if math.Abs(e.Radius-30) > 1e-3 {
		t.Errorf("final Radius = %v, expected 30", e.Radius)
	}
}

func TestFloatingTextRises(t *testing.T) {
	ft := NewFloatingText("+150", 100, 200, 40, 800)

	ft.Update(400)
	if ft.Y >= 200 || ft.Y <= 160 {
		t.Errorf("mid-life Y = %v, expected within (160, 200)", ft.Y)
	}
	if f := ft.Fade(); f <= 0 || f >= 1 {
		t.Errorf("Fade() = %v, expected within (0, 1)", f)
	}

	ft.Update(500)
	if ft.Active {
		t.Error("text should end after its duration")
	}
	if math.Abs(ft.Y-160) > 1e-3 {
		t.Errorf("final Y = %v, expected 160", ft.Y)
	}
}
