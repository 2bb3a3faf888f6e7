package config

import (
	"errors"
	"fmt"
)

// Validate checks numeric invariants the simulation relies on.
// Enemy kind and pattern names are not checked here: malformed wave tables are
// tolerated by the wave composer, which falls back and logs instead.
func (c DefenderConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena: size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	check(c.Arena.BoundsMargin >= 0, "arena: bounds_margin must not be negative")
	check(c.Arena.EnemyReentry == ReentryWrap || c.Arena.EnemyReentry == ReentryNone,
		"arena: enemy_reentry must be %q or %q, got %q", ReentryWrap, ReentryNone, c.Arena.EnemyReentry)

	check(c.Player.Width > 0 && c.Player.Height > 0, "player: size must be positive")
	check(c.Player.Health > 0, "player: health must be positive, got %d", c.Player.Health)
	check(c.Player.FireRate > 0, "player: fire_rate must be positive")
	check(c.Player.InvincibleDuration >= 0, "player: invincible_duration must not be negative")
	check(c.Player.MaxWeaponLevel >= 1, "player: max_weapon_level must be at least 1")

	check(c.Bullets.Width > 0 && c.Bullets.Height > 0, "bullets: size must be positive")
	check(c.Bullets.PlayerDamage > 0 && c.Bullets.EnemyDamage > 0, "bullets: damage must be positive")
	check(c.Bullets.Prewarm >= 0, "bullets: prewarm must not be negative")

	kinds := map[string]EnemyKindConfig{
		"basic":  c.Enemies.Basic,
		"fast":   c.Enemies.Fast,
		"tank":   c.Enemies.Tank,
		"zigzag": c.Enemies.Zigzag,
		"boss":   c.Enemies.Boss,
	}
	for name, k := range kinds {
		check(k.Width > 0 && k.Height > 0, "enemies.%s: size must be positive", name)
		check(k.Score >= 0, "enemies.%s: score must not be negative", name)
		check(k.ShotInterval >= 0, "enemies.%s: shot_interval must not be negative", name)
		if name != "boss" {
			check(k.Health > 0, "enemies.%s: health must be positive", name)
		}
	}
	check(c.Enemies.BossHealth(1) > 0, "enemies: boss health for wave 1 must be positive")
	check(c.Enemies.ContactDamage > 0, "enemies: contact_damage must be positive")

	check(c.Waves.ClearDelay >= 0, "waves: clear_delay must not be negative")
	check(c.Waves.Procedural.BaseCount > 0, "waves.procedural: base_count must be positive")
	check(c.Waves.Procedural.DelayMin > 0, "waves.procedural: delay_min must be positive")
	for i, w := range c.Waves.Handcrafted {
		check(w.SpawnDelay > 0, "waves.handcrafted[%d]: spawn_delay must be positive", i)
	}

	check(c.Combo.Timeout > 0, "combo: timeout must be positive")
	check(c.Combo.Step >= 0, "combo: step must not be negative")
	check(c.Combo.MaxMultiplier >= 1, "combo: max_multiplier must be at least 1")

	check(c.PowerUps.DropChance >= 0 && c.PowerUps.DropChance <= 1, "powerups: drop_chance must be within [0, 1]")
	w := c.PowerUps.Weights
	check(w.TripleShot >= 0 && w.RapidFire >= 0 && w.Shield >= 0 && w.Bomb >= 0, "powerups: weights must not be negative")
	check(w.Total() > 0, "powerups: at least one weight must be positive")
	check(c.PowerUps.RapidFireDuration >= 0 && c.PowerUps.ShieldDuration >= 0, "powerups: durations must not be negative")

	return errors.Join(errs...)
}
