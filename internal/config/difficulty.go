package config

import "math"

// presetScaling describes how a preset adjusts the base configuration.
type presetScaling struct {
	playerHealth int     // Absolute health, 0 keeps the configured value
	enemySpeed   float64 // Multiplier applied to every enemy archetype
	dropChance   float64 // Multiplier applied to the drop chance
	waveScaling  bool    // Whether enemy speed grows with the wave number
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {playerHealth: 5, enemySpeed: 0.8, dropChance: 1.6, waveScaling: true},
	DifficultyNormal: {enemySpeed: 1.0, dropChance: 1.0, waveScaling: true},
	DifficultyHard:   {playerHealth: 2, enemySpeed: 1.25, dropChance: 0.66, waveScaling: true},
	DifficultyFixed:  {enemySpeed: 1.0, dropChance: 1.0, waveScaling: false},
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	p, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Preset = string(preset)

	if p.playerHealth > 0 {
		cfg.Player.Health = p.playerHealth
	}

	for _, k := range []*EnemyKindConfig{
		&cfg.Enemies.Basic,
		&cfg.Enemies.Fast,
		&cfg.Enemies.Tank,
		&cfg.Enemies.Zigzag,
		&cfg.Enemies.Boss,
	} {
		k.Speed *= p.enemySpeed
	}

	cfg.PowerUps.DropChance = clampF(cfg.PowerUps.DropChance*p.dropChance, 0, 1)

	if !p.waveScaling {
		cfg.Enemies.SpeedStepPerWave = 0
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
