package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in Star Defender configuration.
// It mirrors defaults/defender.yaml and is used when the embedded file cannot be parsed.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Arena: ArenaConfig{
			Width:        800,
			Height:       600,
			BoundsMargin: 50,
			EnemyReentry: ReentryWrap,
		},
		Player: PlayerConfig{
			Width:              40,
			Height:             30,
			Speed:              300,
			Health:             3,
			SpawnOffset:        20,
			FireRate:           250,
			InvincibleDuration: 1500,
			MaxWeaponLevel:     3,
			SpreadSpeed:        120,
		},
		Bullets: BulletConfig{
			Width:        4,
			Height:       12,
			PlayerSpeed:  600,
			EnemySpeed:   250,
			PlayerDamage: 1,
			EnemyDamage:  1,
			Prewarm:      64,
		},
		Enemies: EnemiesConfig{
			Basic:             EnemyKindConfig{Width: 30, Height: 30, Health: 1, Score: 100, Speed: 80},
			Fast:              EnemyKindConfig{Width: 25, Height: 25, Health: 1, Score: 150, Speed: 160},
			Tank:              EnemyKindConfig{Width: 40, Height: 40, Health: 3, Score: 300, Speed: 50, ShotInterval: 2000},
			Zigzag:            EnemyKindConfig{Width: 30, Height: 30, Health: 2, Score: 200, Speed: 100},
			Boss:              EnemyKindConfig{Width: 80, Height: 60, Score: 1000, Speed: 40, ShotInterval: 1000},
			BossBaseHealth:    10,
			BossHealthPerWave: 10,
			SpeedStepPerWave:  0.10,
			ContactDamage:     1000,
		},
		Patterns: PatternConfig{
			SineAmplitude:   60,
			SineFrequency:   3,
			ZigzagInterval:  800,
			CircleRadius:    50,
			CircleSpeed:     2.5,
			JitterInterval:  200,
			DiveCharge:      1200,
			DiveMultiplier:  3,
			HoverSpeed:      20,
			StrafeLine:      80,
			FallbackPattern: "straight",
		},
		Waves: WavesConfig{
			ClearDelay: 2000,
			Handcrafted: []WaveTable{
				{Formation: "line", SpawnDelay: 1000, Entries: []WaveEntry{
					{Kind: "basic", Count: 5, Pattern: "straight"},
					{Kind: "boss", Count: 1, Pattern: "strafe"},
				}},
				{Formation: "line", SpawnDelay: 900, Entries: []WaveEntry{
					{Kind: "basic", Count: 4, Pattern: "sine"},
					{Kind: "fast", Count: 3, Pattern: "straight"},
					{Kind: "boss", Count: 1, Pattern: "strafe"},
				}},
				{Formation: "scattered", SpawnDelay: 850, Entries: []WaveEntry{
					{Kind: "basic", Count: 4, Pattern: "straight"},
					{Kind: "fast", Count: 3, Pattern: "zigzag"},
					{Kind: "tank", Count: 2, Pattern: "straight"},
					{Kind: "boss", Count: 1, Pattern: "strafe"},
				}},
				{Formation: "mixed", SpawnDelay: 800, Entries: []WaveEntry{
					{Kind: "basic", Count: 3, Pattern: "sine"},
					{Kind: "fast", Count: 4, Pattern: "dive"},
					{Kind: "tank", Count: 2, Pattern: "straight"},
					{Kind: "zigzag", Count: 3, Pattern: "zigzag"},
					{Kind: "boss", Count: 1, Pattern: "circular"},
				}},
				{Formation: "assault", SpawnDelay: 750, Entries: []WaveEntry{
					{Kind: "basic", Count: 3, Pattern: "random"},
					{Kind: "fast", Count: 4, Pattern: "dive"},
					{Kind: "tank", Count: 3, Pattern: "straight"},
					{Kind: "zigzag", Count: 4, Pattern: "zigzag"},
					{Kind: "boss", Count: 1, Pattern: "strafe"},
				}},
			},
			Procedural: ProceduralConfig{
				BaseCount:    5,
				CountPerWave: 2,
				BasicShare:   ShareCurve{Start: 0.5, Step: -0.03, Limit: 0.2},
				FastShare:    ShareCurve{Start: 0.2, Step: 0.02, Limit: 0.4},
				TankShare:    ShareCurve{Start: 0.1, Step: 0.02, Limit: 0.3},
				DelayStart:   1000,
				DelayStep:    50,
				DelayMin:     400,
				Formations:   []string{"scattered", "mixed", "assault", "chaos"},
				Patterns: map[string][]string{
					"basic":  {"straight", "sine"},
					"fast":   {"dive", "straight", "random"},
					"tank":   {"straight", "sine"},
					"zigzag": {"zigzag", "random"},
					"boss":   {"strafe", "circular"},
				},
			},
		},
		Combo: ComboConfig{
			Timeout:       2000,
			Step:          0.1,
			MaxMultiplier: 5.0,
		},
		PowerUps: PowerUpConfig{
			DropChance: 0.15,
			Weights: PowerUpWeights{
				TripleShot: 3,
				RapidFire:  3,
				Shield:     2,
				Bomb:       1,
			},
			FallSpeed:         100,
			Width:             24,
			Height:            24,
			RapidFireDuration: 8000,
			ShieldDuration:    10000,
		},
		Effects: EffectsConfig{
			ExplosionDuration: 500,
			ExplosionRadius:   30,
			TextDuration:      800,
			TextRise:          40,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDefenderYAML
}
