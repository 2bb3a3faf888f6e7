// Package config provides YAML-based game configuration loading and
// difficulty presets for Star Defender.
//
// All durations are in milliseconds, all distances in world pixels and all
// speeds in pixels per second.
package config

// DefenderConfig contains every tunable constant of the simulation.
// It is copied by value into the session, so it is immutable after construction.
type DefenderConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Patterns   PatternConfig    `yaml:"patterns"`
	Waves      WavesConfig      `yaml:"waves"`
	Combo      ComboConfig      `yaml:"combo"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Enemy re-entry policies for enemies that leave the play area.
const (
	ReentryWrap = "wrap" // clamp horizontally, wrap to above the top edge past the bottom
	ReentryNone = "none" // leave enemies wherever their pattern takes them
)

// ArenaConfig defines the play area.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Distance past an edge before non-enemies are culled
	EnemyReentry string  `yaml:"enemy_reentry"` // "wrap" or "none"
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	Health             int     `yaml:"health"`
	SpawnOffset        float64 `yaml:"spawn_offset"` // Gap between ship bottom and arena bottom
	FireRate           float64 `yaml:"fire_rate"`    // Milliseconds between shots
	InvincibleDuration float64 `yaml:"invincible_duration"`
	MaxWeaponLevel     int     `yaml:"max_weapon_level"`
	SpreadSpeed        float64 `yaml:"spread_speed"` // Horizontal speed of side bullets at level 3
}

// BulletConfig defines both player and enemy projectiles.
type BulletConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	PlayerDamage int     `yaml:"player_damage"`
	EnemyDamage  int     `yaml:"enemy_damage"`
	Prewarm      int     `yaml:"prewarm"` // Bullets allocated up front
}

// EnemyKindConfig defines one enemy archetype.
type EnemyKindConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Health       int     `yaml:"health"`
	Score        int     `yaml:"score"`
	Speed        float64 `yaml:"speed"`
	ShotInterval float64 `yaml:"shot_interval"` // 0 disables shooting
}

// EnemiesConfig groups the archetypes with wave scaling parameters.
type EnemiesConfig struct {
	Basic             EnemyKindConfig `yaml:"basic"`
	Fast              EnemyKindConfig `yaml:"fast"`
	Tank              EnemyKindConfig `yaml:"tank"`
	Zigzag            EnemyKindConfig `yaml:"zigzag"`
	Boss              EnemyKindConfig `yaml:"boss"`
	BossBaseHealth    int             `yaml:"boss_base_health"`
	BossHealthPerWave int             `yaml:"boss_health_per_wave"`
	SpeedStepPerWave  float64         `yaml:"speed_step_per_wave"` // Speed multiplier = 1 + step*(wave-1)
	ContactDamage     int             `yaml:"contact_damage"`      // Damage dealt to an enemy that touches the player
}

// SpeedMultiplier returns the enemy speed multiplier for a wave.
func (e EnemiesConfig) SpeedMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 1 + e.SpeedStepPerWave*float64(wave-1)
}

// BossHealth returns the health a boss spawned in the given wave receives.
func (e EnemiesConfig) BossHealth(wave int) int {
	return e.BossBaseHealth + e.BossHealthPerWave*wave
}

// PatternConfig holds the movement pattern parameters.
type PatternConfig struct {
	SineAmplitude   float64 `yaml:"sine_amplitude"`
	SineFrequency   float64 `yaml:"sine_frequency"` // Radians per second
	ZigzagInterval  float64 `yaml:"zigzag_interval"`
	CircleRadius    float64 `yaml:"circle_radius"`
	CircleSpeed     float64 `yaml:"circle_speed"` // Radians per second
	JitterInterval  float64 `yaml:"jitter_interval"`
	DiveCharge      float64 `yaml:"dive_charge"`
	DiveMultiplier  float64 `yaml:"dive_multiplier"`
	HoverSpeed      float64 `yaml:"hover_speed"` // Descent speed while a diver charges
	StrafeLine      float64 `yaml:"strafe_line"` // Y at which strafing enemies stop descending
	FallbackPattern string  `yaml:"fallback_pattern"`
}

// WavesConfig defines the handcrafted tables and the procedural generator.
type WavesConfig struct {
	ClearDelay  float64          `yaml:"clear_delay"`
	Handcrafted []WaveTable      `yaml:"handcrafted"`
	Procedural  ProceduralConfig `yaml:"procedural"`
}

// WaveTable is one authored wave.
type WaveTable struct {
	Formation  string      `yaml:"formation"`
	SpawnDelay float64     `yaml:"spawn_delay"`
	Entries    []WaveEntry `yaml:"entries"`
}

// WaveEntry is a group of identical enemies inside a wave.
type WaveEntry struct {
	Kind    string `yaml:"kind"`
	Count   int    `yaml:"count"`
	Pattern string `yaml:"pattern"`
}

// ProceduralConfig drives waves after the handcrafted table runs out.
type ProceduralConfig struct {
	BaseCount    int                 `yaml:"base_count"`
	CountPerWave int                 `yaml:"count_per_wave"`
	BasicShare   ShareCurve          `yaml:"basic_share"`
	FastShare    ShareCurve          `yaml:"fast_share"`
	TankShare    ShareCurve          `yaml:"tank_share"`
	DelayStart   float64             `yaml:"delay_start"`
	DelayStep    float64             `yaml:"delay_step"`
	DelayMin     float64             `yaml:"delay_min"`
	Formations   []string            `yaml:"formations"`
	Patterns     map[string][]string `yaml:"patterns"` // Enemy kind -> candidate patterns
}

// ShareCurve is a linear share of the wave clamped at Limit.
// A negative Step makes Limit a floor, a positive Step makes it a ceiling.
type ShareCurve struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
	Limit float64 `yaml:"limit"`
}

// At evaluates the curve for wave n.
func (c ShareCurve) At(n int) float64 {
	v := c.Start + c.Step*float64(n)
	if c.Step < 0 {
		if v < c.Limit {
			return c.Limit
		}
		return v
	}
	if v > c.Limit {
		return c.Limit
	}
	return v
}

// ComboConfig defines the kill-chain multiplier.
type ComboConfig struct {
	Timeout       float64 `yaml:"timeout"`
	Step          float64 `yaml:"step"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// PowerUpConfig defines drops and buff durations.
type PowerUpConfig struct {
	DropChance        float64        `yaml:"drop_chance"` // 0.0 - 1.0
	Weights           PowerUpWeights `yaml:"weights"`
	FallSpeed         float64        `yaml:"fall_speed"`
	Width             float64        `yaml:"width"`
	Height            float64        `yaml:"height"`
	RapidFireDuration float64        `yaml:"rapid_fire_duration"`
	ShieldDuration    float64        `yaml:"shield_duration"`
}

// PowerUpWeights are relative drop weights, higher = more common.
type PowerUpWeights struct {
	TripleShot int `yaml:"triple_shot"`
	RapidFire  int `yaml:"rapid_fire"`
	Shield     int `yaml:"shield"`
	Bomb       int `yaml:"bomb"`
}

// Total returns the sum of all weights.
func (w PowerUpWeights) Total() int {
	return w.TripleShot + w.RapidFire + w.Shield + w.Bomb
}

// EffectsConfig defines cosmetic effect timings.
type EffectsConfig struct {
	ExplosionDuration float64 `yaml:"explosion_duration"`
	ExplosionRadius   float64 `yaml:"explosion_radius"`
	TextDuration      float64 `yaml:"text_duration"`
	TextRise          float64 `yaml:"text_rise"`
}

// DifficultyConfig records which preset produced this configuration.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}
