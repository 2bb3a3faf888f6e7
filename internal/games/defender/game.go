// Package defender adapts a Star Defender session to the platform's game
// contract: runtime configuration in, input frames in, screen buffer out.
package defender

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender/session"
)

const (
	// ID is the identifier used for score storage.
	ID = "defender"
	// Title is the display name.
	Title = "Star Defender"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the effective configuration: custom or user file,
// embedded defaults, then the difficulty preset.
func LoadConfig() (config.DefenderConfig, error) {
	cfg, err := config.LoadDefender(configPath)
	if err != nil {
		return config.DefaultDefenderConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements the platform game contract on top of a session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DefenderConfig
	log     *log.Logger
	sess    *session.Session

	// Layout (computed from screen size)
	field          core.Rect // Cells the arena maps onto
	screenTooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes session logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithConfig runs the game with cfg instead of loading one on Reset.
func WithConfig(cfg config.DefenderConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.sess = nil
	}
}

// New creates a Star Defender game. Call Reset before stepping.
func New(opts ...Option) *Game {
	g := &Game{log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset initializes or restarts the game for the given runtime settings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime

	if g.cfg.Arena.Width == 0 {
		cfg, err := LoadConfig()
		if err != nil {
			g.log.Warn("using default configuration", "err", err)
		}
		g.cfg = cfg
	}

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.sess = session.New(g.cfg, runtime.Seed, g.log)
}

// Resize recomputes the layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < minScreenW || h < minScreenH
	// HUD on the first row, a border around the arena below it
	g.field = core.NewRect(1, 2, core.Max(w-2, 0), core.Max(h-3, 0))
}

// Step advances the simulation by one nominal tick (1000/TickRate ms).
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, 1000/float64(g.runtime.TickRate))
}

// Advance advances the simulation by dt milliseconds. Pause and restart
// are handled here; movement and fire go to the session.
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	if g.sess == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.sess.State().GameOver {
		g.sess.Reset()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.sess.TogglePause()
	}

	if !g.screenTooSmall {
		g.sess.Step(in.Intents(), dt)
	}

	cues := g.sess.Drain()
	res := core.StepResult{State: g.State()}
	for _, c := range cues {
		res.Cues = append(res.Cues, string(c))
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	st := g.sess.State()
	return core.GameState{
		Score:    st.Score,
		Wave:     st.Wave,
		Kills:    st.Kills,
		Elapsed:  st.Elapsed,
		GameOver: st.GameOver,
		Paused:   st.Paused,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.DefenderConfig {
	return g.cfg
}
