package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/storage"
)

// Game is the contract the model drives. Games contain pure logic with no
// Bubble Tea dependency; the model handles input, timing and display.
type Game interface {
	ID() string
	Title() string

	// Reset initializes or restarts the game for the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Advance runs one frame of dt milliseconds.
	Advance(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// bellCues are the audio cues rung as a terminal bell when enabled.
var bellCues = []string{"bomb", "hit"}

// Options configures a game model.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Bell    io.Writer     // Receives "\a" for bell cues, nil disables
	Latch   time.Duration // Held-key window, zero uses DefaultLatch

	Renderer *lipgloss.Renderer // Nil uses the default renderer
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game    Game
	screen  *core.Screen
	store   *storage.Store
	log     *log.Logger
	config  core.RuntimeConfig
	keys    *KeyMapper
	clock   frameClock
	bell    io.Writer
	palette Palette

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	best       int  // Stored high score when the run began
	newRecord  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		log:     logger,
		config:  cfg,
		keys:    NewKeyMapper(opts.Latch),
		bell:    opts.Bell,
		palette: NewPalette(opts.Renderer),
	}
	m.best = m.loadBest()
	return m
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.log.Warn("cannot read high score", "err", err)
		return 0
	}
	return best
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.keys.Release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.Press(msg, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one frame with the measured real delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	nominal := 1000 / float64(m.config.TickRate)
	dt := m.clock.delta(now, nominal)
	frame := m.keys.Frame(now)

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.newRecord = false
		m.best = m.loadBest()
		m.keys.Release()
		m.clock.reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Advance(frame, dt)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if cmd := m.ring(result.Cues); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// saveScore records the finished run once.
func (m *Model) saveScore() {
	st := m.gameState
	if m.store == nil || st.Score <= 0 {
		return
	}
	m.newRecord = st.Score > m.best

	rec := storage.Record{
		Score:    st.Score,
		Wave:     st.Wave,
		Kills:    st.Kills,
		Duration: time.Duration(st.Elapsed * float64(time.Millisecond)),
	}
	if _, err := m.store.SaveScore(m.game.ID(), rec); err != nil {
		m.log.Warn("cannot save score", "score", st.Score, "err", err)
		return
	}
	m.log.Info("score saved", "score", st.Score, "wave", st.Wave, "record", m.newRecord)
}

// ring returns a command writing a bell for the first bell cue, if any.
func (m Model) ring(cues []string) tea.Cmd {
	if m.bell == nil {
		return nil
	}
	for _, c := range cues {
		if slices.Contains(bellCues, c) {
			w := m.bell
			return func() tea.Msg {
				//nolint:errcheck // Best-effort bell
				io.WriteString(w, "\a")
				return nil
			}
		}
	}
	return nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".defender", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.newRecord {
		m.screen.DrawTextCentered(m.screen.Height()/2+4, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}
	return m.palette.Render(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
