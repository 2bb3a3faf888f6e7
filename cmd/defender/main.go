// defender is a vertical space shooter for the terminal.
//
// Usage:
//
//	defender                 - Title screen with play, difficulty and scores
//	defender play            - Start a game directly
//	defender scores          - Show the high score table
//	defender serve           - Start SSH server for remote play
//	defender simulate        - Run a headless autopilot game
//	defender config dump     - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.defender/scores.db)
//	--config <path>      - Load a custom YAML configuration
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Log file (default: ~/.defender/defender.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-defender/internal/games/defender"
	"github.com/vovakirdan/star-defender/internal/platform/tui"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
	flagBell       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defender",
	Short: "Star Defender - a space shooter in your terminal",
	Long: `Star Defender is a wave-based vertical shooter played in the terminal.
Enemies arrive in formations, shoot back and drop power-ups.
Chain kills to build a combo multiplier.

Controls:
  A/D, Left/Right  - Move
  W/S, Up/Down     - Move vertically
  Space/F          - Fire
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  defender
  defender play --difficulty hard
  defender scores
  defender serve --ssh :2222
  defender simulate --seed 42`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.defender/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.defender/defender.log", "Log file (\"-\" for stderr, empty disables)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on bombs and hits")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// newLogger builds the application logger from --log and --debug.
// The returned closer must be called on exit.
func newLogger() (*log.Logger, func()) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	switch flagLogPath {
	case "":
	case "-":
		w = os.Stderr
	default:
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				closeFn = func() { f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "defender",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// applyGameFlags passes --config and --difficulty to the game package.
func applyGameFlags() error {
	defender.SetConfigPath(flagConfig)
	defender.SetDifficultyPreset(flagDifficulty)
	if _, err := defender.LoadConfig(); err != nil {
		return err
	}
	return nil
}

// openStore opens the scores database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalSize returns the stdout size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = "normal"
	}

	for {
		res, err := tui.RunMenu(store, defender.ID, difficulty, width, height)
		if err != nil {
			return err
		}
		difficulty = res.Difficulty
		if res.Width > 0 && res.Height > 0 {
			width, height = res.Width, res.Height
		}

		switch res.Choice {
		case tui.ChoicePlay:
			flagDifficulty = difficulty
			if err := applyGameFlags(); err != nil {
				return err
			}
			logger.Info("starting game", "difficulty", difficulty)
			game := defender.New(defender.WithLogger(logger))
			if err := tui.Run(game, gameOptions(store, logger, width, height)); err != nil {
				return fmt.Errorf("running game: %w", err)
			}
		case tui.ChoiceScores:
			if err := tui.RunScoreboard(store, defender.ID, defender.Title, width, height); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
