package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/core"
	"github.com/vovakirdan/star-defender/internal/games/defender"
	"github.com/vovakirdan/star-defender/internal/platform/tui"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately, skipping the title screen.

Difficulty options:
  easy   - 5 health, slower enemies, more power-ups
  normal - Configuration as loaded
  hard   - 2 health, faster enemies, fewer power-ups
  fixed  - Enemy speed does not grow with the wave

Examples:
  defender play
  defender play --difficulty easy
  defender play --seed 42
  defender play --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// gameOptions builds the model options shared by play and the menu loop.
func gameOptions(store *storage.Store, logger *log.Logger, width, height int) tui.Options {
	opts := tui.Options{
		Store:  store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
	if flagBell {
		opts.Bell = os.Stdout
	}
	return opts
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	game := defender.New(defender.WithLogger(logger))

	if err := tui.Run(game, gameOptions(store, logger, width, height)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
