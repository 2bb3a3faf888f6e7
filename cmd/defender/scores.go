package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/games/defender"
	"github.com/vovakirdan/star-defender/internal/platform/tui"
	"github.com/vovakirdan/star-defender/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

By default an interactive table is shown. Use --plain to print the
table to stdout instead, e.g. for scripts.

Examples:
  defender scores
  defender scores --plain
  defender scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores without the interactive table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		width, height := terminalSize()
		return tui.RunScoreboard(store, defender.ID, defender.Title, width, height)
	}
	return printScores(os.Stdout, store)
}

// printScores writes the score table as plain text.
func printScores(w io.Writer, store *storage.Store) error {
	scores, err := store.TopScores(defender.ID, storage.MaxEntries)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", defender.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'defender play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %-5s  %s\n", "Rank", "Score", "Wave", "Kills", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-4s  %-5s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-4d  %-5d  %s\n", i+1, entry.Score, entry.Wave, entry.Kills, dateStr)
	}

	stats, err := store.GetGameStats(defender.ID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Games: %d  Total kills: %d\n", stats.HighScore, stats.GamesCount, stats.TotalKills)
	}
	return nil
}
