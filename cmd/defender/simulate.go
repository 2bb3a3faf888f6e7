package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/games/defender"
)

var (
	flagFrames int
	flagDT     float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game under the autopilot",
	Long: `Run a game without a terminal, steering the ship with a simple
autopilot, and print the final result.

The run is deterministic for a given --seed, configuration and --dt,
which makes it useful for tuning configs and reproducing bugs.

Examples:
  defender simulate
  defender simulate --seed 42 --frames 36000
  defender simulate --difficulty hard --dt 33.3`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 18000, "Maximum frames to simulate")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1000.0/60, "Frame length in milliseconds")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagFrames <= 0 || flagDT <= 0 {
		return fmt.Errorf("--frames and --dt must be positive")
	}
	if err := applyGameFlags(); err != nil {
		return err
	}
	cfg, err := defender.LoadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger()
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	report := defender.Simulate(cfg, seed, flagFrames, flagDT, logger)
	logger.Info("simulation finished", "seed", seed, "frames", report.Frames, "took", time.Since(start))

	printReport(os.Stdout, seed, report)
	return nil
}

// printReport writes a simulation summary.
func printReport(w io.Writer, seed int64, r defender.Report) {
	outcome := "survived"
	if r.GameOver {
		outcome = "game over"
	}
	played := time.Duration(r.Result.Elapsed * float64(time.Millisecond)).Round(time.Second)

	fmt.Fprintf(w, "Seed:    %d\n", seed)
	fmt.Fprintf(w, "Outcome: %s after %d frames (%s)\n", outcome, r.Frames, played)
	fmt.Fprintf(w, "Score:   %d\n", r.Result.Score)
	fmt.Fprintf(w, "Wave:    %d\n", r.Result.Wave)
	fmt.Fprintf(w, "Kills:   %d\n", r.Result.Kills)
	fmt.Fprintf(w, "Pool:    %d in use, %d free, %d allocated\n",
		r.Counts.PoolInUse, r.Counts.PoolFree, r.Counts.PoolAllocated)
}
