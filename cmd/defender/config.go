package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-defender/internal/config"
	"github.com/vovakirdan/star-defender/internal/games/defender"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after applying
--config and --difficulty.

Examples:
  defender config dump
  defender config dump --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := applyGameFlags(); err != nil {
			return err
		}
		cfg, err := defender.LoadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Long: `Write the embedded default configuration so it can be edited.
Without a path the file goes to ~/.defender/configs/defender.yaml,
which is loaded automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := "~/.defender/configs/defender.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		path = expandHome(path)

		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, config.GetDefaultYAML(), 0o644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configInitCmd)
}
