// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048                    - Play interactively (same as "t2048 play")
//	t2048 play               - Play interactively
//	t2048 sim --moves l,u,r  - Apply moves headlessly and print the result
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--seed <value>       - RNG seed for reproducible games
//	--difficulty <name>  - Spawn preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// Effective configuration, loaded before any command runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide every tile up, down, left or right. Equal tiles that collide merge
into their sum, and a new tile appears after each move that changes the
board. The game ends when no move can change the board.

Available commands:
  play     - Play interactively (default)
  sim      - Apply a move sequence headlessly
  config   - Print the effective configuration

Examples:
  t2048
  t2048 --difficulty hard
  t2048 sim --seed 42 --moves l,u,r,d
  t2048 sim --board "2 2 0 0/0 0 0 0/0 0 0 0/0 0 0 0" --moves left`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and environment, then applies flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("difficulty") {
		cfg.Game.Difficulty = config.DifficultyPreset(flagDifficulty)
		cfg.Game.FourProbability = nil
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}
