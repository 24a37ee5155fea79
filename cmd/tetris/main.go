// tetris is a small falling-block game for the terminal.
//
// Usage:
//
//	tetris                   - Play a game (same as "tetris play")
//	tetris play              - Play a game
//	tetris history           - Show finished games
//	tetris history --clear   - Delete all finished games
//	tetris config            - Print the effective config YAML
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible piece order
//	--db <path>     - Set database path (default: ~/.tetris/history.db)
//	--config <path> - Use a custom config YAML
//	--log <path>    - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Terminal Tetris - stack falling pieces on a 10-column board",
	Long: `A minimal Tetris for the terminal. Each key press moves the
falling piece and then drops it one row; there is no timer.

Available commands:
  play     - Play a game (default)
  history  - Show finished games
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --seed 42
  tetris play --plain
  tetris history --browse`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (empty = no logging)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
