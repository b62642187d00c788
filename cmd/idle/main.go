// idle is an incremental-game simulation engine for the terminal.
//
// Usage:
//
//	idle run                 - Run a world in real time
//	idle list                - Show a world's resources, generators and upgrades
//	idle validate <file>     - Check a world definition file
//	idle snapshots           - Show saved snapshots for a world
//
// Global flags:
//
//	--world <path>  - Path to a world definition (default: embedded world)
//	--db <path>     - Path to snapshot database (default: ~/.idle/snapshots.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagWorldPath string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "idle",
	Short: "Idle engine - run incremental-game worlds in your terminal",
	Long: `Idle engine is a tick-driven simulation core for incremental games.
It advances resource amounts and upgrade levels over elapsed time according
to per-entity growth curves, with pause/resume, fast-forward, and snapshot
persistence.

Available commands:
  run        - Run a world in real time
  list       - Show a world's blueprints
  validate   - Check a world definition file
  snapshots  - View saved snapshots

Examples:
  idle run
  idle run --world worlds/space.yaml --fast-forward 8h
  idle validate worlds/space.yaml
  idle snapshots`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagWorldPath, "world", "", "Path to world definition (empty = embedded default)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.idle/snapshots.db", "Path to snapshot database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(snapshotsCmd)
}
