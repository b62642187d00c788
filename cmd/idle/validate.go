package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/idle-engine/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a world definition file",
	Long: `Parse a world definition and report dangling references: generators
pointing at unknown resources, upgrades targeting unknown generators,
costs in unknown resources, duplicate identifiers, or unknown curve kinds.

Examples:
  idle validate worlds/space.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	world, err := config.LoadWorld(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Validate(world); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s (%d resources, %d generators, %d upgrades)\n",
		world.Name, len(world.Resources), len(world.Generators), len(world.Upgrades))
}
