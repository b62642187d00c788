package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/idle-engine/internal/config"
	"github.com/vovakirdan/idle-engine/internal/curve"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show a world's resources, generators and upgrades",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	world, err := config.LoadWorld(flagWorldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(world); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("World: %s\n\n", world.Name)

	fmt.Println("Resources:")
	for _, r := range world.Resources {
		fmt.Printf("  %-12s  %s\n", r.ID, r.Name)
	}

	fmt.Println("\nGenerators:")
	for _, g := range world.Generators {
		mode := "manual"
		if g.Automatic {
			mode = "automatic"
		}
		fmt.Printf("  %-12s  -> %-8s  %-9s  %s\n", g.ID, g.Resource, mode, describeCurve(g.Curve))
	}

	fmt.Println("\nUpgrades:")
	for _, u := range world.Upgrades {
		fmt.Printf("  %-12s  levels %s\n", u.ID, u.Target)
		for _, c := range u.Costs {
			fmt.Printf("    costs %-8s  %s\n", c.Resource, describeCurve(c.Curve))
		}
	}
}

// describeCurve renders a curve spec in the shorthand used by world files.
func describeCurve(spec curve.Spec) string {
	switch spec.Kind {
	case "linear":
		return fmt.Sprintf("linear(initial=%g, factor=%g)", spec.Initial, spec.Factor)
	case "flat":
		return fmt.Sprintf("flat(%g)", spec.Value)
	default:
		return spec.Kind
	}
}
