package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/idle-engine/internal/config"
	"github.com/vovakirdan/idle-engine/internal/format"
	"github.com/vovakirdan/idle-engine/internal/sim"
	"github.com/vovakirdan/idle-engine/internal/storage"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Show saved snapshots for a world",
	Long: `Display the most recent snapshots saved for the selected world,
including the simulated time each one had accumulated.

Examples:
  idle snapshots
  idle snapshots --world worlds/space.yaml`,
	Args: cobra.NoArgs,
	Run:  runSnapshots,
}

func runSnapshots(cmd *cobra.Command, args []string) {
	world, err := config.LoadWorld(flagWorldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.ListSnapshots(world.Name, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving snapshots: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Snapshots - %s\n\n", world.Name)

	if len(entries) == 0 {
		fmt.Println("No snapshots recorded yet.")
		fmt.Println()
		fmt.Println("Run 'idle run' to create the first one.")
		return
	}

	fmt.Printf("  %-4s  %-20s  %-12s  %s\n", "ID", "Saved", "Played", "Resources")
	fmt.Printf("  %-4s  %-20s  %-12s  %s\n", "--", "-----", "------", "---------")

	for _, entry := range entries {
		played := "?"
		resources := "?"
		if snap, err := sim.DecodeSnapshot(entry.Data); err == nil {
			played = snap.TotalDuration.String()
			resources = summarizeResources(snap)
		}
		fmt.Printf("  %-4d  %-20s  %-12s  %s\n",
			entry.ID, entry.CreatedAt.Format("2006-01-02 15:04"), played, resources)
	}
}

// summarizeResources renders up to three balances from a snapshot.
func summarizeResources(snap sim.Snapshot) string {
	ids := make([]string, 0, len(snap.Resources))
	for id := range snap.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, 3)
	for _, id := range ids {
		if len(parts) == 3 {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, fmt.Sprintf("%s=%s", id, format.Magnitude(snap.Resources[id])))
	}
	return strings.Join(parts, " ")
}
