package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/idle-engine/internal/config"
	"github.com/vovakirdan/idle-engine/internal/format"
	"github.com/vovakirdan/idle-engine/internal/sim"
	"github.com/vovakirdan/idle-engine/internal/storage"
)

var (
	flagDuration    time.Duration
	flagFastForward time.Duration
	flagFresh       bool
	flagKeep        int
)

// snapshotsToKeep bounds how many snapshot rows a world accumulates.
const snapshotsToKeep = 20

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a world in real time",
	Long: `Load a world definition, restore its latest snapshot, and run the
simulation until interrupted (or for --duration). The engine state is
snapshotted to the database on exit.

Examples:
  idle run
  idle run --duration 30s
  idle run --fast-forward 8h       # apply 8 hours of progress instantly
  idle run --fresh                 # ignore saved snapshots`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this much wall-clock time (0 = until interrupted)")
	runCmd.Flags().DurationVar(&flagFastForward, "fast-forward", 0, "Simulate this much elapsed time instantly before going live")
	runCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Start from zero state, ignoring saved snapshots")
	runCmd.Flags().IntVar(&flagKeep, "keep", snapshotsToKeep, "Snapshots to retain per world")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "idle",
	})

	world, err := config.LoadWorld(flagWorldPath)
	if err != nil {
		logger.Fatal("cannot load world", "err", err)
	}
	cw, err := config.Compile(world)
	if err != nil {
		logger.Fatal("cannot compile world", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open snapshot database", "err", err)
	}
	defer store.Close()

	engine := sim.New(cw.Simulation, logger)
	defer engine.Close()
	cw.RegisterAll(engine)

	if !flagFresh {
		entry, err := store.LatestSnapshot(cw.Name)
		if err != nil {
			logger.Fatal("cannot load snapshot", "err", err)
		}
		if entry != nil {
			if err := engine.RestoreBytes(entry.Data); err != nil {
				logger.Fatal("cannot restore snapshot", "err", err, "saved", entry.CreatedAt)
			}
			logger.Info("restored snapshot", "saved", entry.CreatedAt.Format(time.RFC3339))
		}
	}

	if flagFastForward > 0 {
		engine.FastForward(flagFastForward)
		logger.Info("fast-forwarded", "interval", flagFastForward)
	}

	ticks := engine.Subscribe()
	engine.Resume()
	logger.Info("world running", "world", cw.Name, "tick", cw.Simulation.TickInterval)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var deadline <-chan time.Time
	if flagDuration > 0 {
		deadline = time.After(flagDuration)
	}

	report := time.NewTicker(time.Second)
	defer report.Stop()

	running := true
	for running {
		select {
		case <-ticks:
			// Drained so the engine's notifications never back up; status
			// printing is paced by the report ticker instead.
		case <-report.C:
			logger.Info("status",
				"elapsed", engine.TotalDuration().Round(time.Millisecond),
				"resources", statusLine(engine, cw))
		case <-interrupt:
			logger.Info("interrupted")
			running = false
		case <-deadline:
			running = false
		}
	}

	engine.Pause()

	data, err := engine.Snapshot().Encode()
	if err != nil {
		logger.Fatal("cannot encode snapshot", "err", err)
	}
	if _, err := store.SaveSnapshot(cw.Name, sim.SnapshotVersion, data); err != nil {
		logger.Fatal("cannot save snapshot", "err", err)
	}
	if err := store.Prune(cw.Name, flagKeep); err != nil {
		logger.Warn("cannot prune snapshots", "err", err)
	}
	logger.Info("snapshot saved", "world", cw.Name)
}

// statusLine renders every resource balance as "Name=1.23K", sorted by name.
func statusLine(engine *sim.Engine, cw *config.CompiledWorld) string {
	parts := make([]string, 0, len(cw.Resources))
	for _, r := range cw.Resources {
		v, err := engine.Value(r)
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", r.Name, format.Magnitude(v)))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
