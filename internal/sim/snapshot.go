package sim

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SnapshotVersion is the current layout version of encoded snapshots.
const SnapshotVersion = 1

// Snapshot is the versioned, serializable image of a simulation's mutable
// state. Blueprints are not part of it; a snapshot is restored into an
// engine whose blueprints were registered through the usual path, and
// component values are matched up by identifier.
type Snapshot struct {
	Version        int                `yaml:"version"`
	TotalDuration  time.Duration      `yaml:"total_duration"`
	Paused         bool               `yaml:"paused"`
	TimeMultiplier float64            `yaml:"time_multiplier"`
	Resources      map[string]float64 `yaml:"resources"`
	Levels         map[string]int     `yaml:"levels"`
}

// Snapshot captures the engine's current state.
func (e *Engine) Snapshot() Snapshot {
	var snap Snapshot
	e.do(func() {
		snap = Snapshot{
			Version:        SnapshotVersion,
			TotalDuration:  e.total,
			Paused:         e.paused,
			TimeMultiplier: e.cfg.TimeMultiplier,
			Resources:      make(map[string]float64, len(e.resources)),
			Levels:         make(map[string]int, len(e.levels)),
		}
		for id, comp := range e.resources {
			snap.Resources[id] = comp.value
		}
		for id, comp := range e.levels {
			snap.Levels[id] = comp.level
		}
	})
	return snap
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses persisted snapshot bytes. Unparseable input or an
// unknown layout version yields ErrMalformedSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedSnapshot, s.Version)
	}
	return s, nil
}

// Restore applies a decoded snapshot to the engine: total duration, time
// multiplier, and every component value or level whose identifier matches a
// registered component. Identifiers with no registered component are
// reported and skipped. The run state (paused/running) is left to the
// caller; the snapshot's Paused field records what it was at capture time.
func (e *Engine) Restore(snap Snapshot) {
	e.do(func() {
		e.total = snap.TotalDuration
		if snap.TimeMultiplier > 0 {
			e.cfg.TimeMultiplier = snap.TimeMultiplier
		}
		for id, v := range snap.Resources {
			comp, ok := e.resources[id]
			if !ok {
				e.log.Error("snapshot names unregistered resource", "id", id)
				continue
			}
			comp.value = v
		}
		for id, lvl := range snap.Levels {
			comp, ok := e.levels[id]
			if !ok {
				e.log.Error("snapshot names unregistered upgrade target", "id", id)
				continue
			}
			comp.level = lvl
		}
	})
}

// RestoreBytes decodes persisted snapshot bytes and applies them.
// Malformed input fails without touching engine state.
func (e *Engine) RestoreBytes(data []byte) error {
	snap, err := DecodeSnapshot(data)
	if err != nil {
		return err
	}
	e.Restore(snap)
	return nil
}
