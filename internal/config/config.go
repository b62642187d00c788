// Package config provides YAML-based world definitions for the simulation:
// which resources exist, which generators produce them, which upgrade
// tracks can be bought, and the engine's timing parameters.
package config

import (
	"fmt"

	"github.com/vovakirdan/idle-engine/internal/curve"
)

// World is a complete game definition as loaded from a YAML file.
type World struct {
	Name       string         `yaml:"name"`
	Simulation SimulationDef  `yaml:"simulation"`
	Resources  []ResourceDef  `yaml:"resources"`
	Generators []GeneratorDef `yaml:"generators"`
	Upgrades   []UpgradeDef   `yaml:"upgrades"`
}

// SimulationDef holds engine timing parameters.
type SimulationDef struct {
	TickInterval   Duration `yaml:"tick_interval"`
	TimeMultiplier float64  `yaml:"time_multiplier"`
}

// ResourceDef declares a resource with a stable identifier.
type ResourceDef struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// GeneratorDef declares a generator, referencing a resource by id.
type GeneratorDef struct {
	ID        string     `yaml:"id"`
	Resource  string     `yaml:"resource"`
	Automatic bool       `yaml:"automatic"`
	Curve     curve.Spec `yaml:"curve"`
}

// CostDef declares one denomination of an upgrade step's price.
type CostDef struct {
	Resource string     `yaml:"resource"`
	Curve    curve.Spec `yaml:"curve"`
}

// UpgradeDef declares an upgrade track, referencing a generator by id.
type UpgradeDef struct {
	ID     string    `yaml:"id"`
	Target string    `yaml:"target"`
	Costs  []CostDef `yaml:"costs"`
}

// Validate checks the world for dangling references, duplicate identifiers,
// and unbuildable curves. Returns the first problem found.
func Validate(w World) error {
	resources := make(map[string]bool, len(w.Resources))
	for _, r := range w.Resources {
		if r.ID == "" {
			return fmt.Errorf("config: resource %q has no id", r.Name)
		}
		if resources[r.ID] {
			return fmt.Errorf("config: duplicate resource id %q", r.ID)
		}
		resources[r.ID] = true
	}

	generators := make(map[string]bool, len(w.Generators))
	for _, g := range w.Generators {
		if g.ID == "" {
			return fmt.Errorf("config: generator with no id")
		}
		if generators[g.ID] {
			return fmt.Errorf("config: duplicate generator id %q", g.ID)
		}
		generators[g.ID] = true
		if !resources[g.Resource] {
			return fmt.Errorf("config: generator %q references unknown resource %q", g.ID, g.Resource)
		}
		if _, err := curve.Build(g.Curve); err != nil {
			return fmt.Errorf("config: generator %q: %w", g.ID, err)
		}
	}

	upgrades := make(map[string]bool, len(w.Upgrades))
	for _, u := range w.Upgrades {
		if u.ID == "" {
			return fmt.Errorf("config: upgrade with no id")
		}
		if upgrades[u.ID] {
			return fmt.Errorf("config: duplicate upgrade id %q", u.ID)
		}
		upgrades[u.ID] = true
		if !generators[u.Target] {
			return fmt.Errorf("config: upgrade %q targets unknown generator %q", u.ID, u.Target)
		}
		if len(u.Costs) == 0 {
			return fmt.Errorf("config: upgrade %q has no costs", u.ID)
		}
		for _, c := range u.Costs {
			if !resources[c.Resource] {
				return fmt.Errorf("config: upgrade %q cost references unknown resource %q", u.ID, c.Resource)
			}
			if _, err := curve.Build(c.Curve); err != nil {
				return fmt.Errorf("config: upgrade %q: %w", u.ID, err)
			}
		}
	}

	return nil
}
