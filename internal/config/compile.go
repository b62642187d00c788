package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/idle-engine/internal/blueprint"
	"github.com/vovakirdan/idle-engine/internal/curve"
	"github.com/vovakirdan/idle-engine/internal/sim"
)

// CompiledWorld holds the blueprints built from a world definition, ready
// to register with an engine.
type CompiledWorld struct {
	Name       string
	Simulation sim.Configuration
	Resources  []blueprint.Resource
	Generators []blueprint.Generator
	Upgrades   []blueprint.Upgrade
}

// Compile validates a world definition and builds its blueprints.
func Compile(w World) (*CompiledWorld, error) {
	if err := Validate(w); err != nil {
		return nil, err
	}

	cw := &CompiledWorld{
		Name: w.Name,
		Simulation: sim.Configuration{
			TickInterval:   time.Duration(w.Simulation.TickInterval),
			TimeMultiplier: w.Simulation.TimeMultiplier,
		},
	}

	resources := make(map[string]blueprint.Resource, len(w.Resources))
	for _, def := range w.Resources {
		r := blueprint.ResourceWithID(def.ID, def.Name)
		resources[def.ID] = r
		cw.Resources = append(cw.Resources, r)
	}

	generators := make(map[string]blueprint.Generator, len(w.Generators))
	for _, def := range w.Generators {
		c, err := curve.Build(def.Curve)
		if err != nil {
			return nil, fmt.Errorf("config: generator %q: %w", def.ID, err)
		}
		g := blueprint.GeneratorWithID(def.ID, resources[def.Resource], c, def.Automatic)
		generators[def.ID] = g
		cw.Generators = append(cw.Generators, g)
	}

	for _, def := range w.Upgrades {
		costs := make([]blueprint.Cost, 0, len(def.Costs))
		for _, cd := range def.Costs {
			c, err := curve.Build(cd.Curve)
			if err != nil {
				return nil, fmt.Errorf("config: upgrade %q: %w", def.ID, err)
			}
			costs = append(costs, blueprint.Cost{Resource: resources[cd.Resource], Curve: c})
		}
		cw.Upgrades = append(cw.Upgrades, blueprint.UpgradeWithID(def.ID, generators[def.Target], costs...))
	}

	return cw, nil
}

// RegisterAll registers every compiled blueprint with the engine, in
// dependency order: resources, then generators, then upgrade tracks.
func (cw *CompiledWorld) RegisterAll(e *sim.Engine) {
	for _, r := range cw.Resources {
		e.RegisterResource(r)
	}
	for _, g := range cw.Generators {
		e.RegisterGenerator(g)
	}
	for _, u := range cw.Upgrades {
		e.RegisterUpgrade(u)
	}
}
