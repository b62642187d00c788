// Package blueprint defines the immutable descriptions of game entities:
// resources, generators, and upgrade tracks. Blueprints carry identity and
// growth curves only; all mutable progress (current amounts, current levels)
// lives inside the simulation engine, keyed by blueprint identifier.
package blueprint

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/idle-engine/internal/curve"
)

// Resource names a countable quantity in the game (gold, wood, energy).
type Resource struct {
	ID   string
	Name string
}

// NewResource creates a resource with a fresh identifier.
func NewResource(name string) Resource {
	return Resource{ID: uuid.NewString(), Name: name}
}

// ResourceWithID creates a resource with an explicit identifier.
// Used when loading world definitions with stable ids.
func ResourceWithID(id, name string) Resource {
	return Resource{ID: id, Name: name}
}

// Generator produces a resource. Its curve maps the generator's upgrade
// level to the production amount per second (automatic generators) or per
// manual trigger.
type Generator struct {
	ID        string
	Resource  Resource
	Curve     curve.Curve
	Automatic bool
}

// NewGenerator creates a generator with a fresh identifier.
func NewGenerator(res Resource, c curve.Curve, automatic bool) Generator {
	return Generator{ID: uuid.NewString(), Resource: res, Curve: c, Automatic: automatic}
}

// GeneratorWithID creates a generator with an explicit identifier.
func GeneratorWithID(id string, res Resource, c curve.Curve, automatic bool) Generator {
	return Generator{ID: id, Resource: res, Curve: c, Automatic: automatic}
}

// Cost is one denomination of an upgrade step's price. The curve is
// evaluated over the level being priced.
type Cost struct {
	Resource Resource
	Curve    curve.Curve
}

// Upgrade binds a purchasable upgrade track to the generator it levels up,
// with one or more resource costs per step. The engine keys the level
// component by the target's identifier, not the upgrade's own.
type Upgrade struct {
	ID     string
	Target Generator
	Costs  []Cost
}

// NewUpgrade creates an upgrade track with a fresh identifier.
func NewUpgrade(target Generator, costs ...Cost) Upgrade {
	return Upgrade{ID: uuid.NewString(), Target: target, Costs: costs}
}

// UpgradeWithID creates an upgrade track with an explicit identifier.
func UpgradeWithID(id string, target Generator, costs ...Cost) Upgrade {
	return Upgrade{ID: id, Target: target, Costs: costs}
}
