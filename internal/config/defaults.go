package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/idle-engine/internal/curve"
)

//go:embed defaults/default.yaml
var defaultWorldYAML []byte

// DefaultWorld returns the built-in clicker world: a gold mine that trickles
// passively, a manual tapper, and upgrade tracks for both.
func DefaultWorld() World {
	return World{
		Name: "Goldrush",
		Simulation: SimulationDef{
			TickInterval:   Duration(100 * time.Millisecond),
			TimeMultiplier: 1.0,
		},
		Resources: []ResourceDef{
			{ID: "gold", Name: "Gold"},
			{ID: "gems", Name: "Gems"},
		},
		Generators: []GeneratorDef{
			{
				ID:        "mine",
				Resource:  "gold",
				Automatic: true,
				Curve:     curve.Spec{Kind: "linear", Initial: 1, Factor: 2},
			},
			{
				ID:        "tapper",
				Resource:  "gold",
				Automatic: false,
				Curve:     curve.Spec{Kind: "linear", Initial: 1, Factor: 1},
			},
			{
				ID:        "gem-drill",
				Resource:  "gems",
				Automatic: true,
				Curve:     curve.Spec{Kind: "flat", Value: 0.1},
			},
		},
		Upgrades: []UpgradeDef{
			{
				ID:     "mine-track",
				Target: "mine",
				Costs: []CostDef{
					{Resource: "gold", Curve: curve.Spec{Kind: "linear", Initial: 10, Factor: 15}},
				},
			},
			{
				ID:     "tapper-track",
				Target: "tapper",
				Costs: []CostDef{
					{Resource: "gold", Curve: curve.Spec{Kind: "linear", Initial: 10, Factor: 3}},
				},
			},
			{
				ID:     "drill-track",
				Target: "gem-drill",
				Costs: []CostDef{
					{Resource: "gold", Curve: curve.Spec{Kind: "exponential"}},
					{Resource: "gems", Curve: curve.Spec{Kind: "flat", Value: 1}},
				},
			},
		},
	}
}
