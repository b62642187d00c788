package curve

import (
	"fmt"
	"sort"
	"sync"
)

// Spec is the serializable description of a curve, as it appears in world
// definition files. Which parameters are meaningful depends on the kind:
// linear reads initial+factor, flat reads value, exponential reads nothing.
type Spec struct {
	Kind    string  `yaml:"kind"`
	Initial float64 `yaml:"initial"`
	Factor  float64 `yaml:"factor"`
	Value   float64 `yaml:"value"`
}

// Factory builds a Curve from its serialized spec.
type Factory func(Spec) (Curve, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a curve factory under the given kind name.
// Typically called from an init() function.
// Panics if the kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("curve: kind %q already registered", kind))
	}

	factories[kind] = f
}

// Build constructs a Curve from a spec.
// Returns an error if the kind is not registered.
func Build(spec Spec) (Curve, error) {
	mu.RLock()
	f, ok := factories[spec.Kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("curve: unknown kind %q", spec.Kind)
	}

	return f(spec)
}

// Kinds returns the names of all registered curve kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func init() {
	Register("linear", func(s Spec) (Curve, error) {
		return Linear(s.Initial, s.Factor), nil
	})
	Register("exponential", func(Spec) (Curve, error) {
		return Exponential(), nil
	})
	Register("flat", func(s Spec) (Curve, error) {
		return Flat(s.Value), nil
	})
}
