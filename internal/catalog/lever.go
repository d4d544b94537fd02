// Package catalog holds the static tuning data for the AI Tuner engine:
// the lever registry (26 tunable parameters), the model presets, and the
// persona presets. Catalogs are immutable after construction and are
// injected into the engine rather than read as package globals, so tests
// can run multiple independent sessions in one process.
package catalog

import (
	"fmt"
	"sort"
)

// Range is a closed integer sub-interval of [0,10] describing where a
// lever's default value lives.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Lever is a single named tunable parameter in [0,10] controlling one axis
// of generated-prompt behavior.
type Lever struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	Low          string `json:"low" yaml:"low"`
	High         string `json:"high" yaml:"high"`
	DefaultRange Range  `json:"defaultRange" yaml:"default_range"`
	Category     string `json:"category" yaml:"category"`
	// Locked lists model ids for which this lever must not be user-editable
	// while that model is selected.
	Locked []string `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// DefaultValue is the midpoint of the default range, rounded down.
func (l Lever) DefaultValue() int {
	return (l.DefaultRange.Min + l.DefaultRange.Max) / 2
}

// LockedFor reports whether the lever is locked while modelID is selected.
func (l Lever) LockedFor(modelID string) bool {
	for _, id := range l.Locked {
		if id == modelID {
			return true
		}
	}
	return false
}

// Registry is the immutable lever catalog. Iteration order is lexicographic
// by id so that generated output is deterministic across runs.
type Registry struct {
	levers map[string]Lever
	order  []string
}

// NewRegistry builds a registry from the given levers. It rejects duplicate
// ids and default ranges that fall outside [0,10].
func NewRegistry(levers []Lever) (*Registry, error) {
	r := &Registry{levers: make(map[string]Lever, len(levers))}
	for _, l := range levers {
		if l.ID == "" {
			return nil, fmt.Errorf("lever with empty id")
		}
		if _, dup := r.levers[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lever id %q", l.ID)
		}
		if l.DefaultRange.Min < 0 || l.DefaultRange.Max > 10 || l.DefaultRange.Min > l.DefaultRange.Max {
			return nil, fmt.Errorf("lever %q: default range [%d,%d] outside [0,10]", l.ID, l.DefaultRange.Min, l.DefaultRange.Max)
		}
		r.levers[l.ID] = l
		r.order = append(r.order, l.ID)
	}
	sort.Strings(r.order)
	return r, nil
}

// DefaultRegistry returns the registry of the 26 built-in levers.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinLevers)
	if err != nil {
		// The builtin catalog is compile-time data; a validation failure
		// here is a programming error.
		panic(err)
	}
	return r
}

// Get returns the lever with the given id.
func (r *Registry) Get(id string) (Lever, bool) {
	l, ok := r.levers[id]
	return l, ok
}

// Has reports whether the registry contains the given id.
func (r *Registry) Has(id string) bool {
	_, ok := r.levers[id]
	return ok
}

// All returns every lever in lexicographic id order.
func (r *Registry) All() []Lever {
	out := make([]Lever, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.levers[id])
	}
	return out
}

// IDs returns every lever id in lexicographic order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of levers in the registry.
func (r *Registry) Len() int {
	return len(r.order)
}
