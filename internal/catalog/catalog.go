package catalog

import "fmt"

// Catalog groups the selectable model and persona presets. Like the lever
// Registry it is constant after construction and injected into the engine.
type Catalog struct {
	models   []AIModel
	personas []Persona
}

// NewCatalog validates the presets against a lever registry: every lever id
// referenced by a model default, persona value, or adaptation must exist.
func NewCatalog(reg *Registry, models []AIModel, personas []Persona) (*Catalog, error) {
	for _, m := range models {
		for id := range m.Defaults {
			if !reg.Has(id) {
				return nil, fmt.Errorf("model %q references unknown lever %q", m.ID, id)
			}
		}
	}
	for _, p := range personas {
		for id := range p.Levers {
			if !reg.Has(id) {
				return nil, fmt.Errorf("persona %q references unknown lever %q", p.ID, id)
			}
		}
		for modelID, a := range p.Adaptations {
			for id := range a.Overrides {
				if !reg.Has(id) {
					return nil, fmt.Errorf("persona %q adaptation for %q references unknown lever %q", p.ID, modelID, id)
				}
			}
			for _, id := range a.Preserve {
				if !reg.Has(id) {
					return nil, fmt.Errorf("persona %q adaptation for %q preserves unknown lever %q", p.ID, modelID, id)
				}
			}
		}
	}
	return &Catalog{models: models, personas: personas}, nil
}

// DefaultCatalog returns the built-in model and persona presets, validated
// against the given registry.
func DefaultCatalog(reg *Registry) *Catalog {
	c, err := NewCatalog(reg, builtinModels, builtinPersonas)
	if err != nil {
		panic(err)
	}
	return c
}

// Models returns the model presets in fixed display order.
func (c *Catalog) Models() []AIModel {
	out := make([]AIModel, len(c.models))
	copy(out, c.models)
	return out
}

// Personas returns the persona presets in fixed display order.
func (c *Catalog) Personas() []Persona {
	out := make([]Persona, len(c.personas))
	copy(out, c.personas)
	return out
}

// FindModel returns the model with the given id.
func (c *Catalog) FindModel(id string) (AIModel, bool) {
	for _, m := range c.models {
		if m.ID == id {
			return m, true
		}
	}
	return AIModel{}, false
}

// FindPersona returns the persona with the given id.
func (c *Catalog) FindPersona(id string) (Persona, bool) {
	for _, p := range c.personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
