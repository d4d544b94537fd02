package catalog

// PersonaType groups personas for presentation. Core personas show in the
// main grid; hidden personas are reachable only by id.
type PersonaType string

const (
	PersonaCore   PersonaType = "core"
	PersonaHidden PersonaType = "hidden"
)

// Adaptation tunes how a persona lands on a specific model when the blended
// apply strategy is active. Preserve keeps the model default for the named
// levers, Overrides wins outright, and everything else blends at
// BlendFactor (persona share; 0 means "use the default factor").
type Adaptation struct {
	BlendFactor float64        `json:"blendFactor,omitempty" yaml:"blend_factor,omitempty"`
	Overrides   map[string]int `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Preserve    []string       `json:"preserve,omitempty" yaml:"preserve,omitempty"`
}

// Persona is a named preset of lever values representing a behavioral role,
// with an activation snippet injected verbatim into the generated prompt.
type Persona struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Type        PersonaType `json:"type" yaml:"type"`
	Description string      `json:"description" yaml:"description"`
	// BestModels is a compatibility hint for display. It does not gate
	// selection.
	BestModels        []string       `json:"bestModels" yaml:"best_models"`
	ActivationSnippet string         `json:"activationSnippet" yaml:"activation_snippet"`
	Levers            map[string]int `json:"levers" yaml:"levers"`
	// Adaptations holds optional per-model blending rules, keyed by model
	// id. Only consulted by the blended apply strategy.
	Adaptations map[string]Adaptation `json:"modelAdaptations,omitempty" yaml:"model_adaptations,omitempty"`
}
