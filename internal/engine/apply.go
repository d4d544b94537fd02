package engine

import "github.com/jviolette/aituner/internal/catalog"

// defaultBlendFactor is the persona share used by BlendedApply when a
// model adaptation does not set its own factor.
const defaultBlendFactor = 0.7

// PersonaApplier decides how a persona's lever values land on the state.
// modelDefaults is the selected model's default map, or nil when no model
// is selected.
type PersonaApplier interface {
	Apply(reg *catalog.Registry, st *State, p catalog.Persona, modelDefaults map[string]int)
}

// VerbatimApply writes persona lever values as-is (clamped). This is the
// documented default behavior.
type VerbatimApply struct{}

func (VerbatimApply) Apply(reg *catalog.Registry, st *State, p catalog.Persona, _ map[string]int) {
	for id, v := range p.Levers {
		if reg.Has(id) {
			st.Levers[id] = clamp(v)
		}
	}
}

// BlendedApply implements model-aware persona application. When the persona
// carries an adaptation for the selected model, preserved levers keep the
// model default, overridden levers take the override, and every other
// persona lever blends with the model default at the adaptation's factor.
// Personas without an adaptation for the selected model apply verbatim.
type BlendedApply struct{}

func (BlendedApply) Apply(reg *catalog.Registry, st *State, p catalog.Persona, modelDefaults map[string]int) {
	adaptation, adapted := p.Adaptations[st.ModelID]
	if !adapted {
		VerbatimApply{}.Apply(reg, st, p, modelDefaults)
		return
	}

	factor := adaptation.BlendFactor
	if factor == 0 {
		factor = defaultBlendFactor
	}

	preserved := make(map[string]bool, len(adaptation.Preserve))
	for _, id := range adaptation.Preserve {
		preserved[id] = true
	}

	for id, pv := range p.Levers {
		lever, ok := reg.Get(id)
		if !ok {
			continue
		}
		mv, hasDefault := modelDefaults[id]
		if !hasDefault {
			mv = lever.DefaultValue()
		}
		switch {
		case preserved[id]:
			st.Levers[id] = clamp(mv)
		default:
			if ov, ok := adaptation.Overrides[id]; ok {
				st.Levers[id] = clamp(ov)
				continue
			}
			st.Levers[id] = clampRound(float64(pv)*factor + float64(mv)*(1-factor))
		}
	}

	// Model defaults the persona does not cover still apply.
	for id, mv := range modelDefaults {
		if _, covered := p.Levers[id]; !covered && reg.Has(id) {
			st.Levers[id] = clamp(mv)
		}
	}
}
