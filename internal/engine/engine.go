package engine

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/jviolette/aituner/internal/catalog"
)

// Engine applies models, personas, and lever edits to a State. It holds no
// mutable state of its own; the catalogs are injected at construction.
type Engine struct {
	reg     *catalog.Registry
	cat     *catalog.Catalog
	applier PersonaApplier
}

// Option configures an Engine.
type Option func(*Engine)

// WithApplier selects the persona apply strategy. The default is
// VerbatimApply.
func WithApplier(a PersonaApplier) Option {
	return func(e *Engine) { e.applier = a }
}

// New creates an engine over the given catalogs.
func New(reg *catalog.Registry, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{reg: reg, cat: cat, applier: VerbatimApply{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the lever registry the engine was built with.
func (e *Engine) Registry() *catalog.Registry { return e.reg }

// Catalog returns the preset catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// clamp forces a lever value into [0,10].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// clampRound rounds a blended value to the nearest integer, then clamps.
func clampRound(v float64) int {
	return clamp(int(math.Round(v)))
}

// SelectModel sets the selected model and applies its defaults. Levers the
// model does not mention keep their current values, and the selected
// persona is untouched.
func (e *Engine) SelectModel(st *State, modelID string) error {
	model, ok := e.cat.FindModel(modelID)
	if !ok {
		return fmt.Errorf("unknown model %q", modelID)
	}
	st.ModelID = model.ID
	for id, v := range model.Defaults {
		if !e.reg.Has(id) {
			log.Warn().Str("model", model.ID).Str("lever", id).Msg("model default references unknown lever")
			continue
		}
		st.Levers[id] = clamp(v)
	}
	return nil
}

// SelectPersona sets the selected persona and applies its lever values
// through the configured apply strategy. Levers the persona does not
// mention keep their current values.
func (e *Engine) SelectPersona(st *State, personaID string) error {
	persona, ok := e.cat.FindPersona(personaID)
	if !ok {
		return fmt.Errorf("unknown persona %q", personaID)
	}
	st.PersonaID = persona.ID

	var defaults map[string]int
	if model, ok := e.cat.FindModel(st.ModelID); ok {
		defaults = model.Defaults
	}
	e.applier.Apply(e.reg, st, persona, defaults)
	return nil
}

// SetLever sets one lever to the clamped value. Unknown ids are skipped
// with a diagnostic; levers locked by the selected model are silently left
// unchanged.
func (e *Engine) SetLever(st *State, leverID string, value int) {
	lever, ok := e.reg.Get(leverID)
	if !ok {
		log.Warn().Str("lever", leverID).Msg("set ignored: unknown lever")
		return
	}
	if st.ModelID != "" && lever.LockedFor(st.ModelID) {
		// Expected UI behavior while the locking model is selected, not an
		// anomaly worth logging at warn.
		log.Debug().Str("lever", leverID).Str("model", st.ModelID).Msg("set ignored: lever locked")
		return
	}
	st.Levers[leverID] = clamp(value)
}

// SetPersonality sets the personality tag and blends its 8-axis profile
// into the current levers (70% profile, 30% current). Invalid tags are
// rejected.
func (e *Engine) SetPersonality(st *State, p Personality) error {
	if !p.Valid() {
		return fmt.Errorf("unknown personality %q", p)
	}
	st.Personality = p
	for id, pv := range p.Profile() {
		if !e.reg.Has(id) {
			continue
		}
		cur := st.Levers[id]
		st.Levers[id] = clampRound(float64(pv)*0.7 + float64(cur)*0.3)
	}
	return nil
}

// ResetModel clears the model selection and reinitializes every lever to
// its catalog default. The persona selection is kept.
func (e *Engine) ResetModel(st *State) {
	st.ModelID = ""
	e.initLevers(st)
}

// ResetPersona clears the persona selection. If a model is still selected
// its defaults are reapplied over fresh catalog defaults; otherwise the
// levers return to catalog defaults.
func (e *Engine) ResetPersona(st *State) {
	st.PersonaID = ""
	e.initLevers(st)
	if model, ok := e.cat.FindModel(st.ModelID); ok {
		for id, v := range model.Defaults {
			if e.reg.Has(id) {
				st.Levers[id] = clamp(v)
			}
		}
	}
}

// ResetLevers returns the named levers to their catalog defaults, leaving
// every other lever and both selections untouched.
func (e *Engine) ResetLevers(st *State, ids []string) {
	for _, id := range ids {
		lever, ok := e.reg.Get(id)
		if !ok {
			log.Warn().Str("lever", id).Msg("reset ignored: unknown lever")
			continue
		}
		st.Levers[id] = lever.DefaultValue()
	}
}

// ResetAll clears both selections, the personality tag, and the emoji
// shutoff, and reinitializes all levers to catalog defaults.
func (e *Engine) ResetAll(st *State) {
	st.ModelID = ""
	st.PersonaID = ""
	st.Personality = PersonalityNeutral
	st.EmojiShutoff = false
	e.initLevers(st)
}

func (e *Engine) initLevers(st *State) {
	for _, l := range e.reg.All() {
		st.Levers[l.ID] = l.DefaultValue()
	}
}
