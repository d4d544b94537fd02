// Package engine implements the resolution rules of the tuner: how model
// defaults, persona values, personality profiles, and individual lever
// edits combine into one configuration state. All operations are
// synchronous and complete before returning; the state is owned by a
// single session and never mutated concurrently.
package engine

import "github.com/jviolette/aituner/internal/catalog"

// State is the mutable per-session configuration. ModelID and PersonaID are
// empty when nothing is selected. Levers always holds exactly one entry per
// registry lever, with every value in [0,10].
type State struct {
	ModelID      string
	PersonaID    string
	Personality  Personality
	EmojiShutoff bool
	Levers       map[string]int
}

// NewState creates a state with every lever at its catalog default and no
// model or persona selected.
func NewState(reg *catalog.Registry) *State {
	st := &State{
		Personality: PersonalityNeutral,
		Levers:      make(map[string]int, reg.Len()),
	}
	for _, l := range reg.All() {
		st.Levers[l.ID] = l.DefaultValue()
	}
	return st
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	levers := make(map[string]int, len(s.Levers))
	for k, v := range s.Levers {
		levers[k] = v
	}
	return &State{
		ModelID:      s.ModelID,
		PersonaID:    s.PersonaID,
		Personality:  s.Personality,
		EmojiShutoff: s.EmojiShutoff,
		Levers:       levers,
	}
}
