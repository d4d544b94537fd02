package engine

import (
	"encoding/json"
	"fmt"
)

// Settings is the portable JSON shape of a tuner session. Model, persona,
// and personality are optional; levers carry only explicit values. The
// emoji shutoff is a tri-state pointer so an absent field leaves the
// current toggle alone.
type Settings struct {
	Model        string         `json:"model,omitempty"`
	Persona      string         `json:"persona,omitempty"`
	Personality  string         `json:"personality,omitempty"`
	Levers       map[string]int `json:"levers,omitempty"`
	EmojiShutoff *bool          `json:"emojiShutoff,omitempty"`
}

// Export captures the state as a Settings document.
func (e *Engine) Export(st *State) Settings {
	out := Settings{
		Model:       st.ModelID,
		Persona:     st.PersonaID,
		Personality: string(st.Personality),
		Levers:      make(map[string]int, len(st.Levers)),
	}
	for id, v := range st.Levers {
		out.Levers[id] = v
	}
	if st.EmojiShutoff {
		on := true
		out.EmojiShutoff = &on
	}
	return out
}

// ExportJSON renders the state as indented JSON.
func (e *Engine) ExportJSON(st *State) ([]byte, error) {
	s := e.Export(st)
	return json.MarshalIndent(s, "", "  ")
}

// Import replays a Settings document onto the state: model first, then
// persona, personality, and finally explicit lever values so they win over
// anything the earlier steps set (locked levers excepted). A malformed
// document or an unknown model,
// persona, or personality rejects the whole import and leaves the state
// untouched. Unknown lever ids are skipped with a diagnostic.
func (e *Engine) Import(st *State, data []byte) error {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("malformed settings: %w", err)
	}
	return e.Apply(st, s)
}

// Apply replays an already-parsed Settings document onto the state with
// Import's ordering and rejection rules.
func (e *Engine) Apply(st *State, s Settings) error {
	next := st.Clone()

	if s.Model != "" {
		if err := e.SelectModel(next, s.Model); err != nil {
			return err
		}
	}
	if s.Persona != "" {
		if err := e.SelectPersona(next, s.Persona); err != nil {
			return err
		}
	}
	if s.Personality != "" {
		if err := e.SetPersonality(next, Personality(s.Personality)); err != nil {
			return err
		}
	}
	// Explicit lever values go through SetLever so clamping and lock
	// checks apply exactly as they would for a live edit.
	for id, v := range s.Levers {
		e.SetLever(next, id, v)
	}
	if s.EmojiShutoff != nil {
		next.EmojiShutoff = *s.EmojiShutoff
	}

	*st = *next
	return nil
}
