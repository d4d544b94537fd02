// Package preset persists named snapshots of a tuner session. A preset
// captures the selections and every lever value so a saved configuration
// replays exactly, independent of catalog default changes.
package preset

import (
	"time"

	"github.com/google/uuid"

	"github.com/jviolette/aituner/internal/engine"
)

// Preset is a named, saved tuner configuration. ModelID and PersonaID are
// nil when nothing was selected at save time.
type Preset struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ModelID      *string        `json:"modelId"`
	PersonaID    *string        `json:"personaId"`
	Personality  string         `json:"personality"`
	Levers       map[string]int `json:"levers"`
	EmojiShutoff bool           `json:"emojiShutoff,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FromState snapshots the given state under a name.
func FromState(name string, st *engine.State) Preset {
	p := Preset{
		ID:           uuid.New().String(),
		Name:         name,
		Personality:  string(st.Personality),
		Levers:       make(map[string]int, len(st.Levers)),
		EmojiShutoff: st.EmojiShutoff,
		CreatedAt:    time.Now().UTC(),
	}
	if st.ModelID != "" {
		m := st.ModelID
		p.ModelID = &m
	}
	if st.PersonaID != "" {
		pr := st.PersonaID
		p.PersonaID = &pr
	}
	for id, v := range st.Levers {
		p.Levers[id] = v
	}
	return p
}

// Settings converts the preset into a replayable settings document. Lever
// values are included explicitly so they win over model and persona
// defaults during replay, and the emoji shutoff is always carried so a
// replay restores it exactly, off included.
func (p Preset) Settings() engine.Settings {
	emoji := p.EmojiShutoff
	s := engine.Settings{
		Personality:  p.Personality,
		Levers:       make(map[string]int, len(p.Levers)),
		EmojiShutoff: &emoji,
	}
	if p.ModelID != nil {
		s.Model = *p.ModelID
	}
	if p.PersonaID != nil {
		s.Persona = *p.PersonaID
	}
	for id, v := range p.Levers {
		s.Levers[id] = v
	}
	return s
}
