package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "grok"))
	require.NoError(t, e.SelectPersona(st, "minimalist"))
	require.NoError(t, e.SetPersonality(st, PersonalityDirective))
	e.SetLever(st, "creativity", 9)

	data, err := e.ExportJSON(st)
	require.NoError(t, err)

	restored := NewState(e.Registry())
	require.NoError(t, e.Import(restored, data))

	assert.Equal(t, st.ModelID, restored.ModelID)
	assert.Equal(t, st.PersonaID, restored.PersonaID)
	assert.Equal(t, st.Personality, restored.Personality)
	assert.Equal(t, st.Levers, restored.Levers)
}

func TestImport_MalformedRejectsWhole(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	before := st.Clone()

	err := e.Import(st, []byte(`{"model": "grok", "levers": {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
	assert.Equal(t, before.Levers, st.Levers)
	assert.Equal(t, before.ModelID, st.ModelID)
}

func TestImport_UnknownModelRejectsWhole(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	before := st.Clone()

	err := e.Import(st, []byte(`{"model": "nonesuch", "levers": {"playfulness": 9}}`))
	require.Error(t, err)
	// Nothing landed, the lever value included.
	assert.Equal(t, before.Levers, st.Levers)
}

func TestImport_UnknownPersonalityRejectsWhole(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	err := e.Import(st, []byte(`{"personality": "bombastic"}`))
	require.Error(t, err)
	assert.Equal(t, PersonalityNeutral, st.Personality)
}

func TestImport_ExplicitLeversWinOverSelections(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.Import(st, []byte(`{"model": "grok", "levers": {"playfulness": 1}}`)))

	assert.Equal(t, "grok", st.ModelID)
	// grok defaults playfulness to 8, but the explicit value applies last.
	assert.Equal(t, 1, st.Levers["playfulness"])
}

func TestImport_UnknownLeverSkipped(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.Import(st, []byte(`{"levers": {"nonesuch": 3, "playfulness": 6}}`)))

	assert.Equal(t, 6, st.Levers["playfulness"])
	assert.NotContains(t, st.Levers, "nonesuch")
}

func TestImport_ValuesClamped(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.Import(st, []byte(`{"levers": {"playfulness": 42, "formality": -5}}`)))

	assert.Equal(t, 10, st.Levers["playfulness"])
	assert.Equal(t, 0, st.Levers["formality"])
}

func TestImport_RespectsLocks(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	// grok locks identitySourceLock at its model default of 8.
	require.NoError(t, e.Import(st, []byte(`{"model": "grok", "levers": {"identitySourceLock": 2}}`)))

	assert.Equal(t, 8, st.Levers["identitySourceLock"])
}

func TestImport_EmojiShutoff(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.Import(st, []byte(`{"emojiShutoff": true}`)))
	assert.True(t, st.EmojiShutoff)

	// An absent field leaves the toggle alone.
	require.NoError(t, e.Import(st, []byte(`{"levers": {"playfulness": 6}}`)))
	assert.True(t, st.EmojiShutoff)

	require.NoError(t, e.Import(st, []byte(`{"emojiShutoff": false}`)))
	assert.False(t, st.EmojiShutoff)
}

func TestExport_EmojiShutoff(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	data, err := e.ExportJSON(st)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "emojiShutoff")

	st.EmojiShutoff = true
	data, err = e.ExportJSON(st)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"emojiShutoff": true`)

	restored := NewState(e.Registry())
	require.NoError(t, e.Import(restored, data))
	assert.True(t, restored.EmojiShutoff)
}

func TestExport_IncludesPersonality(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	s := e.Export(st)
	assert.Equal(t, "neutral", s.Personality)

	require.NoError(t, e.SetPersonality(st, PersonalityWitty))
	s = e.Export(st)
	assert.Equal(t, "witty", s.Personality)
}
