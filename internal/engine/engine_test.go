package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jviolette/aituner/internal/catalog"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	reg := catalog.DefaultRegistry()
	return New(reg, catalog.DefaultCatalog(reg), opts...)
}

func TestNewState_SeedsAllDefaults(t *testing.T) {
	reg := catalog.DefaultRegistry()
	st := NewState(reg)

	assert.Empty(t, st.ModelID)
	assert.Empty(t, st.PersonaID)
	assert.Equal(t, PersonalityNeutral, st.Personality)
	assert.Len(t, st.Levers, reg.Len())

	for _, l := range reg.All() {
		assert.Equal(t, l.DefaultValue(), st.Levers[l.ID], "lever %s", l.ID)
	}
}

func TestSelectModel_AppliesDefaults(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.SelectModel(st, "grok"))

	assert.Equal(t, "grok", st.ModelID)
	assert.Equal(t, 8, st.Levers["playfulness"])
	assert.Equal(t, 2, st.Levers["hedgingIntensity"])
	assert.Equal(t, 8, st.Levers["identitySourceLock"])

	// Levers the model does not mention keep their defaults.
	assert.Equal(t, 6, st.Levers["conciseness"])
}

func TestSelectModel_Unknown(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	err := e.SelectModel(st, "nonesuch")
	require.Error(t, err)
	assert.Empty(t, st.ModelID)
}

func TestSelectModel_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.SelectModel(st, "claude"))
	first := st.Clone()
	require.NoError(t, e.SelectModel(st, "claude"))

	assert.Equal(t, first.Levers, st.Levers)
}

func TestSetLever_ClampsToRange(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	e.SetLever(st, "playfulness", 15)
	assert.Equal(t, 10, st.Levers["playfulness"])

	e.SetLever(st, "playfulness", -3)
	assert.Equal(t, 0, st.Levers["playfulness"])

	e.SetLever(st, "playfulness", 7)
	assert.Equal(t, 7, st.Levers["playfulness"])
}

func TestSetLever_UnknownIsSkipped(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	before := st.Clone()

	e.SetLever(st, "nonesuch", 5)
	assert.Equal(t, before.Levers, st.Levers)
}

func TestSetLever_LockedIsSilentlyIgnored(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "grok"))

	e.SetLever(st, "identitySourceLock", 0)
	assert.Equal(t, 8, st.Levers["identitySourceLock"])

	// The same lever is editable while a non-locking model is selected.
	require.NoError(t, e.SelectModel(st, "claude"))
	e.SetLever(st, "identitySourceLock", 3)
	assert.Equal(t, 3, st.Levers["identitySourceLock"])
}

func TestSelectPersona_VerbatimValues(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.SelectPersona(st, "therapist"))

	assert.Equal(t, "therapist", st.PersonaID)
	assert.Equal(t, 9, st.Levers["empathyExpressiveness"])
	assert.Equal(t, 3, st.Levers["formality"])
	assert.Equal(t, 1, st.Levers["playfulness"])

	// Levers the persona does not mention keep their current values.
	assert.Equal(t, 7, st.Levers["identitySourceLock"])
}

func TestSelectPersona_Unknown(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.Error(t, e.SelectPersona(st, "nonesuch"))
	assert.Empty(t, st.PersonaID)
}

func TestSetPersonality_BlendsProfile(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.NoError(t, e.SetPersonality(st, PersonalityAnalytical))

	assert.Equal(t, PersonalityAnalytical, st.Personality)
	// round(profile*0.7 + current*0.3) against catalog defaults.
	assert.Equal(t, 7, st.Levers["teachingMode"])       // round(8*0.7 + 5*0.3)
	assert.Equal(t, 8, st.Levers["answerCompleteness"]) // round(9*0.7 + 6*0.3)
	assert.Equal(t, 3, st.Levers["playfulness"])        // round(3*0.7 + 4*0.3)
	assert.Equal(t, 4, st.Levers["empathyExpressiveness"])
}

func TestSetPersonality_Invalid(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())

	require.Error(t, e.SetPersonality(st, Personality("bogus")))
	assert.Equal(t, PersonalityNeutral, st.Personality)
}

func TestResetModel_KeepsPersonaSelection(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "grok"))
	require.NoError(t, e.SelectPersona(st, "minimalist"))

	e.ResetModel(st)

	assert.Empty(t, st.ModelID)
	assert.Equal(t, "minimalist", st.PersonaID)
	// Levers return to catalog defaults, not persona values.
	assert.Equal(t, 6, st.Levers["conciseness"])
}

func TestResetPersona_ReappliesModelDefaults(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "grok"))
	require.NoError(t, e.SelectPersona(st, "therapist"))
	assert.Equal(t, 9, st.Levers["empathyExpressiveness"])

	e.ResetPersona(st)

	assert.Empty(t, st.PersonaID)
	assert.Equal(t, "grok", st.ModelID)
	// Model defaults land over fresh catalog defaults, not over the
	// persona residue.
	assert.Equal(t, 4, st.Levers["empathyExpressiveness"])
	assert.Equal(t, 8, st.Levers["playfulness"])
	// A lever neither set touches is back at its catalog default.
	assert.Equal(t, 6, st.Levers["conciseness"])
}

func TestResetPersona_WithoutModel(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectPersona(st, "therapist"))

	e.ResetPersona(st)

	assert.Empty(t, st.PersonaID)
	assert.Equal(t, 5, st.Levers["empathyExpressiveness"])
}

func TestResetLevers_OnlyNamed(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	e.SetLever(st, "playfulness", 9)
	e.SetLever(st, "formality", 8)

	e.ResetLevers(st, []string{"playfulness", "nonesuch"})

	assert.Equal(t, 4, st.Levers["playfulness"])
	assert.Equal(t, 8, st.Levers["formality"])
}

func TestResetAll(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "mistral"))
	require.NoError(t, e.SelectPersona(st, "coder"))
	require.NoError(t, e.SetPersonality(st, PersonalityWitty))

	e.ResetAll(st)

	assert.Empty(t, st.ModelID)
	assert.Empty(t, st.PersonaID)
	assert.Equal(t, PersonalityNeutral, st.Personality)
	fresh := NewState(e.Registry())
	assert.Equal(t, fresh.Levers, st.Levers)
}

func TestClone_IsIndependent(t *testing.T) {
	e := newTestEngine(t)
	st := NewState(e.Registry())
	clone := st.Clone()

	e.SetLever(st, "playfulness", 9)
	assert.Equal(t, 4, clone.Levers["playfulness"])
}
