package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendedApply_NoAdaptationAppliesVerbatim(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "llama"))

	// Therapist carries no adaptation for llama.
	require.NoError(t, e.SelectPersona(st, "therapist"))

	assert.Equal(t, 9, st.Levers["empathyExpressiveness"])
	assert.Equal(t, 1, st.Levers["playfulness"])
}

func TestBlendedApply_PreserveKeepsModelDefault(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "claude"))

	require.NoError(t, e.SelectPersona(st, "devils-advocate"))

	// hedgingIntensity is preserved: the persona's 2 never lands.
	assert.Equal(t, 7, st.Levers["hedgingIntensity"])
}

func TestBlendedApply_BlendsWithModelDefaults(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "claude"))

	require.NoError(t, e.SelectPersona(st, "devils-advocate"))

	// empathyExpressiveness: round(3*0.6 + 7*0.4) = 5.
	assert.Equal(t, 5, st.Levers["empathyExpressiveness"])
	// assertiveness has no claude default, so it blends against the lever
	// default: round(9*0.6 + 5*0.4) = 7.
	assert.Equal(t, 7, st.Levers["assertiveness"])
}

func TestBlendedApply_OverridesWin(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "grok"))

	require.NoError(t, e.SelectPersona(st, "devils-advocate"))

	// The grok adaptation pins playfulness to 7.
	assert.Equal(t, 7, st.Levers["playfulness"])
	// No explicit factor means the default 0.7: round(9*0.7 + 8*0.3) = 9.
	assert.Equal(t, 9, st.Levers["assertiveness"])
}

func TestBlendedApply_ModelDefaultsUncoveredByPersonaStillApply(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())
	require.NoError(t, e.SelectModel(st, "claude"))
	require.NoError(t, e.SelectPersona(st, "devils-advocate"))

	// metaCommentary is a claude default the persona never mentions.
	assert.Equal(t, 6, st.Levers["metaCommentary"])
}

func TestBlendedApply_WithoutModelAppliesVerbatim(t *testing.T) {
	e := newTestEngine(t, WithApplier(BlendedApply{}))
	st := NewState(e.Registry())

	require.NoError(t, e.SelectPersona(st, "devils-advocate"))

	assert.Equal(t, 9, st.Levers["assertiveness"])
	assert.Equal(t, 2, st.Levers["hedgingIntensity"])
}

func TestVerbatimApply_Clamps(t *testing.T) {
	reg := newTestEngine(t).Registry()
	st := NewState(reg)

	persona := newTestEngine(t).Catalog()
	p, ok := persona.FindPersona("minimalist")
	require.True(t, ok)

	VerbatimApply{}.Apply(reg, st, p, nil)
	assert.Equal(t, 10, st.Levers["conciseness"])
	assert.Equal(t, 0, st.Levers["affirmationFrequency"])
}
