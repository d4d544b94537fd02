package preset

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jviolette/aituner/internal/catalog"
	"github.com/jviolette/aituner/internal/engine"
)

func testState(t *testing.T) *engine.State {
	t.Helper()
	reg := catalog.DefaultRegistry()
	eng := engine.New(reg, catalog.DefaultCatalog(reg))
	st := engine.NewState(reg)
	require.NoError(t, eng.SelectModel(st, "grok"))
	eng.SetLever(st, "creativity", 9)
	return st
}

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "presets.json"))
}

func TestFileStore_SaveAndGet(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, FromState("deep work", testState(t)))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "deep work", got.Name)
	require.NotNil(t, got.ModelID)
	assert.Equal(t, "grok", *got.ModelID)
	assert.Nil(t, got.PersonaID)
	assert.Equal(t, 9, got.Levers["creativity"])
}

func TestFileStore_SaveUpsertsByName(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, FromState("mine", testState(t)))
	require.NoError(t, err)

	st := testState(t)
	st.Levers["creativity"] = 2
	second, err := store.Save(ctx, FromState("mine", st))
	require.NoError(t, err)

	// The original identity survives the overwrite.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	presets, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, 2, presets[0].Levers["creativity"])
}

func TestFileStore_ListInsertionOrder(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := store.Save(ctx, FromState(name, testState(t)))
		require.NoError(t, err)
	}
	// Overwriting an existing name must not move it to the end.
	_, err := store.Save(ctx, FromState("alpha", testState(t)))
	require.NoError(t, err)

	presets, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 3)
	assert.Equal(t, "zeta", presets[0].Name)
	assert.Equal(t, "alpha", presets[1].Name)
	assert.Equal(t, "mid", presets[2].Name)
}

func TestFileStore_Delete(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, FromState("gone", testState(t)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, saved.ID))
	_, err = store.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, saved.ID), ErrNotFound)
}

func TestFileStore_FindByName(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, FromState("exact name", testState(t)))
	require.NoError(t, err)

	got, err := FindByName(ctx, store, "exact name")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = FindByName(ctx, store, "Exact Name")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_CorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	ctx := context.Background()

	presets, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)

	// A save overwrites the corrupt file and recovers the store.
	_, err = store.Save(ctx, FromState("fresh", testState(t)))
	require.NoError(t, err)
	presets, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, presets, 1)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope", "presets.json"))

	presets, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestPreset_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(FromState("wire", testState(t)))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"modelId":"grok"`)
	assert.Contains(t, string(data), `"personaId":null`)
	assert.NotContains(t, string(data), `"model":`)
	assert.NotContains(t, string(data), `"persona":`)
}

func TestPreset_EmojiShutoffRoundTrip(t *testing.T) {
	store := tempStore(t)
	ctx := context.Background()

	st := testState(t)
	st.EmojiShutoff = true

	saved, err := store.Save(ctx, FromState("quiet", st))
	require.NoError(t, err)

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, got.EmojiShutoff)

	reg := catalog.DefaultRegistry()
	eng := engine.New(reg, catalog.DefaultCatalog(reg))
	restored := engine.NewState(reg)
	require.NoError(t, eng.Apply(restored, got.Settings()))
	assert.True(t, restored.EmojiShutoff)

	// Replaying a preset saved with the shutoff off turns it back off.
	restored.EmojiShutoff = true
	off, err := store.Save(ctx, FromState("loud", testState(t)))
	require.NoError(t, err)
	require.NoError(t, eng.Apply(restored, off.Settings()))
	assert.False(t, restored.EmojiShutoff)
}

func TestPreset_SettingsRoundTrip(t *testing.T) {
	reg := catalog.DefaultRegistry()
	eng := engine.New(reg, catalog.DefaultCatalog(reg))
	st := engine.NewState(reg)
	require.NoError(t, eng.SelectModel(st, "mistral"))
	require.NoError(t, eng.SelectPersona(st, "coder"))
	eng.SetLever(st, "playfulness", 6)

	p := FromState("exact", st)

	restored := engine.NewState(reg)
	require.NoError(t, eng.Apply(restored, p.Settings()))

	assert.Equal(t, st.ModelID, restored.ModelID)
	assert.Equal(t, st.PersonaID, restored.PersonaID)
	assert.Equal(t, st.Levers, restored.Levers)
}
