package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore keeps presets as a JSON array in a single file. Every mutation
// rewrites the whole file; the array is small by design.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() []Preset {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("preset file unreadable, starting empty")
		}
		return nil
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		// A corrupt file degrades to an empty list rather than blocking
		// the session. The next save overwrites it.
		log.Warn().Err(err).Str("path", s.path).Msg("preset file corrupt, starting empty")
		return nil
	}
	return presets
}

func (s *FileStore) write(presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preset dir: %w", err)
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal presets: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace preset file: %w", err)
	}
	return nil
}

// Save upserts the preset by name.
func (s *FileStore) Save(_ context.Context, p Preset) (Preset, error) {
	presets := s.load()
	for i, existing := range presets {
		if existing.Name == p.Name {
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			presets[i] = p
			return p, s.write(presets)
		}
	}
	presets = append(presets, p)
	return p, s.write(presets)
}

// Get returns the preset with the given id.
func (s *FileStore) Get(_ context.Context, id string) (Preset, error) {
	for _, p := range s.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns all presets in insertion order.
func (s *FileStore) List(_ context.Context) ([]Preset, error) {
	return s.load(), nil
}

// Delete removes the preset with the given id.
func (s *FileStore) Delete(_ context.Context, id string) error {
	presets := s.load()
	for i, p := range presets {
		if p.ID == id {
			presets = append(presets[:i], presets[i+1:]...)
			return s.write(presets)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
