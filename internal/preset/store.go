package preset

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no preset matches the requested id or name.
var ErrNotFound = errors.New("preset not found")

// Store persists presets. Save upserts by exact name: saving under an
// existing name replaces that preset's contents while keeping its id and
// creation time. Get and Delete address presets by id; List returns them
// in insertion order.
type Store interface {
	Save(ctx context.Context, p Preset) (Preset, error)
	Get(ctx context.Context, id string) (Preset, error)
	List(ctx context.Context) ([]Preset, error)
	Delete(ctx context.Context, id string) error
}

// FindByName resolves a preset by its exact name. Names are the user-facing
// handle; ids are the storage key.
func FindByName(ctx context.Context, s Store, name string) (Preset, error) {
	presets, err := s.List(ctx)
	if err != nil {
		return Preset{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}
