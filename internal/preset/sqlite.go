package preset

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists presets in a SQLite database. Lever maps are stored
// as a JSON column; the table carries a UNIQUE name so upsert-by-name is
// enforced at the schema level too.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) a preset database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open preset db: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init preset schema: %w", err)
	}
	return s, nil
}

// NewSQLiteStore wraps an existing database connection.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("init preset schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		model TEXT,
		persona TEXT,
		personality TEXT NOT NULL,
		levers TEXT NOT NULL,
		emoji_shutoff INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_presets_name ON presets(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save upserts the preset by name.
func (s *SQLiteStore) Save(ctx context.Context, p Preset) (Preset, error) {
	leversJSON, err := json.Marshal(p.Levers)
	if err != nil {
		return Preset{}, fmt.Errorf("marshal levers: %w", err)
	}

	var existingID string
	var existingCreatedAt sql.NullTime
	err = s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM presets WHERE name = ?`, p.Name,
	).Scan(&existingID, &existingCreatedAt)

	switch {
	case err == nil:
		p.ID = existingID
		if existingCreatedAt.Valid {
			p.CreatedAt = existingCreatedAt.Time
		}
		_, err = s.db.ExecContext(ctx,
			`UPDATE presets SET model = ?, persona = ?, personality = ?, levers = ?, emoji_shutoff = ? WHERE id = ?`,
			p.ModelID, p.PersonaID, p.Personality, leversJSON, p.EmojiShutoff, p.ID,
		)
		if err != nil {
			return Preset{}, fmt.Errorf("update preset: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO presets (id, name, model, persona, personality, levers, emoji_shutoff, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.ModelID, p.PersonaID, p.Personality, leversJSON, p.EmojiShutoff, p.CreatedAt,
		)
		if err != nil {
			return Preset{}, fmt.Errorf("insert preset: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("query preset: %w", err)
	}

	return p, nil
}

// Get returns the preset with the given id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, model, persona, personality, levers, emoji_shutoff, created_at
		 FROM presets WHERE id = ?`, id)
	p, err := scanPreset(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("query preset: %w", err)
	}
	return p, nil
}

// List returns all presets in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, model, persona, personality, levers, emoji_shutoff, created_at
		 FROM presets ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		p, err := scanPreset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return presets, nil
}

// Delete removes the preset with the given id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func scanPreset(scan func(dest ...any) error) (Preset, error) {
	var p Preset
	var model, persona sql.NullString
	var leversJSON []byte

	if err := scan(&p.ID, &p.Name, &model, &persona, &p.Personality, &leversJSON, &p.EmojiShutoff, &p.CreatedAt); err != nil {
		return Preset{}, err
	}
	if model.Valid {
		p.ModelID = &model.String
	}
	if persona.Valid {
		p.PersonaID = &persona.String
	}
	if err := json.Unmarshal(leversJSON, &p.Levers); err != nil {
		return Preset{}, fmt.Errorf("unmarshal levers: %w", err)
	}
	return p, nil
}
