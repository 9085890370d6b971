// Package draft persists document drafts in SQLite. Each draft is one named
// slot holding the JSON snapshot of a document; saving an existing id
// overwrites it (last-write-wins), and loading merges the stored payload
// over a freshly defaulted document so fields absent from an older payload
// keep their defaults.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/inkfold/docgen/model"
)

// ErrNotFound indicates no draft exists under the requested id.
var ErrNotFound = errors.New("draft not found")

// Config holds repository configuration.
type Config struct {
	DBPath string // database file path (default: ~/.local/share/docgen/drafts.db)
}

// Info describes one stored draft.
type Info struct {
	ID        string
	Kind      model.Kind
	UpdatedAt time.Time
}

// Repository stores drafts in a single SQLite file.
type Repository struct {
	db *sql.DB
}

// Open opens (and if needed creates) the draft database.
func Open(config Config) (*Repository, error) {
	if config.DBPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		config.DBPath = filepath.Join(homeDir, ".local", "share", "docgen", "drafts.db")
	}

	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}

	db, err := sql.Open("sqlite3", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	r := &Repository{db: db}
	if err := r.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return r, nil
}

func (r *Repository) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS drafts (
			id         TEXT PRIMARY KEY,
			kind       TEXT NOT NULL,
			payload    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := r.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Save stores the document under id, replacing any existing draft there.
func (r *Repository) Save(id string, doc model.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	query := `
		INSERT INTO drafts (id, kind, payload, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(query, id, string(doc.Kind()), string(payload)); err != nil {
		return fmt.Errorf("failed to save draft %q: %w", id, err)
	}
	return nil
}

// Load reconstructs the draft stored under id. The payload is unmarshalled
// over a defaulted document of its kind, so fields missing from the stored
// JSON keep their defaults instead of zeroing out.
func (r *Repository) Load(id string) (model.Document, error) {
	var kind, payload string
	err := r.db.QueryRow(`SELECT kind, payload FROM drafts WHERE id = ?`, id).Scan(&kind, &payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft %q: %w", id, err)
	}

	doc, err := model.New(model.Kind(kind))
	if err != nil {
		return nil, fmt.Errorf("draft %q has unusable kind: %w", id, err)
	}
	if err := json.Unmarshal([]byte(payload), doc); err != nil {
		return nil, fmt.Errorf("draft %q has a corrupt payload: %w", id, err)
	}
	return doc, nil
}

// List returns the stored drafts, most recently updated first.
func (r *Repository) List() ([]Info, error) {
	rows, err := r.db.Query(`SELECT id, kind, updated_at FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var kind string
		if err := rows.Scan(&info.ID, &kind, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		info.Kind = model.Kind(kind)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes the draft stored under id. Deleting a missing draft
// returns ErrNotFound.
func (r *Repository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft %q: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
