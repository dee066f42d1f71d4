// Package sqlite provides a SQLite-backed registry adapter.
//
// The table layout mirrors the hosted backend's single-row scheme: the whole
// registry document is one JSON value in the data column of a fixed row.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/id"
	"github.com/booknoteapp/booknote-server/internal/storage"
)

//go:embed schema.sql
var schemaSQL string

// saveRow is the fixed ID of the single row holding the registry document.
const saveRow = "main_save"

// Adapter stores the registry document in a SQLite database.
type Adapter struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ storage.Adapter = (*Adapter)(nil)

// Open creates a new SQLite adapter at the given path.
// It configures WAL mode, sets pragmas, and runs schema migrations.
func Open(path string, logger *slog.Logger) (*Adapter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Set connection pool to 1 writer (SQLite limitation).
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	// Run schema migration.
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	return &Adapter{db: db, logger: logger}, nil
}

// Load reads the registry document from the save row.
func (a *Adapter) Load(ctx context.Context) (*domain.Registry, error) {
	var data string
	err := a.db.QueryRowContext(ctx,
		`SELECT data FROM booknote_saves WHERE id = ?`, saveRow,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "read save row")
	}

	reg := domain.NewRegistry()
	if err := json.Unmarshal([]byte(data), reg); err != nil {
		if a.logger != nil {
			a.logger.Error("Stored registry document is corrupt, treating as absent", "error", err)
		}
		return nil, errors.ErrNotFound
	}
	return reg, nil
}

// Save upserts the registry document into the save row and bumps its revision.
func (a *Adapter) Save(ctx context.Context, reg *domain.Registry) (*storage.SaveReceipt, error) {
	data, err := json.Marshal(reg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "marshal registry document")
	}

	receipt := &storage.SaveReceipt{
		ID:      id.MustGenerate("save"),
		SavedAt: time.Now().UTC(),
	}

	err = a.db.QueryRowContext(ctx, `
		INSERT INTO booknote_saves (id, data, revision, saved_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (id) DO UPDATE SET
			data     = excluded.data,
			revision = booknote_saves.revision + 1,
			saved_at = excluded.saved_at
		RETURNING revision`,
		saveRow, string(data), receipt.SavedAt.Format(time.RFC3339Nano),
	).Scan(&receipt.Revision)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "write save row")
	}

	if a.logger != nil {
		a.logger.Debug("Registry document saved",
			"receipt_id", receipt.ID,
			"revision", receipt.Revision,
		)
	}
	return receipt, nil
}

// Close closes the underlying database connection.
func (a *Adapter) Close() error {
	return a.db.Close()
}
