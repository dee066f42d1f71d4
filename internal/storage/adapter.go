// Package storage persists the library registry as a single document.
//
// Persistence is deliberately coarse: every save writes the whole registry,
// every load replaces it wholesale. Two adapters exist, a Badger-backed one
// for fully local operation and a SQLite-backed one mirroring the hosted
// single-row layout.
package storage

import (
	"context"
	"time"

	"github.com/booknoteapp/booknote-server/internal/domain"
)

// SaveReceipt describes a completed save.
type SaveReceipt struct {
	// ID is a unique receipt identifier for this save operation.
	ID string `json:"id"`
	// Revision counts saves of the document, starting at 1.
	Revision int64 `json:"revision"`
	// SavedAt is the server-side completion time.
	SavedAt time.Time `json:"savedAt"`
}

// Adapter loads and saves the registry document.
//
// Load returns errors.ErrNotFound when no document exists yet. A document
// that exists but cannot be decoded is treated the same way: the adapter
// logs the corruption and reports not found, so the application starts from
// the setup flow instead of crashing on a bad save.
type Adapter interface {
	Load(ctx context.Context) (*domain.Registry, error)
	Save(ctx context.Context, reg *domain.Registry) (*SaveReceipt, error)
	Close() error
}
