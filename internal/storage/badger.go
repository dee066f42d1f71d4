package storage

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/id"
)

// registryKey is the singleton key for the registry document.
var registryKey = []byte("registry:main")

// badgerRecord is the persisted envelope around the registry document.
type badgerRecord struct {
	Revision int64            `json:"revision"`
	SavedAt  time.Time        `json:"savedAt"`
	Registry *domain.Registry `json:"registry"`
}

// BadgerAdapter stores the registry document in a local Badger database.
type BadgerAdapter struct {
	db     *badger.DB
	logger *slog.Logger
}

// OpenBadger opens (or creates) the Badger database at path.
func OpenBadger(path string, logger *slog.Logger) (*BadgerAdapter, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return &BadgerAdapter{db: db, logger: logger}, nil
}

// Load reads the registry document.
func (a *BadgerAdapter) Load(_ context.Context) (*domain.Registry, error) {
	var raw []byte
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(registryKey)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "read registry document")
	}

	var rec badgerRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Registry == nil {
		// A corrupt document is unrecoverable here. Surface it in the log
		// and let the caller fall back to the setup flow.
		if a.logger != nil {
			a.logger.Error("Stored registry document is corrupt, treating as absent", "error", err)
		}
		return nil, errors.ErrNotFound
	}
	return rec.Registry, nil
}

// Save writes the registry document, bumping the revision counter.
func (a *BadgerAdapter) Save(_ context.Context, reg *domain.Registry) (*SaveReceipt, error) {
	receipt := &SaveReceipt{
		ID:      id.MustGenerate("save"),
		SavedAt: time.Now().UTC(),
	}

	err := a.db.Update(func(txn *badger.Txn) error {
		revision := int64(1)
		if item, err := txn.Get(registryKey); err == nil {
			var prev badgerRecord
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(raw, &prev); err == nil {
				revision = prev.Revision + 1
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		receipt.Revision = revision
		raw, err := json.Marshal(badgerRecord{
			Revision: revision,
			SavedAt:  receipt.SavedAt,
			Registry: reg,
		})
		if err != nil {
			return fmt.Errorf("marshal registry document: %w", err)
		}
		return txn.Set(registryKey, raw)
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "write registry document")
	}

	if a.logger != nil {
		a.logger.Debug("Registry document saved",
			"receipt_id", receipt.ID,
			"revision", receipt.Revision,
		)
	}
	return receipt, nil
}

// Close gracefully closes the database connection.
func (a *BadgerAdapter) Close() error {
	if a.logger != nil {
		a.logger.Info("Closing database connection")
	}
	return a.db.Close()
}
