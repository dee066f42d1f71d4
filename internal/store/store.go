// Package store holds the in-memory working state of the application: the
// registry of libraries, the currently active library, and the operations
// the API exposes over them.
//
// All mutations go through the active library's working copy. The registry
// snapshot for the active library is only refreshed by an explicit flush,
// which happens on library switches and saves. This mirrors the application's
// save model: nothing is persisted until the user asks for it.
package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/storage"
)

// EventEmitter is the interface for emitting SSE events.
// Store uses this to broadcast changes without depending on SSE implementation details.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() EventEmitter {
	return NoopEmitter{}
}

// Store is the working state behind every API operation.
type Store struct {
	logger  *slog.Logger
	emitter EventEmitter
	adapter storage.Adapter

	mu     sync.Mutex
	reg    *domain.Registry
	active *domain.Library

	// lastID is the most recently issued entity ID. IDs are millisecond
	// timestamps bumped past the last one when two operations land in the
	// same millisecond, so they stay strictly increasing.
	lastID atomic.Int64
}

// New creates a store backed by the given persistence adapter.
// The emitter is required and used to broadcast store changes via SSE.
func New(adapter storage.Adapter, logger *slog.Logger, emitter EventEmitter) *Store {
	return &Store{
		logger:  logger,
		emitter: emitter,
		adapter: adapter,
		reg:     domain.NewRegistry(),
	}
}

// Load reads the persisted registry and activates its first library.
// A missing document is not an error: the store comes up empty and
// SetupRequired reports true until the first library is created.
func (s *Store) Load(ctx context.Context) error {
	reg, err := s.adapter.Load(ctx)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			if s.logger != nil {
				s.logger.Info("No saved registry found, starting setup flow")
			}
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reg = reg
	s.active = nil
	if first := reg.First(); first != "" {
		s.active = reg.Get(first).Clone()
	}

	if s.logger != nil {
		s.logger.Info("Registry loaded",
			"libraries", reg.Len(),
			"active", s.activeNameLocked(),
		)
	}
	return nil
}

// Save flushes the active library into the registry and persists the whole
// registry document.
func (s *Store) Save(ctx context.Context) (*storage.SaveReceipt, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no library to save")
	}
	s.flushLocked()
	// Persist from a snapshot so the adapter never sees concurrent edits.
	snapshot := s.reg.Clone()
	s.mu.Unlock()

	receipt, err := s.adapter.Save(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Registry saved",
			"receipt_id", receipt.ID,
			"revision", receipt.Revision,
		)
	}
	return receipt, nil
}

// Snapshot flushes the active library and returns a deep copy of the registry.
func (s *Store) Snapshot() *domain.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
	return s.reg.Clone()
}

// SetupRequired reports whether no library exists yet.
func (s *Store) SetupRequired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active == nil
}

// Close closes the underlying persistence adapter.
func (s *Store) Close() error {
	return s.adapter.Close()
}

// flushLocked writes the active library's working copy back into the
// registry. Callers must hold s.mu.
func (s *Store) flushLocked() {
	if s.active == nil {
		return
	}
	s.reg.Put(s.active.Clone())
}

// activeNameLocked returns the active library name, or "". Callers must
// hold s.mu.
func (s *Store) activeNameLocked() string {
	if s.active == nil {
		return ""
	}
	return s.active.Name
}

// nextID issues a unique entity ID. IDs are millisecond timestamps, bumped
// forward when needed so consecutive calls never collide.
func (s *Store) nextID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := s.lastID.Load()
		if id <= last {
			id = last + 1
		}
		if s.lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}

// emit broadcasts an event when an emitter is configured.
func (s *Store) emit(event any) {
	if s.emitter != nil {
		s.emitter.Emit(event)
	}
}
