// Package service implements the application operations behind the API:
// library management, the book hierarchy, notes, search, spell checking and
// navigation. Services coordinate the store, the session machine and SSE
// broadcasting; handlers stay thin.
package service

import (
	"context"
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/sse"
	"github.com/booknoteapp/booknote-server/internal/storage"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// LibraryService manages libraries and persistence.
type LibraryService struct {
	store   *store.Store
	machine *session.Machine
	emitter store.EventEmitter
	logger  *slog.Logger
}

// NewLibraryService creates a new library service.
func NewLibraryService(st *store.Store, machine *session.Machine, emitter store.EventEmitter, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:   st,
		machine: machine,
		emitter: emitter,
		logger:  logger,
	}
}

// LibraryState describes the registry for clients: which libraries exist,
// which one is active, and whether the setup flow is still needed.
type LibraryState struct {
	Names         []string `json:"names"`
	Active        string   `json:"active,omitempty"`
	SetupRequired bool     `json:"setupRequired"`
}

// State returns the current library state.
func (s *LibraryService) State() LibraryState {
	return LibraryState{
		Names:         s.store.LibraryNames(),
		Active:        s.store.ActiveLibrary(),
		SetupRequired: s.store.SetupRequired(),
	}
}

// Setup creates the very first library and saves immediately, so a crash
// right after setup does not lose the library.
func (s *LibraryService) Setup(ctx context.Context, name string) (*storage.SaveReceipt, error) {
	if err := s.store.CreateLibrary(name); err != nil {
		return nil, err
	}
	s.machine.Reset()
	return s.Save(ctx)
}

// Create adds a library and makes it active. Navigation returns to the shelf.
func (s *LibraryService) Create(name string) error {
	if err := s.store.CreateLibrary(name); err != nil {
		return err
	}
	s.machine.Reset()
	return nil
}

// Switch activates another library. Navigation returns to the shelf.
func (s *LibraryService) Switch(name string) error {
	if err := s.store.SwitchLibrary(name); err != nil {
		return err
	}
	s.machine.Reset()
	return nil
}

// Save persists the whole registry and broadcasts the save lifecycle.
func (s *LibraryService) Save(ctx context.Context) (*storage.SaveReceipt, error) {
	s.emitter.Emit(sse.NewEvent(sse.EventSaveStarted, sse.SaveEventData{}))

	receipt, err := s.store.Save(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Save failed", "error", err)
		}
		s.emitter.Emit(sse.NewEvent(sse.EventSaveFailed, sse.SaveEventData{Error: err.Error()}))
		return nil, err
	}

	s.emitter.Emit(sse.NewEvent(sse.EventSaveCompleted, sse.SaveEventData{Receipt: receipt}))
	return receipt, nil
}

// Genres returns the active library's used genres.
func (s *LibraryService) Genres() ([]string, error) {
	return s.store.UsedGenres()
}

// AddGenre declares a custom genre on the active library.
func (s *LibraryService) AddGenre(name string) error {
	return s.store.AddGenre(name)
}
