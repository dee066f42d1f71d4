package store

import (
	"strings"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/sse"
)

// LibraryNames returns all library names in creation order.
func (s *Store) LibraryNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Names()
}

// ActiveLibrary returns the name of the active library, or "" before setup.
func (s *Store) ActiveLibrary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeNameLocked()
}

// CreateLibrary creates an empty library and makes it active. The previous
// active library's working copy is flushed into the registry first, so
// unsaved edits survive the switch.
func (s *Store) CreateLibrary(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.Validation("library name is required")
	}

	s.mu.Lock()
	if s.reg.Contains(trimmed) {
		s.mu.Unlock()
		return errors.AlreadyExistsf("library %q already exists", trimmed)
	}

	s.flushLocked()
	lib := domain.NewLibrary(trimmed)
	s.reg.Put(lib)
	s.active = lib.Clone()
	names := s.reg.Names()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("Library created", "name", trimmed, "libraries", len(names))
	}
	s.emit(sse.NewEvent(sse.EventLibraryCreated, sse.LibraryEventData{
		Name:  trimmed,
		Names: names,
	}))
	return nil
}

// SwitchLibrary makes another library active. The outgoing library's working
// copy is flushed into the registry first.
func (s *Store) SwitchLibrary(name string) error {
	s.mu.Lock()
	target := s.reg.Get(name)
	if target == nil {
		s.mu.Unlock()
		return errors.NotFoundf("library %q not found", name)
	}

	s.flushLocked()
	s.active = target.Clone()
	names := s.reg.Names()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("Library switched", "name", name)
	}
	s.emit(sse.NewEvent(sse.EventLibrarySwitched, sse.LibraryEventData{
		Name:  name,
		Names: names,
	}))
	return nil
}

// UsedGenres returns the active library's declared and referenced genres.
func (s *Store) UsedGenres() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	return s.active.UsedGenres(), nil
}

// AddGenre declares a custom genre on the active library. Blank names are
// rejected, duplicates are a silent no-op.
func (s *Store) AddGenre(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.Validation("genre name is required")
	}

	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return errors.Conflict("no active library")
	}
	before := len(s.active.CustomGenres)
	s.active.AddCustomGenre(trimmed)
	added := len(s.active.CustomGenres) > before
	library := s.active.Name
	s.mu.Unlock()

	if added {
		s.emit(sse.NewEvent(sse.EventGenreAdded, sse.GenreEventData{
			Library: library,
			Genre:   trimmed,
		}))
	}
	return nil
}
