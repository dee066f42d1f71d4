package service

import (
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/session"
)

// NavigationService exposes the session state machine to the API.
type NavigationService struct {
	machine *session.Machine
	logger  *slog.Logger
}

// NewNavigationService creates a new navigation service.
func NewNavigationService(machine *session.Machine, logger *slog.Logger) *NavigationService {
	return &NavigationService{machine: machine, logger: logger}
}

// State returns the current navigation snapshot.
func (s *NavigationService) State() session.State {
	return s.machine.State()
}

// OpenBook drills into a book's chapter list.
func (s *NavigationService) OpenBook(id int64) (session.State, error) {
	return s.machine.OpenBook(id)
}

// OpenChapter drills into a chapter's detail list.
func (s *NavigationService) OpenChapter(id int64) (session.State, error) {
	return s.machine.OpenChapter(id)
}

// OpenDetail opens a detail note in the editor.
func (s *NavigationService) OpenDetail(id int64) (session.State, error) {
	return s.machine.OpenDetail(id)
}

// Up moves one level toward the shelf.
func (s *NavigationService) Up() session.State {
	return s.machine.Up()
}

// GoTo jumps to an ancestor view via the breadcrumb.
func (s *NavigationService) GoTo(view session.View) (session.State, error) {
	return s.machine.GoTo(view)
}

// Reset returns to the shelf and clears all selections.
func (s *NavigationService) Reset() session.State {
	s.machine.Reset()
	return s.machine.State()
}
