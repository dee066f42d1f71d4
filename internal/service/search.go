package service

import (
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// SearchService finds entities and jumps navigation to them.
type SearchService struct {
	store   *store.Store
	machine *session.Machine
	logger  *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(st *store.Store, machine *session.Machine, logger *slog.Logger) *SearchService {
	return &SearchService{
		store:   st,
		machine: machine,
		logger:  logger,
	}
}

// Search returns substring matches across the active library.
func (s *SearchService) Search(query string) ([]store.SearchResult, error) {
	return s.store.Search(query)
}

// Jump moves navigation to a search result. The target entity and its
// ancestors must still exist; a stale result leaves navigation untouched.
func (s *SearchService) Jump(target string, id int64) (session.State, error) {
	switch target {
	case "book":
		return s.machine.OpenBook(id)
	case "chapter":
		return s.machine.OpenChapter(id)
	case "detail":
		return s.machine.OpenDetail(id)
	default:
		return s.machine.State(), errors.Validationf("unknown jump target %q", target)
	}
}
