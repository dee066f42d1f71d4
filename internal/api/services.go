package api

import (
	"github.com/booknoteapp/booknote-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Library    *service.LibraryService
	Book       *service.BookService
	Chapter    *service.ChapterService
	Note       *service.NoteService
	Spell      *service.SpellService
	Search     *service.SearchService
	Navigation *service.NavigationService
}
