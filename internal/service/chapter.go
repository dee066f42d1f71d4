package service

import (
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// ChapterService manages chapters under books.
type ChapterService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewChapterService creates a new chapter service.
func NewChapterService(st *store.Store, logger *slog.Logger) *ChapterService {
	return &ChapterService{store: st, logger: logger}
}

// List returns a book's chapters.
func (s *ChapterService) List(bookID int64) ([]domain.Chapter, error) {
	return s.store.ListChapters(bookID)
}

// Get returns one chapter.
func (s *ChapterService) Get(id int64) (*domain.Chapter, error) {
	return s.store.GetChapter(id)
}

// Create adds a chapter under a book with a placeholder title.
func (s *ChapterService) Create(bookID int64) (*domain.Chapter, error) {
	return s.store.CreateChapter(bookID)
}

// ChapterUpdate carries the editable chapter fields. Nil fields are left
// unchanged.
type ChapterUpdate struct {
	Index    *string
	Title    *string
	VideoURL *string
}

// Update applies a partial update to a chapter.
func (s *ChapterService) Update(id int64, update ChapterUpdate) (*domain.Chapter, error) {
	chapter, err := s.store.GetChapter(id)
	if err != nil {
		return nil, err
	}

	if update.Index != nil {
		chapter.Index = *update.Index
	}
	if update.Title != nil {
		chapter.Title = *update.Title
	}
	if update.VideoURL != nil {
		chapter.VideoURL = *update.VideoURL
	}

	return s.store.UpdateChapter(*chapter)
}

// Delete removes a chapter, leaving its details in the library.
func (s *ChapterService) Delete(id int64) error {
	return s.store.DeleteChapter(id)
}
