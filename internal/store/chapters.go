package store

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/sse"
)

// ListChapters returns a book's chapters in creation order.
func (s *Store) ListChapters(bookID int64) ([]domain.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	if s.active.FindBook(bookID) == nil {
		return nil, errors.NotFoundf("book %d not found", bookID)
	}

	out := []domain.Chapter{}
	for _, c := range s.active.Chapters {
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetChapter returns one chapter by ID.
func (s *Store) GetChapter(id int64) (*domain.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	chapter := s.active.FindChapter(id)
	if chapter == nil {
		return nil, errors.NotFoundf("chapter %d not found", id)
	}
	out := *chapter
	return &out, nil
}

// CreateChapter appends a new chapter under the given book. The ordinal in
// the placeholder title is the current chapter count under that book plus
// one, so it can repeat after deletions.
func (s *Store) CreateChapter(bookID int64) (*domain.Chapter, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}
	if s.active.FindBook(bookID) == nil {
		s.mu.Unlock()
		return nil, errors.NotFoundf("book %d not found", bookID)
	}

	next := 1
	for _, c := range s.active.Chapters {
		if c.BookID == bookID {
			next++
		}
	}

	chapter := domain.Chapter{
		ID:     s.nextID(),
		BookID: bookID,
		Index:  strconv.Itoa(next),
		Title:  fmt.Sprintf("새로운 챕터 %d", next),
	}
	s.active.Chapters = append(s.active.Chapters, chapter)
	library := s.active.Name
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Chapter created", "chapter_id", chapter.ID, "book_id", bookID)
	}
	s.emit(sse.NewEvent(sse.EventChapterCreated, sse.EntityEventData{
		Library: library,
		ID:      chapter.ID,
		Entity:  chapter,
	}))
	return &chapter, nil
}

// UpdateChapter replaces the stored chapter with the same ID. The parent
// book reference is immutable.
func (s *Store) UpdateChapter(chapter domain.Chapter) (*domain.Chapter, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}
	stored := s.active.FindChapter(chapter.ID)
	if stored == nil {
		s.mu.Unlock()
		return nil, errors.NotFoundf("chapter %d not found", chapter.ID)
	}
	chapter.BookID = stored.BookID
	*stored = chapter
	library := s.active.Name
	s.mu.Unlock()

	s.emit(sse.NewEvent(sse.EventChapterUpdated, sse.EntityEventData{
		Library: library,
		ID:      chapter.ID,
		Entity:  chapter,
	}))
	return &chapter, nil
}

// DeleteChapter removes a chapter, leaving its details in place.
func (s *Store) DeleteChapter(id int64) error {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return errors.Conflict("no active library")
	}
	idx := slices.IndexFunc(s.active.Chapters, func(c domain.Chapter) bool { return c.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return errors.NotFoundf("chapter %d not found", id)
	}
	s.active.Chapters = slices.Delete(s.active.Chapters, idx, idx+1)
	library := s.active.Name
	s.mu.Unlock()

	s.emit(sse.NewEvent(sse.EventChapterDeleted, sse.EntityEventData{
		Library: library,
		ID:      id,
	}))
	return nil
}
