package store

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/sse"
)

// Default page range for newly created detail notes.
const (
	defaultDetailStartPage = 1
	defaultDetailEndPage   = 10
)

// ListDetails returns a chapter's detail notes in creation order.
func (s *Store) ListDetails(chapterID int64) ([]domain.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	if s.active.FindChapter(chapterID) == nil {
		return nil, errors.NotFoundf("chapter %d not found", chapterID)
	}

	out := []domain.Detail{}
	for _, d := range s.active.Details {
		if d.ChapterID == chapterID {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetDetail returns one detail note by ID.
func (s *Store) GetDetail(id int64) (*domain.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	detail := s.active.FindDetail(id)
	if detail == nil {
		return nil, errors.NotFoundf("detail %d not found", id)
	}
	out := *detail
	return &out, nil
}

// CreateDetail appends a new detail note under the given chapter with
// placeholder title and page range.
func (s *Store) CreateDetail(chapterID int64) (*domain.Detail, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}
	if s.active.FindChapter(chapterID) == nil {
		s.mu.Unlock()
		return nil, errors.NotFoundf("chapter %d not found", chapterID)
	}

	next := 1
	for _, d := range s.active.Details {
		if d.ChapterID == chapterID {
			next++
		}
	}

	detail := domain.Detail{
		ID:        s.nextID(),
		ChapterID: chapterID,
		Index:     strconv.Itoa(next),
		Title:     fmt.Sprintf("세부 항목 %d", next),
		StartPage: defaultDetailStartPage,
		EndPage:   defaultDetailEndPage,
	}
	s.active.Details = append(s.active.Details, detail)
	library := s.active.Name
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Detail created", "detail_id", detail.ID, "chapter_id", chapterID)
	}
	s.emit(sse.NewEvent(sse.EventDetailCreated, sse.EntityEventData{
		Library: library,
		ID:      detail.ID,
		Entity:  detail,
	}))
	return &detail, nil
}

// UpdateDetail replaces the stored detail with the same ID. The parent
// chapter reference is immutable.
func (s *Store) UpdateDetail(detail domain.Detail) (*domain.Detail, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}
	stored := s.active.FindDetail(detail.ID)
	if stored == nil {
		s.mu.Unlock()
		return nil, errors.NotFoundf("detail %d not found", detail.ID)
	}
	detail.ChapterID = stored.ChapterID
	*stored = detail
	library := s.active.Name
	s.mu.Unlock()

	s.emit(sse.NewEvent(sse.EventDetailUpdated, sse.EntityEventData{
		Library: library,
		ID:      detail.ID,
		Entity:  detail,
	}))
	return &detail, nil
}

// DeleteDetail removes a detail note.
func (s *Store) DeleteDetail(id int64) error {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return errors.Conflict("no active library")
	}
	idx := slices.IndexFunc(s.active.Details, func(d domain.Detail) bool { return d.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return errors.NotFoundf("detail %d not found", id)
	}
	s.active.Details = slices.Delete(s.active.Details, idx, idx+1)
	library := s.active.Name
	s.mu.Unlock()

	s.emit(sse.NewEvent(sse.EventDetailDeleted, sse.EntityEventData{
		Library: library,
		ID:      id,
	}))
	return nil
}
