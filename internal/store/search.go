package store

import (
	"strings"

	"github.com/booknoteapp/booknote-server/internal/errors"
)

// Search result type labels shown to the user.
const (
	ResultTypeBook    = "책"
	ResultTypeChapter = "챕터"
	ResultTypeDetail  = "노트"
)

// Placeholder descriptions for results whose parent no longer exists.
const (
	descUnknownBook    = "소속 불명"
	descUnknownChapter = "위치 불명"
)

// SearchResult is one search hit with enough context to jump to it.
type SearchResult struct {
	Type      string `json:"type"`
	Target    string `json:"target"`
	Title     string `json:"title"`
	Desc      string `json:"desc"`
	ID        int64  `json:"id"`
	BookID    int64  `json:"bookId,omitempty"`
	ChapterID int64  `json:"chapterId,omitempty"`
}

// Search scans the active library for case-insensitive substring matches.
// Books match on title or author, chapters on title, details on title or
// content. Results come back grouped in that order, each group in creation
// order. A blank query returns no results.
func (s *Store) Search(query string) ([]SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}

	results := []SearchResult{}
	if strings.TrimSpace(query) == "" {
		return results, nil
	}
	q := strings.ToLower(query)

	for _, b := range s.active.Books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) {
			results = append(results, SearchResult{
				Type:   ResultTypeBook,
				Target: "book",
				Title:  b.Title,
				Desc:   b.Author,
				ID:     b.ID,
			})
		}
	}

	for _, c := range s.active.Chapters {
		if strings.Contains(strings.ToLower(c.Title), q) {
			desc := descUnknownBook
			if book := s.active.FindBook(c.BookID); book != nil {
				desc = book.Title
			}
			results = append(results, SearchResult{
				Type:   ResultTypeChapter,
				Target: "chapter",
				Title:  c.Title,
				Desc:   desc,
				ID:     c.ID,
				BookID: c.BookID,
			})
		}
	}

	for _, d := range s.active.Details {
		if strings.Contains(strings.ToLower(d.Title), q) ||
			strings.Contains(strings.ToLower(d.Content), q) {
			desc := descUnknownChapter
			if chapter := s.active.FindChapter(d.ChapterID); chapter != nil {
				desc = chapter.Title
			}
			results = append(results, SearchResult{
				Type:      ResultTypeDetail,
				Target:    "detail",
				Title:     d.Title,
				Desc:      desc,
				ID:        d.ID,
				ChapterID: d.ChapterID,
			})
		}
	}

	return results, nil
}
