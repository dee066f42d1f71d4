package domain

import (
	"math"
	"slices"
)

// Library is an isolated named collection of books, chapters, details and
// custom genres. The four collections are always read and written together,
// both in memory and in the persisted document.
type Library struct {
	Name         string
	Books        []Book
	Chapters     []Chapter
	Details      []Detail
	CustomGenres []string
}

// NewLibrary creates an empty library with the given name.
func NewLibrary(name string) *Library {
	return &Library{
		Name:         name,
		Books:        []Book{},
		Chapters:     []Chapter{},
		Details:      []Detail{},
		CustomGenres: []string{},
	}
}

// FindBook returns the book with the given ID, or nil.
func (l *Library) FindBook(id int64) *Book {
	for i := range l.Books {
		if l.Books[i].ID == id {
			return &l.Books[i]
		}
	}
	return nil
}

// FindChapter returns the chapter with the given ID, or nil.
func (l *Library) FindChapter(id int64) *Chapter {
	for i := range l.Chapters {
		if l.Chapters[i].ID == id {
			return &l.Chapters[i]
		}
	}
	return nil
}

// FindDetail returns the detail with the given ID, or nil.
func (l *Library) FindDetail(id int64) *Detail {
	for i := range l.Details {
		if l.Details[i].ID == id {
			return &l.Details[i]
		}
	}
	return nil
}

// Progress computes the reading progress for a book as a percentage in
// [0, 100]: the pages covered by non-empty details under the book's chapters,
// relative to the book's declared page count. Books without a positive page
// count, or without any written notes, are at 0.
func (l *Library) Progress(bookID int64) int {
	book := l.FindBook(bookID)
	if book == nil || book.TotalPages <= 0 {
		return 0
	}

	chapterIDs := make(map[int64]bool)
	for _, c := range l.Chapters {
		if c.BookID == bookID {
			chapterIDs[c.ID] = true
		}
	}

	written := 0
	for i := range l.Details {
		d := &l.Details[i]
		if chapterIDs[d.ChapterID] && d.HasContent() {
			written += d.PageSpan()
		}
	}

	pct := math.Round(float64(written) / float64(book.TotalPages) * 100)
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// UsedGenres returns the union of the user-declared custom genres and every
// genre referenced by a book's category list, deduplicated in first-seen
// order, with empty strings excluded.
func (l *Library) UsedGenres() []string {
	genres := []string{}
	seen := make(map[string]bool)
	add := func(g string) {
		if g == "" || seen[g] {
			return
		}
		seen[g] = true
		genres = append(genres, g)
	}

	for _, g := range l.CustomGenres {
		add(g)
	}
	for _, b := range l.Books {
		for _, g := range b.Category {
			add(g)
		}
	}
	return genres
}

// AddCustomGenre declares a genre name. Blank and duplicate names are ignored.
func (l *Library) AddCustomGenre(name string) {
	if name == "" || slices.Contains(l.CustomGenres, name) {
		return
	}
	l.CustomGenres = append(l.CustomGenres, name)
}

// Clone returns a deep copy of the library.
func (l *Library) Clone() *Library {
	out := &Library{
		Name:         l.Name,
		Books:        make([]Book, len(l.Books)),
		Chapters:     slices.Clone(l.Chapters),
		Details:      slices.Clone(l.Details),
		CustomGenres: slices.Clone(l.CustomGenres),
	}
	for i, b := range l.Books {
		b.Category = slices.Clone(b.Category)
		out.Books[i] = b
	}
	return out
}

// normalize replaces nil collections with empty ones. Persisted documents
// from older saves may omit fields entirely.
func (l *Library) normalize() {
	if l.Books == nil {
		l.Books = []Book{}
	}
	if l.Chapters == nil {
		l.Chapters = []Chapter{}
	}
	if l.Details == nil {
		l.Details = []Detail{}
	}
	if l.CustomGenres == nil {
		l.CustomGenres = []string{}
	}
}
