// Package domain contains the core entities and domain logic for the BookNote reading library.
package domain

import "strings"

// Book is a single book on a library's shelf.
//
// IDs are creation timestamps in Unix milliseconds. They are unique within a
// running process; no global uniqueness is enforced across libraries.
type Book struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	TotalPages int      `json:"totalPages"`
	Status     string   `json:"status"`
	Category   []string `json:"category"`
	CoverURL   string   `json:"coverUrl"`
	VideoURL   string   `json:"videoUrl"`
}

// Chapter is a section of a book. BookID references the owning book, but the
// reference is not enforced on deletion: deleting a book leaves its chapters
// behind, reachable only by direct ID lookup.
type Chapter struct {
	ID       int64  `json:"id"`
	BookID   int64  `json:"bookId"`
	Index    string `json:"index"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// Detail is a leaf note covering a page range within a chapter.
// EndPage >= StartPage is expected but not validated, matching the contract.
type Detail struct {
	ID        int64  `json:"id"`
	ChapterID int64  `json:"chapterId"`
	Index     string `json:"index"`
	Title     string `json:"title"`
	StartPage int    `json:"startPage"`
	EndPage   int    `json:"endPage"`
	Content   string `json:"content"`
	VideoURL  string `json:"videoUrl"`
}

// HasContent reports whether the note body is non-empty after trimming.
// Only details with content count toward reading progress.
func (d *Detail) HasContent() bool {
	return strings.TrimSpace(d.Content) != ""
}

// PageSpan is the number of pages the note covers, inclusive of both ends.
func (d *Detail) PageSpan() int {
	return d.EndPage - d.StartPage + 1
}
