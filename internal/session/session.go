// Package session tracks the navigation state of the single-user UI: which
// view is open and which book, chapter and detail are selected.
//
// The state forms a strict drill-down. Each deeper view requires every
// ancestor selection, and moving up clears the selections below the target
// view. Jumps from search results validate the whole ancestor chain before
// touching the state, so a stale result leaves navigation where it was.
package session

import (
	"sync"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
)

// View names the four screens of the UI.
type View string

const (
	// ViewShelf is the top-level book shelf.
	ViewShelf View = "shelf"
	// ViewChapters lists the selected book's chapters.
	ViewChapters View = "chapters"
	// ViewDetails lists the selected chapter's detail notes.
	ViewDetails View = "details"
	// ViewEditor edits the selected detail note.
	ViewEditor View = "editor"
)

// State is a snapshot of the navigation state.
type State struct {
	View      View  `json:"view"`
	BookID    int64 `json:"bookId,omitempty"`
	ChapterID int64 `json:"chapterId,omitempty"`
	DetailID  int64 `json:"detailId,omitempty"`
}

// Resolver looks up entities in the active library. The store implements it.
type Resolver interface {
	GetBook(id int64) (*domain.Book, error)
	GetChapter(id int64) (*domain.Chapter, error)
	GetDetail(id int64) (*domain.Detail, error)
}

// Machine is the navigation state machine.
type Machine struct {
	resolver Resolver

	mu    sync.Mutex
	state State
}

// NewMachine creates a machine at the shelf view.
func NewMachine(resolver Resolver) *Machine {
	return &Machine{
		resolver: resolver,
		state:    State{View: ViewShelf},
	}
}

// State returns the current navigation snapshot.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reset returns to the shelf and clears every selection. Library switches
// and book deletions land here.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{View: ViewShelf}
}

// OpenBook selects a book and moves to its chapter list.
func (m *Machine) OpenBook(bookID int64) (State, error) {
	if _, err := m.resolver.GetBook(bookID); err != nil {
		return m.State(), err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{View: ViewChapters, BookID: bookID}
	return m.state, nil
}

// OpenChapter selects a chapter and moves to its detail list. The chapter's
// parent book must still exist; a chapter orphaned by a book deletion cannot
// be navigated to.
func (m *Machine) OpenChapter(chapterID int64) (State, error) {
	chapter, err := m.resolver.GetChapter(chapterID)
	if err != nil {
		return m.State(), err
	}
	if _, err := m.resolver.GetBook(chapter.BookID); err != nil {
		return m.State(), errors.NotFoundf("chapter %d has no parent book", chapterID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{View: ViewDetails, BookID: chapter.BookID, ChapterID: chapterID}
	return m.state, nil
}

// OpenDetail selects a detail note and moves to the editor. The whole
// ancestor chain has to resolve.
func (m *Machine) OpenDetail(detailID int64) (State, error) {
	detail, err := m.resolver.GetDetail(detailID)
	if err != nil {
		return m.State(), err
	}
	chapter, err := m.resolver.GetChapter(detail.ChapterID)
	if err != nil {
		return m.State(), errors.NotFoundf("detail %d has no parent chapter", detailID)
	}
	if _, err := m.resolver.GetBook(chapter.BookID); err != nil {
		return m.State(), errors.NotFoundf("detail %d has no parent book", detailID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{
		View:      ViewEditor,
		BookID:    chapter.BookID,
		ChapterID: detail.ChapterID,
		DetailID:  detailID,
	}
	return m.state, nil
}

// Up moves one level toward the shelf, clearing the selection that is left
// behind. At the shelf it is a no-op.
func (m *Machine) Up() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.View {
	case ViewEditor:
		m.state.View = ViewDetails
		m.state.DetailID = 0
	case ViewDetails:
		m.state.View = ViewChapters
		m.state.ChapterID = 0
	case ViewChapters:
		m.state = State{View: ViewShelf}
	}
	return m.state
}

// GoTo jumps directly to an ancestor view via the breadcrumb. Moving to a
// view deeper than the current selections allow is rejected.
func (m *Machine) GoTo(view View) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch view {
	case ViewShelf:
		m.state = State{View: ViewShelf}
	case ViewChapters:
		if m.state.BookID == 0 {
			return m.state, errors.Conflict("no book selected")
		}
		m.state = State{View: ViewChapters, BookID: m.state.BookID}
	case ViewDetails:
		if m.state.ChapterID == 0 {
			return m.state, errors.Conflict("no chapter selected")
		}
		m.state = State{View: ViewDetails, BookID: m.state.BookID, ChapterID: m.state.ChapterID}
	case ViewEditor:
		if m.state.DetailID == 0 {
			return m.state, errors.Conflict("no detail selected")
		}
	default:
		return m.state, errors.Validationf("unknown view %q", view)
	}
	return m.state, nil
}
