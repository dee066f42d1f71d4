package store

import (
	"slices"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/sse"
)

// Default values for newly created books.
const (
	defaultBookTitle  = "새로운 책"
	defaultBookPages  = 300
	defaultBookStatus = "대기 중"
)

// ListBooks returns the active library's books in creation order.
func (s *Store) ListBooks() ([]domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	out := make([]domain.Book, len(s.active.Books))
	for i, b := range s.active.Books {
		b.Category = slices.Clone(b.Category)
		out[i] = b
	}
	return out, nil
}

// GetBook returns one book by ID.
func (s *Store) GetBook(id int64) (*domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, errors.Conflict("no active library")
	}
	book := s.active.FindBook(id)
	if book == nil {
		return nil, errors.NotFoundf("book %d not found", id)
	}
	out := *book
	out.Category = slices.Clone(book.Category)
	return &out, nil
}

// CreateBook appends a new book with placeholder defaults and returns it.
func (s *Store) CreateBook() (*domain.Book, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}

	book := domain.Book{
		ID:         s.nextID(),
		Title:      defaultBookTitle,
		Author:     "",
		TotalPages: defaultBookPages,
		Status:     defaultBookStatus,
		Category:   []string{},
	}
	s.active.Books = append(s.active.Books, book)
	library := s.active.Name
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Book created", "book_id", book.ID, "library", library)
	}
	s.emit(sse.NewEvent(sse.EventBookCreated, sse.EntityEventData{
		Library: library,
		ID:      book.ID,
		Entity:  book,
	}))
	return &book, nil
}

// UpdateBook replaces the stored book with the same ID.
func (s *Store) UpdateBook(book domain.Book) (*domain.Book, error) {
	if book.Category == nil {
		book.Category = []string{}
	}

	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, errors.Conflict("no active library")
	}
	stored := s.active.FindBook(book.ID)
	if stored == nil {
		s.mu.Unlock()
		return nil, errors.NotFoundf("book %d not found", book.ID)
	}
	*stored = book
	library := s.active.Name
	s.mu.Unlock()

	s.emit(sse.NewEvent(sse.EventBookUpdated, sse.EntityEventData{
		Library: library,
		ID:      book.ID,
		Entity:  book,
	}))
	return &book, nil
}

// DeleteBook removes a book. Its chapters and details are deliberately left
// in place; they become unreachable through navigation but still count for
// nothing and survive in the persisted document.
func (s *Store) DeleteBook(id int64) error {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return errors.Conflict("no active library")
	}
	idx := slices.IndexFunc(s.active.Books, func(b domain.Book) bool { return b.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return errors.NotFoundf("book %d not found", id)
	}
	s.active.Books = slices.Delete(s.active.Books, idx, idx+1)
	library := s.active.Name
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("Book deleted", "book_id", id, "library", library)
	}
	s.emit(sse.NewEvent(sse.EventBookDeleted, sse.EntityEventData{
		Library: library,
		ID:      id,
	}))
	return nil
}

// Progress returns the reading progress percentage for a book.
func (s *Store) Progress(bookID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return 0, errors.Conflict("no active library")
	}
	if s.active.FindBook(bookID) == nil {
		return 0, errors.NotFoundf("book %d not found", bookID)
	}
	return s.active.Progress(bookID), nil
}
