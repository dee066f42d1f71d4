package service

import (
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// BookService manages the book shelf.
type BookService struct {
	store   *store.Store
	machine *session.Machine
	logger  *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(st *store.Store, machine *session.Machine, logger *slog.Logger) *BookService {
	return &BookService{
		store:   st,
		machine: machine,
		logger:  logger,
	}
}

// BookWithProgress pairs a book with its computed reading progress.
type BookWithProgress struct {
	domain.Book
	Progress int `json:"progress"`
}

// List returns all books with their reading progress.
func (s *BookService) List() ([]BookWithProgress, error) {
	books, err := s.store.ListBooks()
	if err != nil {
		return nil, err
	}

	out := make([]BookWithProgress, len(books))
	for i, b := range books {
		pct, err := s.store.Progress(b.ID)
		if err != nil {
			return nil, err
		}
		out[i] = BookWithProgress{Book: b, Progress: pct}
	}
	return out, nil
}

// Get returns one book with its reading progress.
func (s *BookService) Get(id int64) (*BookWithProgress, error) {
	book, err := s.store.GetBook(id)
	if err != nil {
		return nil, err
	}
	pct, err := s.store.Progress(id)
	if err != nil {
		return nil, err
	}
	return &BookWithProgress{Book: *book, Progress: pct}, nil
}

// Create adds a book with placeholder defaults.
func (s *BookService) Create() (*domain.Book, error) {
	return s.store.CreateBook()
}

// BookUpdate carries the editable book fields. Nil fields are left unchanged.
type BookUpdate struct {
	Title      *string
	Author     *string
	TotalPages *int
	Status     *string
	Category   []string
	CoverURL   *string
	VideoURL   *string
}

// Update applies a partial update to a book.
func (s *BookService) Update(id int64, update BookUpdate) (*domain.Book, error) {
	book, err := s.store.GetBook(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.TotalPages != nil {
		book.TotalPages = *update.TotalPages
	}
	if update.Status != nil {
		book.Status = *update.Status
	}
	if update.Category != nil {
		book.Category = update.Category
	}
	if update.CoverURL != nil {
		book.CoverURL = *update.CoverURL
	}
	if update.VideoURL != nil {
		book.VideoURL = *update.VideoURL
	}

	return s.store.UpdateBook(*book)
}

// Delete removes a book and returns navigation to the shelf. Chapters and
// details under the book stay in the library.
func (s *BookService) Delete(id int64) error {
	if err := s.store.DeleteBook(id); err != nil {
		return err
	}
	s.machine.Reset()
	return nil
}

// Progress returns the reading progress percentage for a book.
func (s *BookService) Progress(id int64) (int, error) {
	return s.store.Progress(id)
}
