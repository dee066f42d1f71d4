package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the active library's books with reading progress",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/books",
		Summary:     "Create book",
		Description: "Adds a book with placeholder defaults",
		Tags:        []string{"Books"},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a book by ID with reading progress",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPatch,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update book",
		Description: "Applies a partial update to a book",
		Tags:        []string{"Books"},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}",
		Summary:     "Delete book",
		Description: "Removes a book from the shelf; its chapters stay in the library",
		Tags:        []string{"Books"},
	}, s.handleDeleteBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBookProgress",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/progress",
		Summary:     "Get reading progress",
		Description: "Returns the percentage of pages covered by notes with content",
		Tags:        []string{"Books"},
	}, s.handleGetBookProgress)

	huma.Register(s.api, huma.Operation{
		OperationID: "listBookChapters",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}/chapters",
		Summary:     "List chapters",
		Description: "Returns a book's chapters",
		Tags:        []string{"Chapters"},
	}, s.handleListBookChapters)

	huma.Register(s.api, huma.Operation{
		OperationID: "createChapter",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/chapters",
		Summary:     "Create chapter",
		Description: "Adds a chapter under a book with a placeholder title",
		Tags:        []string{"Chapters"},
	}, s.handleCreateChapter)
}

// === DTOs ===

// BookIDInput identifies a book by path parameter.
type BookIDInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

// ListBooksResponse contains the shelf's books.
type ListBooksResponse struct {
	Books []service.BookWithProgress `json:"books" doc:"Books with reading progress"`
}

// ListBooksOutput wraps the book list for Huma.
type ListBooksOutput struct {
	Body ListBooksResponse
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body service.BookWithProgress
}

// CreatedBookOutput wraps a freshly created book for Huma.
type CreatedBookOutput struct {
	Body domain.Book
}

// UpdateBookRequest is the request body for a partial book update.
// Absent fields are left unchanged.
type UpdateBookRequest struct {
	Title      *string  `json:"title,omitempty" validate:"omitempty,max=200" doc:"Book title"`
	Author     *string  `json:"author,omitempty" validate:"omitempty,max=100" doc:"Author name"`
	TotalPages *int     `json:"totalPages,omitempty" validate:"omitempty,gte=1" doc:"Total page count"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,max=50" doc:"Reading status"`
	Category   []string `json:"category,omitempty" doc:"Genre tags"`
	CoverURL   *string  `json:"coverUrl,omitempty" validate:"omitempty,url" doc:"Cover image URL"`
	VideoURL   *string  `json:"videoUrl,omitempty" doc:"Related video URL"`
}

// UpdateBookInput wraps the update book request for Huma.
type UpdateBookInput struct {
	ID   int64 `path:"id" doc:"Book ID"`
	Body UpdateBookRequest
}

// ProgressResponse contains a book's reading progress.
type ProgressResponse struct {
	Progress int `json:"progress" doc:"Percentage of pages covered, 0 to 100"`
}

// ProgressOutput wraps the progress response for Huma.
type ProgressOutput struct {
	Body ProgressResponse
}

// ChaptersResponse contains a book's chapters.
type ChaptersResponse struct {
	Chapters []domain.Chapter `json:"chapters" doc:"Chapters in creation order"`
}

// ChaptersOutput wraps the chapter list for Huma.
type ChaptersOutput struct {
	Body ChaptersResponse
}

// ChapterOutput wraps a single chapter for Huma.
type ChapterOutput struct {
	Body domain.Chapter
}

// === Handlers ===

func (s *Server) handleListBooks(_ context.Context, _ *struct{}) (*ListBooksOutput, error) {
	books, err := s.services.Book.List()
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: ListBooksResponse{Books: books}}, nil
}

func (s *Server) handleCreateBook(_ context.Context, _ *struct{}) (*CreatedBookOutput, error) {
	book, err := s.services.Book.Create()
	if err != nil {
		return nil, err
	}

	return &CreatedBookOutput{Body: *book}, nil
}

func (s *Server) handleGetBook(_ context.Context, input *BookIDInput) (*BookOutput, error) {
	book, err := s.services.Book.Get(input.ID)
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleUpdateBook(_ context.Context, input *UpdateBookInput) (*CreatedBookOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	book, err := s.services.Book.Update(input.ID, service.BookUpdate{
		Title:      input.Body.Title,
		Author:     input.Body.Author,
		TotalPages: input.Body.TotalPages,
		Status:     input.Body.Status,
		Category:   input.Body.Category,
		CoverURL:   input.Body.CoverURL,
		VideoURL:   input.Body.VideoURL,
	})
	if err != nil {
		return nil, err
	}

	return &CreatedBookOutput{Body: *book}, nil
}

func (s *Server) handleDeleteBook(_ context.Context, input *BookIDInput) (*struct{}, error) {
	if err := s.services.Book.Delete(input.ID); err != nil {
		return nil, err
	}

	return &struct{}{}, nil
}

func (s *Server) handleGetBookProgress(_ context.Context, input *BookIDInput) (*ProgressOutput, error) {
	progress, err := s.services.Book.Progress(input.ID)
	if err != nil {
		return nil, err
	}

	return &ProgressOutput{Body: ProgressResponse{Progress: progress}}, nil
}

func (s *Server) handleListBookChapters(_ context.Context, input *BookIDInput) (*ChaptersOutput, error) {
	chapters, err := s.services.Chapter.List(input.ID)
	if err != nil {
		return nil, err
	}

	return &ChaptersOutput{Body: ChaptersResponse{Chapters: chapters}}, nil
}

func (s *Server) handleCreateChapter(_ context.Context, input *BookIDInput) (*ChapterOutput, error) {
	chapter, err := s.services.Chapter.Create(input.ID)
	if err != nil {
		return nil, err
	}

	return &ChapterOutput{Body: *chapter}, nil
}
