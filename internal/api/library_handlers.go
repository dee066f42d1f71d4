package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/service"
	"github.com/booknoteapp/booknote-server/internal/storage"
)

func (s *Server) registerLibraryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getLibraryState",
		Method:      http.MethodGet,
		Path:        "/api/v1/library",
		Summary:     "Get library state",
		Description: "Returns library names, the active library, and whether setup is required",
		Tags:        []string{"Library"},
	}, s.handleGetLibraryState)

	huma.Register(s.api, huma.Operation{
		OperationID: "setupLibrary",
		Method:      http.MethodPost,
		Path:        "/api/v1/library/setup",
		Summary:     "First-time setup",
		Description: "Creates the first library and saves immediately",
		Tags:        []string{"Library"},
	}, s.handleSetupLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "createLibrary",
		Method:      http.MethodPost,
		Path:        "/api/v1/library",
		Summary:     "Create library",
		Description: "Creates a new library and makes it active",
		Tags:        []string{"Library"},
	}, s.handleCreateLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "switchLibrary",
		Method:      http.MethodPost,
		Path:        "/api/v1/library/switch",
		Summary:     "Switch library",
		Description: "Activates another library, preserving unsaved edits in the current one",
		Tags:        []string{"Library"},
	}, s.handleSwitchLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "saveLibrary",
		Method:      http.MethodPost,
		Path:        "/api/v1/library/save",
		Summary:     "Save",
		Description: "Persists all libraries and returns a save receipt",
		Tags:        []string{"Library"},
	}, s.handleSaveLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "listGenres",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres",
		Summary:     "List genres",
		Description: "Returns the active library's genres",
		Tags:        []string{"Genres"},
	}, s.handleListGenres)

	huma.Register(s.api, huma.Operation{
		OperationID: "addGenre",
		Method:      http.MethodPost,
		Path:        "/api/v1/genres",
		Summary:     "Add genre",
		Description: "Declares a custom genre on the active library",
		Tags:        []string{"Genres"},
	}, s.handleAddGenre)
}

// === DTOs ===

// LibraryStateOutput wraps the library state for Huma.
type LibraryStateOutput struct {
	Body service.LibraryState
}

// LibraryNameRequest is the request body carrying a library name.
type LibraryNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" doc:"Library name"`
}

// LibraryNameInput wraps the library name request for Huma.
type LibraryNameInput struct {
	Body LibraryNameRequest
}

// SetupResponse contains the result of first-time setup.
type SetupResponse struct {
	State   service.LibraryState `json:"state" doc:"Library state after setup"`
	Receipt *storage.SaveReceipt `json:"receipt" doc:"Receipt of the immediate save"`
}

// SetupOutput wraps the setup response for Huma.
type SetupOutput struct {
	Body SetupResponse
}

// SaveOutput wraps the save receipt for Huma.
type SaveOutput struct {
	Body storage.SaveReceipt
}

// GenresResponse contains the active library's genres.
type GenresResponse struct {
	Genres []string `json:"genres" doc:"Genres in first-use order"`
}

// GenresOutput wraps the genres response for Huma.
type GenresOutput struct {
	Body GenresResponse
}

// GenreRequest is the request body for declaring a genre.
type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50" doc:"Genre name"`
}

// GenreInput wraps the genre request for Huma.
type GenreInput struct {
	Body GenreRequest
}

// === Handlers ===

func (s *Server) handleGetLibraryState(_ context.Context, _ *struct{}) (*LibraryStateOutput, error) {
	return &LibraryStateOutput{Body: s.services.Library.State()}, nil
}

func (s *Server) handleSetupLibrary(ctx context.Context, input *LibraryNameInput) (*SetupOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	receipt, err := s.services.Library.Setup(ctx, input.Body.Name)
	if err != nil {
		return nil, err
	}

	return &SetupOutput{
		Body: SetupResponse{
			State:   s.services.Library.State(),
			Receipt: receipt,
		},
	}, nil
}

func (s *Server) handleCreateLibrary(_ context.Context, input *LibraryNameInput) (*LibraryStateOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	if err := s.services.Library.Create(input.Body.Name); err != nil {
		return nil, err
	}

	return &LibraryStateOutput{Body: s.services.Library.State()}, nil
}

func (s *Server) handleSwitchLibrary(_ context.Context, input *LibraryNameInput) (*LibraryStateOutput, error) {
	if err := s.services.Library.Switch(input.Body.Name); err != nil {
		return nil, err
	}

	return &LibraryStateOutput{Body: s.services.Library.State()}, nil
}

func (s *Server) handleSaveLibrary(ctx context.Context, _ *struct{}) (*SaveOutput, error) {
	receipt, err := s.services.Library.Save(ctx)
	if err != nil {
		return nil, err
	}

	return &SaveOutput{Body: *receipt}, nil
}

func (s *Server) handleListGenres(_ context.Context, _ *struct{}) (*GenresOutput, error) {
	genres, err := s.services.Library.Genres()
	if err != nil {
		return nil, err
	}

	return &GenresOutput{Body: GenresResponse{Genres: genres}}, nil
}

func (s *Server) handleAddGenre(_ context.Context, input *GenreInput) (*GenresOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	if err := s.services.Library.AddGenre(input.Body.Name); err != nil {
		return nil, err
	}

	genres, err := s.services.Library.Genres()
	if err != nil {
		return nil, err
	}

	return &GenresOutput{Body: GenresResponse{Genres: genres}}, nil
}
