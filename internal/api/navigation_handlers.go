package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/session"
)

func (s *Server) registerNavigationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getNavigation",
		Method:      http.MethodGet,
		Path:        "/api/v1/navigation",
		Summary:     "Get navigation state",
		Description: "Returns the current view and selections",
		Tags:        []string{"Navigation"},
	}, s.handleGetNavigation)

	huma.Register(s.api, huma.Operation{
		OperationID: "openBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/books/{id}",
		Summary:     "Open book",
		Description: "Selects a book and moves to its chapter list",
		Tags:        []string{"Navigation"},
	}, s.handleOpenBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "openChapter",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/chapters/{id}",
		Summary:     "Open chapter",
		Description: "Selects a chapter and moves to its note list",
		Tags:        []string{"Navigation"},
	}, s.handleOpenChapter)

	huma.Register(s.api, huma.Operation{
		OperationID: "openNote",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/notes/{id}",
		Summary:     "Open note",
		Description: "Selects a note and moves to the editor",
		Tags:        []string{"Navigation"},
	}, s.handleOpenNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "navigateUp",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/up",
		Summary:     "Go up",
		Description: "Moves one level toward the shelf, clearing the selection left behind",
		Tags:        []string{"Navigation"},
	}, s.handleNavigateUp)

	huma.Register(s.api, huma.Operation{
		OperationID: "navigateTo",
		Method:      http.MethodPost,
		Path:        "/api/v1/navigation/goto",
		Summary:     "Go to view",
		Description: "Jumps to an ancestor view via the breadcrumb",
		Tags:        []string{"Navigation"},
	}, s.handleNavigateTo)
}

// === DTOs ===

// NavigationIDInput identifies an entity to open by path parameter.
type NavigationIDInput struct {
	ID int64 `path:"id" doc:"Entity ID"`
}

// GoToRequest is the request body for a breadcrumb jump.
type GoToRequest struct {
	View string `json:"view" validate:"required,oneof=shelf chapters details editor" doc:"Target view"`
}

// GoToInput wraps the go-to request for Huma.
type GoToInput struct {
	Body GoToRequest
}

// === Handlers ===

func (s *Server) handleGetNavigation(_ context.Context, _ *struct{}) (*NavigationOutput, error) {
	return &NavigationOutput{Body: s.services.Navigation.State()}, nil
}

func (s *Server) handleOpenBook(_ context.Context, input *NavigationIDInput) (*NavigationOutput, error) {
	state, err := s.services.Navigation.OpenBook(input.ID)
	if err != nil {
		return nil, err
	}

	return &NavigationOutput{Body: state}, nil
}

func (s *Server) handleOpenChapter(_ context.Context, input *NavigationIDInput) (*NavigationOutput, error) {
	state, err := s.services.Navigation.OpenChapter(input.ID)
	if err != nil {
		return nil, err
	}

	return &NavigationOutput{Body: state}, nil
}

func (s *Server) handleOpenNote(_ context.Context, input *NavigationIDInput) (*NavigationOutput, error) {
	state, err := s.services.Navigation.OpenDetail(input.ID)
	if err != nil {
		return nil, err
	}

	return &NavigationOutput{Body: state}, nil
}

func (s *Server) handleNavigateUp(_ context.Context, _ *struct{}) (*NavigationOutput, error) {
	return &NavigationOutput{Body: s.services.Navigation.Up()}, nil
}

func (s *Server) handleNavigateTo(_ context.Context, input *GoToInput) (*NavigationOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	state, err := s.services.Navigation.GoTo(session.View(input.Body.View))
	if err != nil {
		return nil, err
	}

	return &NavigationOutput{Body: state}, nil
}
