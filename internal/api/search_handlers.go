package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/store"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search",
		Description: "Returns substring matches across books, chapters and notes, grouped by kind",
		Tags:        []string{"Search"},
	}, s.handleSearch)

	huma.Register(s.api, huma.Operation{
		OperationID: "jumpToResult",
		Method:      http.MethodPost,
		Path:        "/api/v1/search/jump",
		Summary:     "Jump to result",
		Description: "Moves navigation to a search result; stale results leave navigation untouched",
		Tags:        []string{"Search"},
	}, s.handleJumpToResult)
}

// === DTOs ===

// SearchInput carries the search query.
type SearchInput struct {
	Query string `query:"q" doc:"Search query; blank returns no results"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Results []store.SearchResult `json:"results" doc:"Matches grouped books first, then chapters, then notes"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// JumpRequest is the request body for jumping to a search result.
type JumpRequest struct {
	Target string `json:"target" validate:"required,oneof=book chapter detail" doc:"Result kind: book, chapter or detail"`
	ID     int64  `json:"id" validate:"required" doc:"Entity ID"`
}

// JumpInput wraps the jump request for Huma.
type JumpInput struct {
	Body JumpRequest
}

// NavigationOutput wraps the navigation state for Huma.
type NavigationOutput struct {
	Body session.State
}

// === Handlers ===

func (s *Server) handleSearch(_ context.Context, input *SearchInput) (*SearchOutput, error) {
	results, err := s.services.Search.Search(input.Query)
	if err != nil {
		return nil, err
	}

	return &SearchOutput{Body: SearchResponse{Results: results}}, nil
}

func (s *Server) handleJumpToResult(_ context.Context, input *JumpInput) (*NavigationOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	state, err := s.services.Search.Jump(input.Body.Target, input.Body.ID)
	if err != nil {
		return nil, err
	}

	return &NavigationOutput{Body: state}, nil
}
