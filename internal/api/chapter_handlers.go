package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/service"
)

func (s *Server) registerChapterRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getChapter",
		Method:      http.MethodGet,
		Path:        "/api/v1/chapters/{id}",
		Summary:     "Get chapter",
		Description: "Returns a chapter by ID",
		Tags:        []string{"Chapters"},
	}, s.handleGetChapter)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateChapter",
		Method:      http.MethodPatch,
		Path:        "/api/v1/chapters/{id}",
		Summary:     "Update chapter",
		Description: "Applies a partial update to a chapter",
		Tags:        []string{"Chapters"},
	}, s.handleUpdateChapter)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteChapter",
		Method:      http.MethodDelete,
		Path:        "/api/v1/chapters/{id}",
		Summary:     "Delete chapter",
		Description: "Removes a chapter; its notes stay in the library",
		Tags:        []string{"Chapters"},
	}, s.handleDeleteChapter)

	huma.Register(s.api, huma.Operation{
		OperationID: "listChapterNotes",
		Method:      http.MethodGet,
		Path:        "/api/v1/chapters/{id}/notes",
		Summary:     "List notes",
		Description: "Returns a chapter's detail notes",
		Tags:        []string{"Notes"},
	}, s.handleListChapterNotes)

	huma.Register(s.api, huma.Operation{
		OperationID: "createNote",
		Method:      http.MethodPost,
		Path:        "/api/v1/chapters/{id}/notes",
		Summary:     "Create note",
		Description: "Adds a detail note under a chapter with placeholder defaults",
		Tags:        []string{"Notes"},
	}, s.handleCreateNote)
}

// === DTOs ===

// ChapterIDInput identifies a chapter by path parameter.
type ChapterIDInput struct {
	ID int64 `path:"id" doc:"Chapter ID"`
}

// UpdateChapterRequest is the request body for a partial chapter update.
type UpdateChapterRequest struct {
	Index    *string `json:"index,omitempty" validate:"omitempty,max=20" doc:"Display index"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200" doc:"Chapter title"`
	VideoURL *string `json:"videoUrl,omitempty" doc:"Related video URL"`
}

// UpdateChapterInput wraps the update chapter request for Huma.
type UpdateChapterInput struct {
	ID   int64 `path:"id" doc:"Chapter ID"`
	Body UpdateChapterRequest
}

// NotesResponse contains a chapter's detail notes.
type NotesResponse struct {
	Notes []domain.Detail `json:"notes" doc:"Notes in creation order"`
}

// NotesOutput wraps the note list for Huma.
type NotesOutput struct {
	Body NotesResponse
}

// NoteOutput wraps a single note for Huma.
type NoteOutput struct {
	Body domain.Detail
}

// === Handlers ===

func (s *Server) handleGetChapter(_ context.Context, input *ChapterIDInput) (*ChapterOutput, error) {
	chapter, err := s.services.Chapter.Get(input.ID)
	if err != nil {
		return nil, err
	}

	return &ChapterOutput{Body: *chapter}, nil
}

func (s *Server) handleUpdateChapter(_ context.Context, input *UpdateChapterInput) (*ChapterOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	chapter, err := s.services.Chapter.Update(input.ID, service.ChapterUpdate{
		Index:    input.Body.Index,
		Title:    input.Body.Title,
		VideoURL: input.Body.VideoURL,
	})
	if err != nil {
		return nil, err
	}

	return &ChapterOutput{Body: *chapter}, nil
}

func (s *Server) handleDeleteChapter(_ context.Context, input *ChapterIDInput) (*struct{}, error) {
	if err := s.services.Chapter.Delete(input.ID); err != nil {
		return nil, err
	}

	return &struct{}{}, nil
}

func (s *Server) handleListChapterNotes(_ context.Context, input *ChapterIDInput) (*NotesOutput, error) {
	notes, err := s.services.Note.List(input.ID)
	if err != nil {
		return nil, err
	}

	return &NotesOutput{Body: NotesResponse{Notes: notes}}, nil
}

func (s *Server) handleCreateNote(_ context.Context, input *ChapterIDInput) (*NoteOutput, error) {
	note, err := s.services.Note.Create(input.ID)
	if err != nil {
		return nil, err
	}

	return &NoteOutput{Body: *note}, nil
}
