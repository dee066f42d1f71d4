package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/booknoteapp/booknote-server/internal/service"
)

func (s *Server) registerNoteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getNote",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Get note",
		Description: "Returns a detail note by ID",
		Tags:        []string{"Notes"},
	}, s.handleGetNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateNote",
		Method:      http.MethodPatch,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Update note",
		Description: "Applies a partial update to a detail note",
		Tags:        []string{"Notes"},
	}, s.handleUpdateNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteNote",
		Method:      http.MethodDelete,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Delete note",
		Description: "Removes a detail note",
		Tags:        []string{"Notes"},
	}, s.handleDeleteNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "spellCheckNote",
		Method:      http.MethodPost,
		Path:        "/api/v1/notes/{id}/spellcheck",
		Summary:     "Spell check note",
		Description: "Runs the typo correction table over a note's content",
		Tags:        []string{"Spelling"},
	}, s.handleSpellCheckNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "applySpellCorrection",
		Method:      http.MethodPost,
		Path:        "/api/v1/notes/{id}/spellcheck/apply",
		Summary:     "Apply correction",
		Description: "Replaces a note's content with the corrected text",
		Tags:        []string{"Spelling"},
	}, s.handleApplySpellCorrection)

	huma.Register(s.api, huma.Operation{
		OperationID: "getNoteVideo",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/{id}/video",
		Summary:     "Get note video",
		Description: "Returns the note's video URL and resolved YouTube embed",
		Tags:        []string{"Notes"},
	}, s.handleGetNoteVideo)

	huma.Register(s.api, huma.Operation{
		OperationID: "setNoteVideo",
		Method:      http.MethodPut,
		Path:        "/api/v1/notes/{id}/video",
		Summary:     "Set note video",
		Description: "Attaches a video URL to a note and resolves its YouTube embed",
		Tags:        []string{"Notes"},
	}, s.handleSetNoteVideo)
}

// === DTOs ===

// NoteIDInput identifies a note by path parameter.
type NoteIDInput struct {
	ID int64 `path:"id" doc:"Note ID"`
}

// UpdateNoteRequest is the request body for a partial note update.
type UpdateNoteRequest struct {
	Index     *string `json:"index,omitempty" validate:"omitempty,max=20" doc:"Display index"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200" doc:"Note title"`
	StartPage *int    `json:"startPage,omitempty" validate:"omitempty,gte=1" doc:"First page covered"`
	EndPage   *int    `json:"endPage,omitempty" validate:"omitempty,gte=1" doc:"Last page covered"`
	Content   *string `json:"content,omitempty" doc:"Note body"`
	VideoURL  *string `json:"videoUrl,omitempty" doc:"Related video URL"`
}

// UpdateNoteInput wraps the update note request for Huma.
type UpdateNoteInput struct {
	ID   int64 `path:"id" doc:"Note ID"`
	Body UpdateNoteRequest
}

// SpellCheckOutput wraps the spell check result for Huma.
type SpellCheckOutput struct {
	Body service.SpellResult
}

// ApplyCorrectionRequest is the request body for applying a correction.
type ApplyCorrectionRequest struct {
	Corrected string `json:"corrected" validate:"required" doc:"Corrected text to store"`
}

// ApplyCorrectionInput wraps the apply correction request for Huma.
type ApplyCorrectionInput struct {
	ID   int64 `path:"id" doc:"Note ID"`
	Body ApplyCorrectionRequest
}

// SetVideoRequest is the request body for attaching a video.
type SetVideoRequest struct {
	URL string `json:"url" validate:"required,url" doc:"Video URL"`
}

// SetVideoInput wraps the set video request for Huma.
type SetVideoInput struct {
	ID   int64 `path:"id" doc:"Note ID"`
	Body SetVideoRequest
}

// VideoOutput wraps the video info for Huma.
type VideoOutput struct {
	Body service.VideoInfo
}

// === Handlers ===

func (s *Server) handleGetNote(_ context.Context, input *NoteIDInput) (*NoteOutput, error) {
	note, err := s.services.Note.Get(input.ID)
	if err != nil {
		return nil, err
	}

	return &NoteOutput{Body: *note}, nil
}

func (s *Server) handleUpdateNote(_ context.Context, input *UpdateNoteInput) (*NoteOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	note, err := s.services.Note.Update(input.ID, service.NoteUpdate{
		Index:     input.Body.Index,
		Title:     input.Body.Title,
		StartPage: input.Body.StartPage,
		EndPage:   input.Body.EndPage,
		Content:   input.Body.Content,
		VideoURL:  input.Body.VideoURL,
	})
	if err != nil {
		return nil, err
	}

	return &NoteOutput{Body: *note}, nil
}

func (s *Server) handleDeleteNote(_ context.Context, input *NoteIDInput) (*struct{}, error) {
	if err := s.services.Note.Delete(input.ID); err != nil {
		return nil, err
	}

	return &struct{}{}, nil
}

func (s *Server) handleSpellCheckNote(ctx context.Context, input *NoteIDInput) (*SpellCheckOutput, error) {
	result, err := s.services.Spell.Check(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &SpellCheckOutput{Body: *result}, nil
}

func (s *Server) handleApplySpellCorrection(_ context.Context, input *ApplyCorrectionInput) (*NoteOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	if err := s.services.Spell.Apply(input.ID, input.Body.Corrected); err != nil {
		return nil, err
	}

	note, err := s.services.Note.Get(input.ID)
	if err != nil {
		return nil, err
	}

	return &NoteOutput{Body: *note}, nil
}

func (s *Server) handleGetNoteVideo(_ context.Context, input *NoteIDInput) (*VideoOutput, error) {
	info, err := s.services.Note.Video(input.ID)
	if err != nil {
		return nil, err
	}

	return &VideoOutput{Body: *info}, nil
}

func (s *Server) handleSetNoteVideo(_ context.Context, input *SetVideoInput) (*VideoOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	info, err := s.services.Note.SetVideo(input.ID, input.Body.URL)
	if err != nil {
		return nil, err
	}

	return &VideoOutput{Body: *info}, nil
}
