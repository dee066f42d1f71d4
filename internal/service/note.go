package service

import (
	"log/slog"

	"github.com/booknoteapp/booknote-server/internal/domain"
	"github.com/booknoteapp/booknote-server/internal/store"
	"github.com/booknoteapp/booknote-server/internal/video"
)

// NoteService manages detail notes and their attached videos.
type NoteService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewNoteService creates a new note service.
func NewNoteService(st *store.Store, logger *slog.Logger) *NoteService {
	return &NoteService{store: st, logger: logger}
}

// List returns a chapter's detail notes.
func (s *NoteService) List(chapterID int64) ([]domain.Detail, error) {
	return s.store.ListDetails(chapterID)
}

// Get returns one detail note.
func (s *NoteService) Get(id int64) (*domain.Detail, error) {
	return s.store.GetDetail(id)
}

// Create adds a detail note under a chapter with placeholder defaults.
func (s *NoteService) Create(chapterID int64) (*domain.Detail, error) {
	return s.store.CreateDetail(chapterID)
}

// NoteUpdate carries the editable note fields. Nil fields are left unchanged.
type NoteUpdate struct {
	Index     *string
	Title     *string
	StartPage *int
	EndPage   *int
	Content   *string
	VideoURL  *string
}

// Update applies a partial update to a detail note.
func (s *NoteService) Update(id int64, update NoteUpdate) (*domain.Detail, error) {
	detail, err := s.store.GetDetail(id)
	if err != nil {
		return nil, err
	}

	if update.Index != nil {
		detail.Index = *update.Index
	}
	if update.Title != nil {
		detail.Title = *update.Title
	}
	if update.StartPage != nil {
		detail.StartPage = *update.StartPage
	}
	if update.EndPage != nil {
		detail.EndPage = *update.EndPage
	}
	if update.Content != nil {
		detail.Content = *update.Content
	}
	if update.VideoURL != nil {
		detail.VideoURL = *update.VideoURL
	}

	return s.store.UpdateDetail(*detail)
}

// Delete removes a detail note.
func (s *NoteService) Delete(id int64) error {
	return s.store.DeleteDetail(id)
}

// VideoInfo describes the stored video URL and its resolved embed form.
// VideoID and EmbedURL are empty when the URL is not a recognizable
// YouTube link; the raw URL is stored either way.
type VideoInfo struct {
	VideoURL string `json:"videoUrl"`
	VideoID  string `json:"videoId,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

// SetVideo attaches a video URL to a detail note and resolves its embed URL.
func (s *NoteService) SetVideo(id int64, url string) (*VideoInfo, error) {
	if _, err := s.Update(id, NoteUpdate{VideoURL: &url}); err != nil {
		return nil, err
	}
	return resolveVideo(url), nil
}

// Video returns the video info for a detail note.
func (s *NoteService) Video(id int64) (*VideoInfo, error) {
	detail, err := s.store.GetDetail(id)
	if err != nil {
		return nil, err
	}
	return resolveVideo(detail.VideoURL), nil
}

func resolveVideo(url string) *VideoInfo {
	videoID := video.YouTubeID(url)
	return &VideoInfo{
		VideoURL: url,
		VideoID:  videoID,
		EmbedURL: video.EmbedURL(videoID),
	}
}
