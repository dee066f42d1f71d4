package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/booknoteapp/booknote-server/internal/errors"
	"github.com/booknoteapp/booknote-server/internal/spelling"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// SpellService runs typo corrections over detail note content.
type SpellService struct {
	store  *store.Store
	logger *slog.Logger

	// delay is an artificial pause before results are returned, preserving
	// the UI's visible "checking" state.
	delay time.Duration
}

// NewSpellService creates a new spell check service.
func NewSpellService(st *store.Store, delay time.Duration, logger *slog.Logger) *SpellService {
	return &SpellService{
		store:  st,
		logger: logger,
		delay:  delay,
	}
}

// SpellResult is the outcome of a spell check run.
type SpellResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Changed   bool   `json:"changed"`
}

// Check applies the correction table to a note's content. Notes without
// content cannot be checked. The configured delay is context-aware, so an
// abandoned request does not hold the goroutine.
func (s *SpellService) Check(ctx context.Context, detailID int64) (*SpellResult, error) {
	detail, err := s.store.GetDetail(detailID)
	if err != nil {
		return nil, err
	}
	if detail.Content == "" {
		return nil, errors.Validation("note has no content to check")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), errors.CodeUnavailable, "spell check canceled")
		}
	}

	corrected, changed := spelling.Correct(detail.Content)
	if s.logger != nil {
		s.logger.Debug("Spell check completed", "detail_id", detailID, "changed", changed)
	}
	return &SpellResult{
		Original:  detail.Content,
		Corrected: corrected,
		Changed:   changed,
	}, nil
}

// Apply replaces a note's content with the supplied corrected text.
func (s *SpellService) Apply(detailID int64, corrected string) error {
	detail, err := s.store.GetDetail(detailID)
	if err != nil {
		return err
	}
	detail.Content = corrected
	_, err = s.store.UpdateDetail(*detail)
	return err
}
