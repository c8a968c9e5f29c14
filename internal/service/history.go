package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/session"
)

type HistoryService struct {
	Repo *repo.GormRepo
}

func validateArchive(rec *models.HistoryRecord) error {
	if rec == nil || strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("_id is required: %w", ErrValidation)
	}
	if !session.Valid(rec.SessionID) {
		return fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	if rec.OrderDate.IsZero() {
		rec.OrderDate = time.Now().UTC()
	}
	return nil
}

// Archive stores a new record. Reusing an archived id is a storage error.
func (s *HistoryService) Archive(ctx context.Context, rec *models.HistoryRecord) error {
	if err := validateArchive(rec); err != nil {
		return err
	}
	return s.Repo.CreateHistory(ctx, rec)
}

// ArchiveOnce succeeds when the id is already archived, so the done flow can
// be retried after a client archived the order itself.
func (s *HistoryService) ArchiveOnce(ctx context.Context, rec *models.HistoryRecord) error {
	if err := validateArchive(rec); err != nil {
		return err
	}
	return s.Repo.CreateHistoryIfAbsent(ctx, rec)
}

func (s *HistoryService) ListBySession(ctx context.Context, sessionID string) ([]models.HistoryRecord, error) {
	if !session.Valid(sessionID) {
		return nil, fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	return s.Repo.ListHistory(ctx, sessionID)
}

// ClearSession fails with ErrNotFound when nothing was archived for the
// session. Cart clearing, by contrast, is a silent no-op.
func (s *HistoryService) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	if !session.Valid(sessionID) {
		return 0, fmt.Errorf("sessionId is required: %w", ErrValidation)
	}
	n, err := s.Repo.ClearHistory(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("history of %s: %w", sessionID, ErrNotFound)
		}
		return 0, err
	}
	return n, nil
}
