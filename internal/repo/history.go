package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

func (r *GormRepo) CreateHistory(ctx context.Context, rec *models.HistoryRecord) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

// CreateHistoryIfAbsent keeps an already archived record with the same id
// untouched and reports success.
func (r *GormRepo) CreateHistoryIfAbsent(ctx context.Context, rec *models.HistoryRecord) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(rec).Error
}

func (r *GormRepo) ListHistory(ctx context.Context, sessionID string) ([]models.HistoryRecord, error) {
	var recs []models.HistoryRecord
	if err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("order_date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ClearHistory reports gorm.ErrRecordNotFound when the session had nothing
// archived, unlike ClearCart.
func (r *GormRepo) ClearHistory(ctx context.Context, sessionID string) (int64, error) {
	res := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.HistoryRecord{})
	if err := affectedOrNotFound(res); err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}
