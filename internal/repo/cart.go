package repo

import (
	"context"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

func (r *GormRepo) ListCart(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// AddCartLine always inserts. Lines with the same name are merged on read.
func (r *GormRepo) AddCartLine(ctx context.Context, line *models.CartLine) error {
	return r.DB.WithContext(ctx).Create(line).Error
}

func (r *GormRepo) DeleteCartLine(ctx context.Context, sessionID, lineID string) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND session_id = ?", lineID, sessionID).
		Delete(&models.CartLine{})
	return affectedOrNotFound(res)
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	res := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartLine{})
	return res.RowsAffected, res.Error
}
