package repo

import (
	"context"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.PlacedOrder{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateOrder assigns SerialNumber as the current ledger size plus one. The
// count and the insert are separate statements, so concurrent placements may
// receive the same number.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.PlacedOrder) error {
	n, err := r.CountOrders(ctx)
	if err != nil {
		return err
	}
	order.SerialNumber = n + 1
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) ListOrders(ctx context.Context, sessionID string) ([]models.PlacedOrder, error) {
	q := r.DB.WithContext(ctx).Model(&models.PlacedOrder{})
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}

	var orders []models.PlacedOrder
	if err := q.Order("order_date ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id string) (*models.PlacedOrder, error) {
	var order models.PlacedOrder
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id string) error {
	return affectedOrNotFound(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.PlacedOrder{}))
}
