package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/hotel_menu/internal/models"
)

func (r *GormRepo) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, id string) error {
	return affectedOrNotFound(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuItem{}))
}

func (r *GormRepo) MenuNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) MenuSections(ctx context.Context) ([]string, error) {
	var sections []string
	if err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Order("created_at ASC").
		Pluck("section", &sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// SearchMenu matches a case-insensitive substring of the name and, when
// section is set, a trimmed case-insensitive section label.
func (r *GormRepo) SearchMenu(ctx context.Context, query, section string) ([]models.MenuItem, error) {
	q := r.DB.WithContext(ctx).Model(&models.MenuItem{})
	if query = strings.TrimSpace(query); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if section = strings.TrimSpace(section); section != "" {
		q = q.Where("LOWER(TRIM(section)) = ?", strings.ToLower(section))
	}

	var items []models.MenuItem
	if err := q.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
