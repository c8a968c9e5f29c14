package repo

import (
	"context"

	"github.com/Skotchmaster/hotel_menu/internal/models"
	"gorm.io/gorm/clause"
)

func (r *GormRepo) GetAdmin(ctx context.Context) (*models.AdminCredential, error) {
	var cred models.AdminCredential
	if err := r.DB.WithContext(ctx).Where("id = ?", models.AdminCredentialID).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *GormRepo) UpsertAdmin(ctx context.Context, username, passwordHash string) (*models.AdminCredential, error) {
	cred := models.AdminCredential{
		ID:           models.AdminCredentialID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "password_hash"}),
	}).Create(&cred).Error
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
