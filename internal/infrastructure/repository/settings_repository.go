package repository

import (
	"context"
	"errors"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	domainRepo "github.com/fahadalg/tailor-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the configured shop settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.ShopSettings, error) {
	var settings entity.ShopSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", entity.ShopSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// Upsert writes the single settings row
func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.ShopSettings) error {
	settings.ID = entity.ShopSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
