package service

import (
	"context"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/apperror"
)

// SettingsService handles the shop profile
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetShopSettings returns the configured shop profile, or the fixed
// default profile when none has been saved yet. The default is a plain
// value, not persisted state.
func (s *SettingsService) GetShopSettings(ctx context.Context) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		defaults := entity.DefaultShopSettings()
		return &defaults, nil
	}
	return settings, nil
}

// UpdateShopSettingsInput represents the update settings input
type UpdateShopSettingsInput struct {
	Name      string
	CRNumber  *string
	VATNumber *string
	Address   *string
	Phone     *string
	City      *string
	Country   *string
}

// UpdateShopSettings writes the single shop profile row
func (s *SettingsService) UpdateShopSettings(ctx context.Context, input *UpdateShopSettingsInput) (*entity.ShopSettings, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Shop name is required")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.ShopSettings{ID: entity.ShopSettingsID}
	}

	settings.Name = input.Name
	settings.CRNumber = input.CRNumber
	settings.VATNumber = input.VATNumber
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.City = input.City
	settings.Country = input.Country

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
