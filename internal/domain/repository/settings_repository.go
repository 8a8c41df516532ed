package repository

import (
	"context"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
)

// SettingsRepository defines the interface for shop settings operations
type SettingsRepository interface {
	// Get returns the configured shop settings row, or nil when none exists.
	Get(ctx context.Context) (*entity.ShopSettings, error)
	// Upsert writes the single settings row (id = 1).
	Upsert(ctx context.Context, settings *entity.ShopSettings) error
}
