package repository

import (
	"context"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}

// MeasurementRepository defines the interface for measurement data operations
type MeasurementRepository interface {
	Create(ctx context.Context, measurement *entity.Measurement) error
	GetByID(ctx context.Context, id uint) (*entity.Measurement, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]entity.Measurement, error)
	Delete(ctx context.Context, id uint) error
}
