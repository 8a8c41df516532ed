package repository

import (
	"context"
	"errors"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	domainRepo "github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if search != "" {
		query = query.Where("name LIKE ? OR phone LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("id DESC").
		Find(&customers).Error

	return customers, total, err
}

type measurementRepository struct {
	db *gorm.DB
}

// NewMeasurementRepository creates a new measurement repository
func NewMeasurementRepository(db *gorm.DB) domainRepo.MeasurementRepository {
	return &measurementRepository{db: db}
}

func (r *measurementRepository) Create(ctx context.Context, measurement *entity.Measurement) error {
	return r.db.WithContext(ctx).Create(measurement).Error
}

func (r *measurementRepository) GetByID(ctx context.Context, id uint) (*entity.Measurement, error) {
	var measurement entity.Measurement
	err := r.db.WithContext(ctx).First(&measurement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &measurement, err
}

func (r *measurementRepository) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Measurement, error) {
	var measurements []entity.Measurement
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id DESC").
		Find(&measurements).Error
	return measurements, err
}

func (r *measurementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Measurement{}, "id = ?", id).Error
}
