package service

import (
	"context"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/apperror"
	"github.com/fahadalg/tailor-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Phone *string
	Notes *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  input.Name,
		Phone: input.Phone,
		Notes: input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional name/phone search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID    uint
	Name  *string
	Phone *string
	Notes *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}

// MeasurementService handles measurement-related operations
type MeasurementService struct {
	measurementRepo repository.MeasurementRepository
	customerRepo    repository.CustomerRepository
}

// NewMeasurementService creates a new measurement service
func NewMeasurementService(measurementRepo repository.MeasurementRepository, customerRepo repository.CustomerRepository) *MeasurementService {
	return &MeasurementService{
		measurementRepo: measurementRepo,
		customerRepo:    customerRepo,
	}
}

// CreateMeasurementInput represents the create measurement input
type CreateMeasurementInput struct {
	CustomerID uint
	Label      *string
	Height     *float64
	Shoulder   *float64
	Chest      *float64
	Waist      *float64
	Sleeve     *float64
	Wrist      *float64
	Neck       *float64
	Hip        *float64
	Notes      *string
}

// CreateMeasurement records a new measurement set for a customer
func (s *MeasurementService) CreateMeasurement(ctx context.Context, input *CreateMeasurementInput) (*entity.Measurement, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	measurement := &entity.Measurement{
		CustomerID: input.CustomerID,
		Label:      input.Label,
		Height:     input.Height,
		Shoulder:   input.Shoulder,
		Chest:      input.Chest,
		Waist:      input.Waist,
		Sleeve:     input.Sleeve,
		Wrist:      input.Wrist,
		Neck:       input.Neck,
		Hip:        input.Hip,
		Notes:      input.Notes,
	}

	if err := s.measurementRepo.Create(ctx, measurement); err != nil {
		return nil, err
	}

	return measurement, nil
}

// ListMeasurements lists all measurement sets for a customer
func (s *MeasurementService) ListMeasurements(ctx context.Context, customerID uint) ([]entity.Measurement, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	return s.measurementRepo.ListByCustomer(ctx, customerID)
}
