package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/enum"
	domainRepo "github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"github.com/fahadalg/tailor-api/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithInvoice creates the order and its invoice atomically. The
// invoice code depends on the order id, so the invoice row is built after
// the order insert inside the same transaction.
func (r *orderRepository) CreateWithInvoice(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		invoice := &entity.Invoice{
			OrderID:      order.ID,
			InternalCode: utils.FormatInvoiceCode(order.ID),
			IssueDate:    time.Now().UTC(),
			Subtotal:     order.PriceBeforeVat,
			VatAmount:    order.VatAmount,
			TotalAmount:  order.TotalAmount,
			InvoiceType:  enum.InvoiceTypeSimplified,
			VatCategory:  enum.VatCategoryStandard,
			Currency:     "SAR",
		}
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		order.Invoice = invoice
		return nil
	})
}

// GetByID loads the order with its customer, measurement and invoice. The
// customer preload is unscoped: a soft-deleted customer must still resolve
// on historical orders and their invoices.
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Measurement").
		Preload("Invoice").
		First(&order, "orders.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Invoice").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("id DESC").
		Find(&orders).Error

	return orders, total, err
}

type einvoiceRepository struct {
	db *gorm.DB
}

// NewEInvoiceRepository creates a new e-invoice repository
func NewEInvoiceRepository(db *gorm.DB) domainRepo.EInvoiceRepository {
	return &einvoiceRepository{db: db}
}

func (r *einvoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID uint) (*entity.EInvoice, error) {
	var einvoice entity.EInvoice
	err := r.db.WithContext(ctx).First(&einvoice, "invoice_id = ?", invoiceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &einvoice, err
}

// Upsert is a single conditional write: INSERT, or on a conflicting
// invoice_id an UPDATE of the derived fields only. uuid is deliberately
// absent from the update set, which makes it write-once: two racing
// issuers both land on whichever row won the insert. The stored row is
// read back into e so the caller observes the converged state.
func (r *einvoiceRepository) Upsert(ctx context.Context, e *entity.EInvoice) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invoice_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"qr_data", "provider_status", "provider_raw_resp", "updated_at"}),
	}).Create(e).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).First(e, "invoice_id = ?", e.InvoiceID).Error
}
