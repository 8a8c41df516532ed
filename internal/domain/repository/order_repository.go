package repository

import (
	"context"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithInvoice persists the order and its invoice in a single
	// transaction. The invoice's internal code is derived from the order id
	// the storage layer assigns, and its amounts are copied from the order.
	// On return order.Invoice carries the created invoice.
	CreateWithInvoice(ctx context.Context, order *entity.Order) error
	// GetByID returns the order with customer, measurement and invoice
	// preloaded, or nil when it does not exist.
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Order, int64, error)
}

// EInvoiceRepository defines the interface for e-invoice data operations
type EInvoiceRepository interface {
	GetByInvoiceID(ctx context.Context, invoiceID uint) (*entity.EInvoice, error)
	// Upsert performs a single atomic conditional write keyed on the unique
	// invoice id: insert when absent, otherwise refresh the derived fields
	// (qr_data, provider_status, provider_raw_resp). The uuid column is
	// excluded from the update set so concurrent issuers converge on the
	// first-written value. After the call e carries the stored row.
	Upsert(ctx context.Context, e *entity.EInvoice) error
}
