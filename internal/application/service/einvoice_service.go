package service

import (
	"context"
	"errors"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/enum"
	"github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/apperror"
	"github.com/fahadalg/tailor-api/pkg/zatca"
	"github.com/google/uuid"
)

// EInvoiceService issues the local e-invoice record for an order. Issuance
// is idempotent: the first call creates the record and assigns its uuid,
// every later call refreshes the QR payload and status in place while the
// uuid stays fixed for the lifetime of the record.
type EInvoiceService struct {
	orderRepo    repository.OrderRepository
	einvoiceRepo repository.EInvoiceRepository
	settingsRepo repository.SettingsRepository
}

// NewEInvoiceService creates a new e-invoice service
func NewEInvoiceService(
	orderRepo repository.OrderRepository,
	einvoiceRepo repository.EInvoiceRepository,
	settingsRepo repository.SettingsRepository,
) *EInvoiceService {
	return &EInvoiceService{
		orderRepo:    orderRepo,
		einvoiceRepo: einvoiceRepo,
		settingsRepo: settingsRepo,
	}
}

// OrderSummary is the minimal order view returned with an issuance
type OrderSummary struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customer_name"`
}

// ShopSummary is the minimal shop view returned with an issuance
type ShopSummary struct {
	Name      string  `json:"name"`
	VATNumber *string `json:"vat_number,omitempty"`
}

// EInvoiceResult bundles everything a client needs after issuance
type EInvoiceResult struct {
	Invoice  *entity.Invoice  `json:"invoice"`
	Order    OrderSummary     `json:"order"`
	Shop     ShopSummary      `json:"shop"`
	EInvoice *entity.EInvoice `json:"einvoice"`
}

// Issue creates or refreshes the e-invoice for the given order.
//
// The invoice and customer checks are defensive: both are created with
// the order, so their absence means fixture damage or a storage bug, and
// issuance must fail cleanly rather than emit a payload with holes.
func (s *EInvoiceService) Issue(ctx context.Context, orderID uint) (*EInvoiceResult, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	if order.Invoice == nil {
		return nil, apperror.ErrNoInvoiceForOrder
	}
	if order.Customer == nil {
		return nil, apperror.ErrNoCustomerForOrder
	}
	invoice := order.Invoice

	// uuid assignment happens at most once per invoice
	existing, err := s.einvoiceRepo.GetByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	einvoiceUUID := uuid.New().String()
	if existing != nil {
		einvoiceUUID = existing.UUID
	}

	shop, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		defaults := entity.DefaultShopSettings()
		shop = &defaults
	}

	vatNumber := ""
	if shop.VATNumber != nil {
		vatNumber = *shop.VATNumber
	}

	qrData, err := zatca.EncodeQR(zatca.SimplifiedInvoice{
		SellerName: shop.Name,
		VATNumber:  vatNumber,
		IssuedAt:   invoice.IssueDate,
		Total:      invoice.TotalAmount,
		VAT:        invoice.VatAmount,
	})
	if err != nil {
		var tooLong *zatca.ErrFieldTooLong
		if errors.As(err, &tooLong) {
			return nil, apperror.ErrEncodingOverflow
		}
		return nil, err
	}

	einvoice := &entity.EInvoice{
		InvoiceID:       invoice.ID,
		UUID:            einvoiceUUID,
		QRData:          qrData,
		ProviderStatus:  enum.ProviderStatusLocalIssued,
		ProviderRawResp: nil, // cleared on every issuance
	}
	if err := s.einvoiceRepo.Upsert(ctx, einvoice); err != nil {
		return nil, err
	}

	return &EInvoiceResult{
		Invoice: invoice,
		Order: OrderSummary{
			ID:           order.ID,
			CustomerName: order.Customer.Name,
		},
		Shop: ShopSummary{
			Name:      shop.Name,
			VATNumber: shop.VATNumber,
		},
		EInvoice: einvoice,
	}, nil
}
