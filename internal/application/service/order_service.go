package service

import (
	"context"
	"errors"
	"time"

	"github.com/fahadalg/tailor-api/internal/domain/entity"
	"github.com/fahadalg/tailor-api/internal/domain/repository"
	"github.com/fahadalg/tailor-api/pkg/apperror"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"github.com/fahadalg/tailor-api/pkg/pricing"
	"github.com/shopspring/decimal"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo       repository.OrderRepository
	customerRepo    repository.CustomerRepository
	measurementRepo repository.MeasurementRepository
	settingsRepo    repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	measurementRepo repository.MeasurementRepository,
	settingsRepo repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		measurementRepo: measurementRepo,
		settingsRepo:    settingsRepo,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID     uint
	MeasurementID  *uint
	FabricType     *string
	PriceBeforeVat decimal.Decimal
	DeliveryDate   *time.Time
	Notes          *string
}

// CreateOrder creates a new order together with its internal invoice.
// Amounts are validated and derived before anything is persisted; a bad
// price never reaches storage.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	vat, total, err := pricing.Compute(input.PriceBeforeVat)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidAmount) {
			return nil, apperror.ErrInvalidAmount
		}
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.MeasurementID != nil {
		measurement, err := s.measurementRepo.GetByID(ctx, *input.MeasurementID)
		if err != nil {
			return nil, err
		}
		if measurement == nil {
			return nil, apperror.NewNotFoundError("Measurement")
		}
	}

	order := &entity.Order{
		CustomerID:     input.CustomerID,
		MeasurementID:  input.MeasurementID,
		FabricType:     input.FabricType,
		PriceBeforeVat: input.PriceBeforeVat.Round(2),
		VatAmount:      vat,
		TotalAmount:    total,
		DeliveryDate:   input.DeliveryDate,
		Notes:          input.Notes,
	}

	if err := s.orderRepo.CreateWithInvoice(ctx, order); err != nil {
		return nil, err
	}

	order.Customer = customer
	return order, nil
}

// GetOrder retrieves an order with its customer, measurement and invoice
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders lists orders with pagination
func (s *OrderService) ListOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// PrintShop is the shop block on a printed invoice
type PrintShop struct {
	Name      string  `json:"name"`
	CRNumber  *string `json:"cr_number,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// PrintLineItem is one line of the printed invoice
type PrintLineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VatAmount   decimal.Decimal `json:"vat_amount"`
	Total       decimal.Decimal `json:"total"`
}

// CustomerInvoicePrint is the customer-facing invoice payload
type CustomerInvoicePrint struct {
	Shop    PrintShop `json:"shop"`
	Invoice struct {
		InternalCode string    `json:"internal_code"`
		IssueDate    time.Time `json:"issue_date"`
	} `json:"invoice"`
	Customer struct {
		Name  string  `json:"name"`
		Phone *string `json:"phone,omitempty"`
	} `json:"customer"`
	Order struct {
		ID           uint       `json:"id"`
		DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	} `json:"order"`
	Items  []PrintLineItem `json:"items"`
	Totals struct {
		Subtotal    decimal.Decimal `json:"subtotal"`
		VatAmount   decimal.Decimal `json:"vat_amount"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	} `json:"totals"`
}

// TailorSlipPrint is the workshop slip with measurements
type TailorSlipPrint struct {
	ShopName     string              `json:"shop_name"`
	OrderID      uint                `json:"order_id"`
	InvoiceCode  string              `json:"invoice_code"`
	CustomerName string              `json:"customer_name"`
	FabricType   *string             `json:"fabric_type,omitempty"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	Measurements *entity.Measurement `json:"measurements"`
}

// PrintData bundles both print payloads for an order
type PrintData struct {
	CustomerInvoice CustomerInvoicePrint `json:"customer_invoice"`
	TailorSlip      TailorSlipPrint      `json:"tailor_slip"`
}

// defaultItemDescription is used when the order has no fabric description.
const defaultItemDescription = "تفصيل ثوب رجالي"

// BuildPrintData assembles the customer invoice and tailor slip payloads
// for an order. Requires the order's invoice and customer to exist.
func (s *OrderService) BuildPrintData(ctx context.Context, orderID uint) (*PrintData, error) {
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

	shop, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		defaults := entity.DefaultShopSettings()
		shop = &defaults
	}

	inv := order.Invoice
	description := defaultItemDescription
	if order.FabricType != nil && *order.FabricType != "" {
		description = *order.FabricType
	}

	data := &PrintData{}

	data.CustomerInvoice.Shop = PrintShop{
		Name:      shop.Name,
		CRNumber:  shop.CRNumber,
		VATNumber: shop.VATNumber,
		Address:   shop.Address,
		Phone:     shop.Phone,
	}
	data.CustomerInvoice.Invoice.InternalCode = inv.InternalCode
	data.CustomerInvoice.Invoice.IssueDate = inv.IssueDate
	data.CustomerInvoice.Customer.Name = order.Customer.Name
	data.CustomerInvoice.Customer.Phone = order.Customer.Phone
	data.CustomerInvoice.Order.ID = order.ID
	data.CustomerInvoice.Order.DeliveryDate = order.DeliveryDate
	data.CustomerInvoice.Items = []PrintLineItem{{
		Description: description,
		Quantity:    1,
		UnitPrice:   inv.Subtotal,
		VatAmount:   inv.VatAmount,
		Total:       inv.TotalAmount,
	}}
	data.CustomerInvoice.Totals.Subtotal = inv.Subtotal
	data.CustomerInvoice.Totals.VatAmount = inv.VatAmount
	data.CustomerInvoice.Totals.TotalAmount = inv.TotalAmount

	data.TailorSlip = TailorSlipPrint{
		ShopName:     shop.Name,
		OrderID:      order.ID,
		InvoiceCode:  inv.InternalCode,
		CustomerName: order.Customer.Name,
		FabricType:   order.FabricType,
		DeliveryDate: order.DeliveryDate,
		Notes:        order.Notes,
		Measurements: order.Measurement,
	}

	return data, nil
}
