package handler

import (
	"net/http"
	"time"

	"github.com/fahadalg/tailor-api/internal/application/service"
	"github.com/fahadalg/tailor-api/internal/presentation/http/dto/response"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler handles order, print and e-invoice HTTP requests
type OrderHandler struct {
	orderService    *service.OrderService
	einvoiceService *service.EInvoiceService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, einvoiceService *service.EInvoiceService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		einvoiceService: einvoiceService,
	}
}

// List returns a paginated order listing, newest first
func (h *OrderHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved successfully", result)
}

// Create creates a new order together with its internal invoice
func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID     uint            `json:"customer_id" binding:"required"`
		MeasurementID  *uint           `json:"measurement_id"`
		FabricType     *string         `json:"fabric_type"`
		PriceBeforeVat decimal.Decimal `json:"price_before_vat" binding:"required"`
		DeliveryDate   *time.Time      `json:"delivery_date"`
		Notes          *string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		CustomerID:     req.CustomerID,
		MeasurementID:  req.MeasurementID,
		FabricType:     req.FabricType,
		PriceBeforeVat: req.PriceBeforeVat,
		DeliveryDate:   req.DeliveryDate,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get returns a single order with its customer, measurement and invoice
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Print returns the customer invoice and tailor slip payloads for an order
func (h *OrderHandler) Print(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	data, err := h.orderService.BuildPrintData(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Print data generated successfully", data)
}

// IssueEInvoice issues, or re-issues, the compliance e-invoice for an order
func (h *OrderHandler) IssueEInvoice(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.einvoiceService.Issue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "E-invoice issued successfully", result)
}
