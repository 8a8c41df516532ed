package handler

import (
	"net/http"

	"github.com/fahadalg/tailor-api/internal/application/service"
	"github.com/fahadalg/tailor-api/internal/presentation/http/dto/response"
	"github.com/fahadalg/tailor-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer and measurement HTTP requests
type CustomerHandler struct {
	customerService    *service.CustomerService
	measurementService *service.MeasurementService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, measurementService *service.MeasurementService) *CustomerHandler {
	return &CustomerHandler{
		customerService:    customerService,
		measurementService: measurementService,
	}
}

// List returns a paginated customer listing, optionally filtered by name or phone
func (h *CustomerHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Customers retrieved successfully", result)
}

// Create registers a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get returns a single customer by ID
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update modifies an existing customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete soft-deletes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateMeasurement records a new measurement set for a customer
func (h *CustomerHandler) CreateMeasurement(c *gin.Context) {
	customerID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Label    *string  `json:"label"`
		Height   *float64 `json:"height"`
		Shoulder *float64 `json:"shoulder"`
		Chest    *float64 `json:"chest"`
		Waist    *float64 `json:"waist"`
		Sleeve   *float64 `json:"sleeve"`
		Wrist    *float64 `json:"wrist"`
		Neck     *float64 `json:"neck"`
		Hip      *float64 `json:"hip"`
		Notes    *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	measurement, err := h.measurementService.CreateMeasurement(c.Request.Context(), &service.CreateMeasurementInput{
		CustomerID: customerID,
		Label:      req.Label,
		Height:     req.Height,
		Shoulder:   req.Shoulder,
		Chest:      req.Chest,
		Waist:      req.Waist,
		Sleeve:     req.Sleeve,
		Wrist:      req.Wrist,
		Neck:       req.Neck,
		Hip:        req.Hip,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Measurement recorded successfully", measurement)
}

// ListMeasurements returns all measurement sets for a customer, newest first
func (h *CustomerHandler) ListMeasurements(c *gin.Context) {
	customerID, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	measurements, err := h.measurementService.ListMeasurements(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Measurements retrieved successfully", measurements)
}
