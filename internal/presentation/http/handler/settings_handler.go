package handler

import (
	"github.com/fahadalg/tailor-api/internal/application/service"
	"github.com/fahadalg/tailor-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles shop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the shop profile used on printed invoices and QR payloads
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetShopSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop settings retrieved successfully", settings)
}

// Update replaces the shop profile
func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		Name      string  `json:"name" binding:"required"`
		CRNumber  *string `json:"cr_number"`
		VATNumber *string `json:"vat_number"`
		Address   *string `json:"address"`
		Phone     *string `json:"phone"`
		City      *string `json:"city"`
		Country   *string `json:"country"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateShopSettings(c.Request.Context(), &service.UpdateShopSettingsInput{
		Name:      req.Name,
		CRNumber:  req.CRNumber,
		VATNumber: req.VATNumber,
		Address:   req.Address,
		Phone:     req.Phone,
		City:      req.City,
		Country:   req.Country,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop settings updated successfully", settings)
}
