package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/server/http/dto"
)

// SettingsHandler manages store settings and the admin PIN check.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(view))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid settings payload")
		return
	}

	view, err := h.facade.UpdateSettings(c.Request.Context(), model.SettingsPatch{
		StoreName:     req.StoreName,
		Currency:      req.Currency,
		PricePerPhoto: req.PricePerPhoto,
		ReceiptFooter: req.ReceiptFooter,
		AdminPIN:      req.AdminPIN,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(view))
}

// VerifyPIN handles POST /api/admin/verify-pin.
func (h *SettingsHandler) VerifyPIN(c *gin.Context) {
	var req dto.VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "pin is required")
		return
	}

	ok, err := h.facade.VerifyPIN(c.Request.Context(), req.PIN)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyPINResponse{OK: ok})
}
