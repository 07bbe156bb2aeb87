// File: handlers/availability.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/availability"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability model over HTTP. All mutating
// routes act on the authenticated technician's own set.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func technicianIDFromContext(c *gin.Context) (string, bool) {
	idValue, exists := c.Get("technicianID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Technician not authenticated"})
		return "", false
	}
	id, ok := idValue.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid technician ID in context"})
		return "", false
	}
	return id, true
}

func respondAvailabilityError(c *gin.Context, err error) {
	switch {
	case availability.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
	case availability.IsStorageFailure(err):
		utils.GetLogger().Error("Availability storage failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist availability", "message": "please retry"})
	default:
		utils.GetLogger().Error("Availability operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability operation failed"})
	}
}

// GetAvailabilityHandler handles GET /technicians/me/availability.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}

	dto, err := h.Service.GetSet(c.Request.Context(), technicianID)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ReplaceAvailabilityHandler handles PUT /technicians/me/availability.
func (h *AvailabilityHandler) ReplaceAvailabilityHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}

	var req models.ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dto, err := h.Service.ReplaceSet(c.Request.Context(), technicianID, req.Days)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ToggleSlotHandler handles POST /technicians/me/availability/toggle-slot.
func (h *AvailabilityHandler) ToggleSlotHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}

	var req models.ToggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dto, err := h.Service.ToggleSlot(c.Request.Context(), technicianID, req.Date, req.Slot)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ToggleDayHandler handles POST /technicians/me/availability/toggle-day.
func (h *AvailabilityHandler) ToggleDayHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}

	var req models.ToggleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dto, err := h.Service.ToggleDay(c.Request.Context(), technicianID, req.Date)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// GetTechnicianAvailabilityHandler handles GET /admin/technicians/:id/availability.
// Admin read of any technician's set.
func (h *AvailabilityHandler) GetTechnicianAvailabilityHandler(c *gin.Context) {
	technicianID := c.Param("id")

	dto, err := h.Service.GetSet(c.Request.Context(), technicianID)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// SlotOpenHandler handles GET /admin/technicians/:id/availability/slot-open.
// Query params: date, slot. Answers the booking flow's read-only question.
func (h *AvailabilityHandler) SlotOpenHandler(c *gin.Context) {
	technicianID := c.Param("id")
	date := c.Query("date")
	slot := c.Query("slot")

	open, err := h.Service.SlotOpen(c.Request.Context(), technicianID, date, slot)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"technicianId": technicianID, "date": date, "slot": slot, "open": open})
}
