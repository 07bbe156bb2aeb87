// File: handlers/installation.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/availability"
	"zeefreeze/services/installation"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InstallationHandler exposes installation routes.
type InstallationHandler struct {
	Service installation.InstallationService
}

func NewInstallationHandler(svc installation.InstallationService) *InstallationHandler {
	return &InstallationHandler{Service: svc}
}

// CreateHandler handles POST /installations (client).
func (h *InstallationHandler) CreateHandler(c *gin.Context) {
	clientID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req models.CreateInstallationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	inst, err := h.Service.Create(c.Request.Context(), clientID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create installation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create installation"})
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// ListMineHandler handles GET /installations (client: own jobs).
func (h *InstallationHandler) ListMineHandler(c *gin.Context) {
	clientID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	items, err := h.Service.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get installations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"installations": items})
}

// ListAssignedHandler handles GET /technicians/me/installations.
func (h *InstallationHandler) ListAssignedHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	items, err := h.Service.GetByTechnicianID(c.Request.Context(), technicianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get installations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"installations": items})
}

// GetByIDHandler handles GET /installations/:id.
func (h *InstallationHandler) GetByIDHandler(c *gin.Context) {
	inst, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Installation not found"})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// ListAllHandler handles GET /admin/installations.
func (h *InstallationHandler) ListAllHandler(c *gin.Context) {
	items, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get installations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"installations": items})
}

// ScheduleHandler handles POST /admin/installations/:id/schedule.
func (h *InstallationHandler) ScheduleHandler(c *gin.Context) {
	var body struct {
		TechnicianID string `json:"technicianId" binding:"required"`
		Date         string `json:"date" binding:"required"`
		Slot         string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	inst, err := h.Service.Schedule(c.Request.Context(), c.Param("id"), body.TechnicianID, body.Date, body.Slot)
	if err != nil {
		if availability.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Scheduling failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// MarkDoneHandler handles POST /technicians/me/installations/:id/done.
func (h *InstallationHandler) MarkDoneHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	inst, err := h.Service.MarkDone(c.Request.Context(), c.Param("id"), technicianID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to complete installation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// CancelHandler handles POST /admin/installations/:id/cancel.
func (h *InstallationHandler) CancelHandler(c *gin.Context) {
	inst, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to cancel installation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// DeleteHandler handles DELETE /admin/installations/:id.
func (h *InstallationHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to delete installation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Installation deleted"})
}
