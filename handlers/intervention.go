// File: handlers/intervention.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/availability"
	"zeefreeze/services/intervention"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InterventionHandler exposes intervention routes for clients, technicians
// and the back office.
type InterventionHandler struct {
	Service intervention.InterventionService
}

func NewInterventionHandler(svc intervention.InterventionService) *InterventionHandler {
	return &InterventionHandler{Service: svc}
}

// CreateHandler handles POST /interventions (client).
func (h *InterventionHandler) CreateHandler(c *gin.Context) {
	clientID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req models.CreateInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	iv, err := h.Service.Create(c.Request.Context(), clientID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create intervention", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intervention"})
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// ListMineHandler handles GET /interventions (client: own jobs).
func (h *InterventionHandler) ListMineHandler(c *gin.Context) {
	clientID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	items, err := h.Service.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get interventions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interventions": items})
}

// ListAssignedHandler handles GET /technicians/me/interventions.
func (h *InterventionHandler) ListAssignedHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	items, err := h.Service.GetByTechnicianID(c.Request.Context(), technicianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get interventions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interventions": items})
}

// GetByIDHandler handles GET /interventions/:id.
func (h *InterventionHandler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")
	iv, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intervention not found"})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// ListAllHandler handles GET /admin/interventions. Optional ?status= filter.
func (h *InterventionHandler) ListAllHandler(c *gin.Context) {
	var (
		items []models.Intervention
		err   error
	)
	if status := c.Query("status"); status != "" {
		items, err = h.Service.GetByStatus(c.Request.Context(), status)
	} else {
		items, err = h.Service.GetAll(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get interventions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interventions": items})
}

// AssignHandler handles POST /admin/interventions/:id/assign.
func (h *InterventionHandler) AssignHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.AssignInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	iv, err := h.Service.Assign(c.Request.Context(), id, req)
	if err != nil {
		if availability.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "Assignment failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// StartHandler handles POST /technicians/me/interventions/:id/start.
func (h *InterventionHandler) StartHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	iv, err := h.Service.Start(c.Request.Context(), c.Param("id"), technicianID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to start intervention", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// CompleteHandler handles POST /technicians/me/interventions/:id/complete.
func (h *InterventionHandler) CompleteHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	var body struct {
		ReportURL string `json:"reportUrl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	iv, err := h.Service.Complete(c.Request.Context(), c.Param("id"), technicianID, body.ReportURL)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to complete intervention", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// CancelHandler handles POST /admin/interventions/:id/cancel.
func (h *InterventionHandler) CancelHandler(c *gin.Context) {
	iv, err := h.Service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to cancel intervention", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, iv)
}

// DeleteHandler handles DELETE /admin/interventions/:id.
func (h *InterventionHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to delete intervention", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Intervention deleted"})
}
