// File: handlers/technician.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/technician"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TechnicianHandler exposes technician account routes.
type TechnicianHandler struct {
	Service technician.TechnicianService
}

func NewTechnicianHandler(svc technician.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{Service: svc}
}

// RegisterHandler handles POST /auth/technicians/register.
func (h *TechnicianHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var reg models.TechnicianRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Error("Invalid technician registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	tech, err := h.Service.Register(reg)
	if err != nil {
		logger.Error("Failed to register technician", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Registration failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tech)
}

// SignInHandler handles POST /auth/technicians/signin.
func (h *TechnicianHandler) SignInHandler(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	tech, err := h.Service.Authenticate(creds.Email, creds.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// SignOutHandler handles POST /technicians/me/signout.
func (h *TechnicianHandler) SignOutHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	if err := h.Service.RevokeAuthToken(technicianID); err != nil {
		utils.GetLogger().Error("Failed to revoke technician token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetMeHandler handles GET /technicians/me.
func (h *TechnicianHandler) GetMeHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	tech, err := h.Service.GetByID(c.Request.Context(), technicianID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// UpdateMeHandler handles PATCH /technicians/me.
func (h *TechnicianHandler) UpdateMeHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	tech, err := h.Service.Update(c.Request.Context(), technicianID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// UpdateFCMTokenHandler handles PUT /technicians/me/fcm-token.
func (h *TechnicianHandler) UpdateFCMTokenHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	var body struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fcm token"})
		return
	}
	if err := h.Service.UpdateFCMToken(c.Request.Context(), technicianID, body.FCMToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fcm token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}

// GetTechniciansHandler handles GET /admin/technicians.
func (h *TechnicianHandler) GetTechniciansHandler(c *gin.Context) {
	techs, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to retrieve technicians", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get technicians"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"technicians": techs})
}

// GetTechnicianByIDHandler handles GET /admin/technicians/:id.
func (h *TechnicianHandler) GetTechnicianByIDHandler(c *gin.Context) {
	id := c.Param("id")
	tech, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// UpdateTechnicianHandler handles PATCH /admin/technicians/:id. Admins may
// change status (activate/suspend), skills and zone.
func (h *TechnicianHandler) UpdateTechnicianHandler(c *gin.Context) {
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	tech, err := h.Service.Update(c.Request.Context(), id, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Update failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// DeleteTechnicianHandler handles DELETE /admin/technicians/:id.
func (h *TechnicianHandler) DeleteTechnicianHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete technician", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete technician"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technician deleted"})
}

// MatchTechniciansHandler handles GET /admin/technicians/match.
// Query params: skill, start, end.
func (h *TechnicianHandler) MatchTechniciansHandler(c *gin.Context) {
	skill := c.Query("skill")
	start := c.Query("start")
	end := c.Query("end")

	matches, err := h.Service.MatchBySkill(c.Request.Context(), skill, start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Match failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
