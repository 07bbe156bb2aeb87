// File: handlers/message.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/message"

	"github.com/gin-gonic/gin"
)

// MessageHandler exposes conversation-thread routes.
type MessageHandler struct {
	Service message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

func senderFromContext(c *gin.Context) (id, role string, ok bool) {
	if idValue, exists := c.Get("technicianID"); exists {
		if s, valid := idValue.(string); valid && s != "" {
			return s, models.RoleTechnician, true
		}
	}
	if idValue, exists := c.Get("userID"); exists {
		if s, valid := idValue.(string); valid && s != "" {
			role := models.RoleClient
			if r, exists := c.Get("role"); exists {
				if rs, valid := r.(string); valid && rs != "" {
					role = rs
				}
			}
			return s, role, true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	return "", "", false
}

// SendHandler handles POST /messages.
func (h *MessageHandler) SendHandler(c *gin.Context) {
	senderID, senderRole, ok := senderFromContext(c)
	if !ok {
		return
	}
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	msg, err := h.Service.Send(c.Request.Context(), senderID, senderRole, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send message", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListThreadsHandler handles GET /messages/threads.
func (h *MessageHandler) ListThreadsHandler(c *gin.Context) {
	accountID, _, ok := senderFromContext(c)
	if !ok {
		return
	}
	threads, err := h.Service.ListThreads(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list threads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threads": threads})
}

// GetThreadHandler handles GET /messages/threads/:threadId.
func (h *MessageHandler) GetThreadHandler(c *gin.Context) {
	accountID, _, ok := senderFromContext(c)
	if !ok {
		return
	}
	msgs, err := h.Service.GetThread(c.Request.Context(), c.Param("threadId"), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get thread"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
