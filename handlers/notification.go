// File: handlers/notification.go
package handlers

import (
	"net/http"
	"strconv"

	"zeefreeze/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the pull-based notification feed. The account
// ID comes from whichever auth middleware guards the route.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// accountIDFromContext accepts either a technician or a user context.
func accountIDFromContext(c *gin.Context) (string, bool) {
	if idValue, exists := c.Get("technicianID"); exists {
		if id, ok := idValue.(string); ok && id != "" {
			return id, true
		}
	}
	if idValue, exists := c.Get("userID"); exists {
		if id, ok := idValue.(string); ok && id != "" {
			return id, true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	return "", false
}

// ListHandler handles GET /notifications. Optional ?unread=true filter.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	notifications, err := h.Service.GetForAccount(c.Request.Context(), accountID, unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// UnreadCountHandler handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}
	count, err := h.Service.CountUnread(c.Request.Context(), accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkReadHandler handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}
	if err := h.Service.MarkRead(c.Request.Context(), accountID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// MarkAllReadHandler handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}
	if err := h.Service.MarkAllRead(c.Request.Context(), accountID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}
