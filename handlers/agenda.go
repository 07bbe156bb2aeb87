// File: handlers/agenda.go
package handlers

import (
	"net/http"
	"time"

	eventRepo "zeefreeze/database/repository/event"
	"zeefreeze/services/availability"
	"zeefreeze/services/tasks"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler exposes the booked-commitments calendar. Agenda events and
// availability are separate sets; this handler returns both so the UI can
// overlay them, without ever merging them in storage.
type AgendaHandler struct {
	Events       eventRepo.EventRepository
	Availability availability.AvailabilityService
	Reminders    tasks.ReminderScheduler
}

func NewAgendaHandler(events eventRepo.EventRepository, avail availability.AvailabilityService, reminders tasks.ReminderScheduler) *AgendaHandler {
	return &AgendaHandler{Events: events, Availability: avail, Reminders: reminders}
}

// GetMyAgendaHandler handles GET /technicians/me/agenda?start=&end=.
func (h *AgendaHandler) GetMyAgendaHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}
	h.respondAgenda(c, technicianID)
}

// GetTechnicianAgendaHandler handles GET /admin/technicians/:id/agenda.
func (h *AgendaHandler) GetTechnicianAgendaHandler(c *gin.Context) {
	h.respondAgenda(c, c.Param("id"))
}

func (h *AgendaHandler) respondAgenda(c *gin.Context, technicianID string) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}

	events, err := h.Events.GetByTechnicianAndRange(c.Request.Context(), technicianID, start, end)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch agenda", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get agenda"})
		return
	}

	dto, err := h.Availability.GetSet(c.Request.Context(), technicianID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"technicianId": technicianID,
		"events":       events,
		"availability": dto.Days,
	})
}

// ScheduleMaintenanceReminderHandler handles POST /admin/reminders/maintenance.
func (h *AgendaHandler) ScheduleMaintenanceReminderHandler(c *gin.Context) {
	var body struct {
		ClientID  string `json:"clientId" binding:"required"`
		Equipment string `json:"equipment" binding:"required"`
		DueAt     string `json:"dueAt" binding:"required"` // RFC 3339
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dueAt, err := time.Parse(time.RFC3339, body.DueAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueAt, expected RFC 3339 timestamp"})
		return
	}

	if err := h.Reminders.ScheduleMaintenanceReminder(body.ClientID, body.Equipment, dueAt); err != nil {
		utils.GetLogger().Error("Failed to schedule maintenance reminder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminder", "message": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Reminder scheduled"})
}

// ScheduleVisitReminderHandler handles POST /admin/reminders/visit. Enqueues
// the evening-before reminder for an existing agenda entry.
func (h *AgendaHandler) ScheduleVisitReminderHandler(c *gin.Context) {
	var body struct {
		ReferenceID string `json:"referenceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	events, err := h.Events.GetByReferenceID(c.Request.Context(), body.ReferenceID)
	if err != nil || len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No agenda entry for that reference"})
		return
	}

	event := events[0]
	if err := h.Reminders.ScheduleVisitReminder(event.TechnicianID, event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule reminder", "message": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Reminder scheduled"})
}
