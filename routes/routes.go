// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"zeefreeze/handlers"
	"zeefreeze/middleware"
	"zeefreeze/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public signup/signin endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/technicians/register", hb.Technicians.RegisterHandler)
		auth.POST("/technicians/signin", hb.Technicians.SignInHandler)
		auth.POST("/users/register", hb.Users.RegisterHandler)
		auth.POST("/users/signin", hb.Users.SignInHandler)
		auth.POST("/users/forgot-password", hb.Users.ForgotPasswordHandler)
		auth.POST("/users/reset-password", hb.Users.ResetPasswordHandler)
	}
}

// RegisterTechnicianRoutes registers the technician self-service surface,
// including the availability calendar.
func RegisterTechnicianRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/technicians/me")
	api.Use(middleware.TechnicianAuthMiddleware(hb.TechnicianRepo))
	{
		api.GET("", hb.Technicians.GetMeHandler)
		api.PATCH("", hb.Technicians.UpdateMeHandler)
		api.POST("/signout", hb.Technicians.SignOutHandler)
		api.PUT("/fcm-token", hb.Technicians.UpdateFCMTokenHandler)

		// Availability calendar.
		api.GET("/availability", hb.Availability.GetAvailabilityHandler)
		api.PUT("/availability", hb.Availability.ReplaceAvailabilityHandler)
		api.POST("/availability/toggle-slot", hb.Availability.ToggleSlotHandler)
		api.POST("/availability/toggle-day", hb.Availability.ToggleDayHandler)

		// Agenda (booked commitments + availability overlay).
		api.GET("/agenda", hb.Agenda.GetMyAgendaHandler)

		// Assigned work.
		api.GET("/interventions", hb.Interventions.ListAssignedHandler)
		api.POST("/interventions/:id/start", hb.Interventions.StartHandler)
		api.POST("/interventions/:id/complete", hb.Interventions.CompleteHandler)
		api.GET("/installations", hb.Installations.ListAssignedHandler)
		api.POST("/installations/:id/done", hb.Installations.MarkDoneHandler)

		// Report attachments.
		api.POST("/reports", hb.Storage.UploadReportHandler)

		// Notifications and messaging.
		api.GET("/notifications", hb.Notifications.ListHandler)
		api.GET("/notifications/unread-count", hb.Notifications.UnreadCountHandler)
		api.POST("/notifications/:id/read", hb.Notifications.MarkReadHandler)
		api.POST("/notifications/read-all", hb.Notifications.MarkAllReadHandler)
		api.POST("/messages", hb.Messages.SendHandler)
		api.GET("/messages/threads", hb.Messages.ListThreadsHandler)
		api.GET("/messages/threads/:threadId", hb.Messages.GetThreadHandler)
	}
}

// RegisterUserRoutes registers the client self-service surface.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users/me")
	api.Use(middleware.UserAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Users.GetMeHandler)
		api.PATCH("", hb.Users.UpdateMeHandler)
		api.POST("/signout", hb.Users.SignOutHandler)
		api.PUT("/fcm-token", hb.Users.UpdateFCMTokenHandler)

		// Jobs.
		api.POST("/interventions", hb.Interventions.CreateHandler)
		api.GET("/interventions", hb.Interventions.ListMineHandler)
		api.GET("/interventions/:id", hb.Interventions.GetByIDHandler)
		api.POST("/installations", hb.Installations.CreateHandler)
		api.GET("/installations", hb.Installations.ListMineHandler)
		api.GET("/installations/:id", hb.Installations.GetByIDHandler)

		// Billing.
		api.GET("/invoices", hb.Invoices.ListMineHandler)
		api.GET("/invoices/:id", hb.Invoices.GetByIDHandler)
		api.POST("/invoices/:id/pay", hb.Invoices.PayHandler)
		api.GET("/invoices/:id/payment-status", hb.Invoices.PaymentStatusHandler)

		// Notifications and messaging.
		api.GET("/notifications", hb.Notifications.ListHandler)
		api.GET("/notifications/unread-count", hb.Notifications.UnreadCountHandler)
		api.POST("/notifications/:id/read", hb.Notifications.MarkReadHandler)
		api.POST("/notifications/read-all", hb.Notifications.MarkAllReadHandler)
		api.POST("/messages", hb.Messages.SendHandler)
		api.GET("/messages/threads", hb.Messages.ListThreadsHandler)
		api.GET("/messages/threads/:threadId", hb.Messages.GetThreadHandler)
	}
}

// RegisterAdminRoutes registers the back-office surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.UserAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
	{
		// Accounts.
		api.GET("/users", hb.Users.GetUsersHandler)
		api.GET("/users/:id", hb.Users.GetUserByIDHandler)
		api.DELETE("/users/:id", hb.Users.DeleteUserHandler)
		api.GET("/technicians", hb.Technicians.GetTechniciansHandler)
		api.GET("/technicians/match", hb.Technicians.MatchTechniciansHandler)
		api.GET("/technicians/:id", hb.Technicians.GetTechnicianByIDHandler)
		api.PATCH("/technicians/:id", hb.Technicians.UpdateTechnicianHandler)
		api.DELETE("/technicians/:id", hb.Technicians.DeleteTechnicianHandler)

		// Availability, read-only.
		api.GET("/technicians/:id/availability", hb.Availability.GetTechnicianAvailabilityHandler)
		api.GET("/technicians/:id/availability/slot-open", hb.Availability.SlotOpenHandler)
		api.GET("/technicians/:id/agenda", hb.Agenda.GetTechnicianAgendaHandler)

		// Dispatch.
		api.GET("/interventions", hb.Interventions.ListAllHandler)
		api.POST("/interventions/:id/assign", hb.Interventions.AssignHandler)
		api.POST("/interventions/:id/cancel", hb.Interventions.CancelHandler)
		api.DELETE("/interventions/:id", hb.Interventions.DeleteHandler)
		api.GET("/installations", hb.Installations.ListAllHandler)
		api.POST("/installations/:id/schedule", hb.Installations.ScheduleHandler)
		api.POST("/installations/:id/cancel", hb.Installations.CancelHandler)
		api.DELETE("/installations/:id", hb.Installations.DeleteHandler)

		// Billing.
		api.POST("/invoices", hb.Invoices.CreateHandler)
		api.GET("/invoices", hb.Invoices.ListAllHandler)
		api.DELETE("/invoices/:id", hb.Invoices.DeleteHandler)

		// Reminders and attachments.
		api.POST("/reminders/maintenance", hb.Agenda.ScheduleMaintenanceReminderHandler)
		api.POST("/reminders/visit", hb.Agenda.ScheduleVisitReminderHandler)
		api.DELETE("/attachments/:publicId", hb.Storage.DeleteAttachmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTechnicianRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
