// File: handlers/bundle.go
package handlers

import (
	technicianRepo "zeefreeze/database/repository/technician"
	userRepo "zeefreeze/database/repository/user"
)

// HandlerBundle aggregates everything the route registrar needs: the
// repositories used by the auth middleware, and the per-domain handlers.
type HandlerBundle struct {
	// Repositories used by the auth middleware.
	TechnicianRepo technicianRepo.TechnicianRepository
	UserRepo       userRepo.UserRepository

	Availability  *AvailabilityHandler
	Technicians   *TechnicianHandler
	Users         *UserHandler
	Interventions *InterventionHandler
	Installations *InstallationHandler
	Invoices      *InvoiceHandler
	Notifications *NotificationHandler
	Messages      *MessageHandler
	Agenda        *AgendaHandler
	Storage       *StorageHandler
}
