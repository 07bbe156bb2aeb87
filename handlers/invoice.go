// File: handlers/invoice.go
package handlers

import (
	"net/http"

	"zeefreeze/models"
	"zeefreeze/services/invoice"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes billing routes.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// CreateHandler handles POST /admin/invoices.
func (h *InvoiceHandler) CreateHandler(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	inv, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to create invoice", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create invoice", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListAllHandler handles GET /admin/invoices.
func (h *InvoiceHandler) ListAllHandler(c *gin.Context) {
	invoices, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// ListMineHandler handles GET /invoices (client: own invoices).
func (h *InvoiceHandler) ListMineHandler(c *gin.Context) {
	clientID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	invoices, err := h.Service.GetByClientID(c.Request.Context(), clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// GetByIDHandler handles GET /invoices/:id.
func (h *InvoiceHandler) GetByIDHandler(c *gin.Context) {
	inv, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// PayHandler handles POST /invoices/:id/pay. Returns the client secret the
// app uses to confirm the payment with the provider.
func (h *InvoiceHandler) PayHandler(c *gin.Context) {
	result, err := h.Service.InitiatePayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("Failed to initiate payment", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to initiate payment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentStatusHandler handles GET /invoices/:id/payment-status.
func (h *InvoiceHandler) PaymentStatusHandler(c *gin.Context) {
	inv, err := h.Service.RefreshPaymentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh payment status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": inv.ID, "status": inv.Status})
}

// DeleteHandler handles DELETE /admin/invoices/:id.
func (h *InvoiceHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to delete invoice", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}
