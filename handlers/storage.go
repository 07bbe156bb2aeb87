// File: handlers/storage.go
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"zeefreeze/services/storage"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler exposes report-attachment upload routes.
type StorageHandler struct {
	Service storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadReportHandler handles POST /technicians/me/reports (multipart form,
// field "file"). Returns the stored file's URL for attaching to a job.
func (h *StorageHandler) UploadReportHandler(c *gin.Context) {
	technicianID, ok := technicianIDFromContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file in request"})
		return
	}

	// Stage the upload in a temp file; Cloudinary reads from a path.
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("report-%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		utils.GetLogger().Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.UploadFile(c.Request.Context(), tmpPath, "reports/"+technicianID)
	if err != nil {
		utils.GetLogger().Error("Failed to upload report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload report"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteAttachmentHandler handles DELETE /admin/attachments/:publicId.
func (h *StorageHandler) DeleteAttachmentHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if err := h.Service.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.GetLogger().Error("Failed to delete attachment", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attachment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted"})
}
