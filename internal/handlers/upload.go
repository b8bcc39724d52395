// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /upload
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "file is required")
		return
	}
	defer file.Close()

	result, err := h.storageService.Upload(file, header)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.JSONResponse(c, gin.H{
		"success":  true,
		"fileUrl":  result.FileURL,
		"fileName": result.FileName,
		"fileSize": result.FileSize,
		"fileType": result.FileType,
	})
}
