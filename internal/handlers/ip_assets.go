// internal/handlers/ip_assets.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/utils"
)

type IPAssetHandler struct {
	assetService *services.AssetService
}

func NewIPAssetHandler(assetService *services.AssetService) *IPAssetHandler {
	return &IPAssetHandler{assetService: assetService}
}

// GET /ip-assets
func (h *IPAssetHandler) GetIPAssets(c *gin.Context) {
	assets := h.assetService.ListAssets(c.Query("creatorId"))
	utils.JSONResponse(c, gin.H{"assets": assets})
}

// POST /ip-assets
func (h *IPAssetHandler) CreateIPAsset(c *gin.Context) {
	var input services.CreateIPAssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	asset := h.assetService.CreateIPAsset(input)
	utils.CreatedResponse(c, gin.H{
		"success": true,
		"asset":   asset,
	})
}

// GET /ip-assets/:id
func (h *IPAssetHandler) GetIPAsset(c *gin.Context) {
	asset, ok := h.assetService.GetAsset(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Asset not found")
		return
	}

	utils.JSONResponse(c, gin.H{"asset": asset})
}
