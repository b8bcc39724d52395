// internal/handlers/creators.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/utils"
)

type CreatorHandler struct {
	creatorService *services.CreatorService
}

func NewCreatorHandler(creatorService *services.CreatorService) *CreatorHandler {
	return &CreatorHandler{creatorService: creatorService}
}

// GET /creators?address=
// The creator key is present either way; an unknown address maps to null
// so the UI can branch on it.
func (h *CreatorHandler) GetCreatorByAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.BadRequestResponse(c, "address query parameter is required")
		return
	}

	creator, ok := h.creatorService.GetCreatorByAddress(address)
	if !ok {
		utils.JSONResponse(c, gin.H{"creator": nil})
		return
	}

	utils.JSONResponse(c, gin.H{"creator": creator})
}

// POST /creators
func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var input services.CreateCreatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	creator := h.creatorService.CreateCreator(input)
	utils.CreatedResponse(c, gin.H{"creator": creator})
}

// GET /creators/:address
func (h *CreatorHandler) GetCreator(c *gin.Context) {
	creator, ok := h.creatorService.ResolveCreator(c.Param("address"))
	if !ok {
		utils.JSONResponse(c, gin.H{"creator": nil})
		return
	}

	utils.JSONResponse(c, gin.H{"creator": creator})
}

// GET /creators/:address/assets
func (h *CreatorHandler) GetCreatorAssets(c *gin.Context) {
	assets := h.creatorService.AssetsForCreator(c.Param("address"))
	utils.JSONResponse(c, gin.H{"assets": assets})
}

// GET /creators/:address/requests
func (h *CreatorHandler) GetCreatorRequests(c *gin.Context) {
	requests := h.creatorService.RequestsForCreator(c.Param("address"))
	utils.JSONResponse(c, gin.H{"requests": requests})
}

// GET /creators/:address/agreements
func (h *CreatorHandler) GetCreatorAgreements(c *gin.Context) {
	agreements := h.creatorService.AgreementsForCreator(c.Param("address"))
	utils.JSONResponse(c, gin.H{"agreements": agreements})
}
