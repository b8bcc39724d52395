// internal/handlers/licensing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/utils"
)

type LicensingHandler struct {
	licensingService *services.LicensingService
}

func NewLicensingHandler(licensingService *services.LicensingService) *LicensingHandler {
	return &LicensingHandler{licensingService: licensingService}
}

// POST /licensing/requests
func (h *LicensingHandler) CreateRequest(c *gin.Context) {
	var input services.CreateLicensingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	request := h.licensingService.CreateRequest(input)
	utils.CreatedResponse(c, gin.H{
		"success": true,
		"request": request,
	})
}

// POST /licensing/agreements
func (h *LicensingHandler) CreateAgreement(c *gin.Context) {
	var input services.CreateAgreementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	agreement := h.licensingService.CreateAgreement(input)
	utils.CreatedResponse(c, gin.H{
		"success":   true,
		"agreement": agreement,
	})
}

type processLicensingRequest struct {
	IPAssetID       string                `json:"ipAssetId" validate:"required"`
	LicenseeAddress string                `json:"licenseeAddress" validate:"required"`
	RequestedTerms  models.RequestedTerms `json:"requestedTerms"`
}

// POST /licensing
// Combined flow: negotiate against the asset's terms and persist a
// request only on acceptance.
func (h *LicensingHandler) ProcessLicensing(c *gin.Context) {
	var req processLicensingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	request, negotiation, err := h.licensingService.ProcessLicensing(
		c.Request.Context(), req.IPAssetID, req.LicenseeAddress, req.RequestedTerms)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			utils.NotFoundResponse(c, "Asset not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if request == nil {
		utils.JSONResponse(c, gin.H{
			"success":     false,
			"negotiation": negotiation,
		})
		return
	}

	utils.JSONResponse(c, gin.H{
		"success":     true,
		"request":     request,
		"negotiation": negotiation,
	})
}
