// internal/handlers/royalty.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/aiagent"
	"github.com/storymint/storymint-backend/internal/config"
	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/utils"
)

type RoyaltyHandler struct {
	agent  *aiagent.Agent
	config *config.Config
}

func NewRoyaltyHandler(agent *aiagent.Agent, config *config.Config) *RoyaltyHandler {
	return &RoyaltyHandler{
		agent:  agent,
		config: config,
	}
}

type royaltySplitRequest struct {
	TotalRevenue float64               `json:"totalRevenue" validate:"required"`
	Terms        models.LicensingTerms `json:"terms"`
	CreatorShare *float64              `json:"creatorShare"`
	PlatformFee  *float64              `json:"platformFee"`
}

// POST /royalties/split
// Shares fall back to the configured platform defaults when omitted.
func (h *RoyaltyHandler) SplitRoyalties(c *gin.Context) {
	var req royaltySplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.BadRequestResponse(c, validationErrors[0].Message)
		return
	}

	creatorShare := h.config.Royalty.CreatorShare
	if req.CreatorShare != nil {
		creatorShare = *req.CreatorShare
	}
	platformFee := h.config.Royalty.PlatformFee
	if req.PlatformFee != nil {
		platformFee = *req.PlatformFee
	}

	shares := h.agent.CalculateRoyaltySplit(req.TotalRevenue, req.Terms, creatorShare, platformFee)
	utils.JSONResponse(c, shares)
}
