// internal/handlers/ai.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/storymint/storymint-backend/internal/aiagent"
	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/utils"
)

type AIHandler struct {
	agent *aiagent.Agent
}

func NewAIHandler(agent *aiagent.Agent) *AIHandler {
	return &AIHandler{agent: agent}
}

type analyzeRequest struct {
	FileType string                 `json:"fileType"`
	FileName string                 `json:"fileName"`
	Metadata models.ContentMetadata `json:"metadata"`
	FileSize int64                  `json:"fileSize"`
}

// POST /ai/analyze
func (h *AIHandler) AnalyzeContent(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	analysis := h.agent.AnalyzeContent(c.Request.Context(), req.FileType, req.FileName, req.Metadata, req.FileSize)
	utils.JSONResponse(c, analysis)
}

type negotiateRequest struct {
	CreatorTerms    models.LicensingTerms  `json:"creatorTerms"`
	LicenseeRequest models.RequestedTerms  `json:"licenseeRequest"`
	ContentAnalysis models.ContentAnalysis `json:"contentAnalysis"`
}

// POST /ai/negotiate
func (h *AIHandler) NegotiateTerms(c *gin.Context) {
	var req negotiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	result := h.agent.NegotiateTerms(c.Request.Context(), req.CreatorTerms, req.LicenseeRequest, req.ContentAnalysis)
	utils.JSONResponse(c, result)
}

type contractRequest struct {
	Terms        models.LicensingTerms `json:"terms"`
	CreatorInfo  models.PartyInfo      `json:"creatorInfo"`
	LicenseeInfo models.PartyInfo      `json:"licenseeInfo"`
	ContentInfo  models.ContentInfo    `json:"contentInfo"`
	Language     string                `json:"language"`
}

// POST /ai/contract
func (h *AIHandler) GenerateContract(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	contract := h.agent.GenerateContract(c.Request.Context(), req.Terms, req.CreatorInfo, req.LicenseeInfo, req.ContentInfo, req.Language)
	utils.JSONResponse(c, gin.H{"contract": contract})
}
