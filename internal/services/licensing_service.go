// internal/services/licensing_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/aiagent"
	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/store"
	"github.com/storymint/storymint-backend/internal/utils"
)

var ErrAssetNotFound = errors.New("asset not found")

type LicensingService struct {
	store    *store.Store
	agent    *aiagent.Agent
	registry *RegistryService
	logger   *logrus.Logger
}

type CreateLicensingRequestInput struct {
	ID                 string                     `json:"id"`
	IPAssetID          string                     `json:"ipAssetId" validate:"required"`
	LicenseeAddress    string                     `json:"licenseeAddress" validate:"required"`
	RequestedTerms     models.LicensingTerms      `json:"requestedTerms"`
	Status             models.RequestStatus       `json:"status"`
	NegotiationHistory []models.NegotiationResult `json:"negotiationHistory"`
	CreatedAt          int64                      `json:"createdAt"`
}

type CreateAgreementInput struct {
	ID              string                 `json:"id"`
	RequestID       string                 `json:"requestId"`
	IPAssetID       string                 `json:"ipAssetId" validate:"required"`
	CreatorAddress  string                 `json:"creatorAddress" validate:"required"`
	LicenseeAddress string                 `json:"licenseeAddress" validate:"required"`
	Terms           models.LicensingTerms  `json:"terms"`
	ContractText    string                 `json:"contractText"`
	ContractHash    string                 `json:"contractHash"`
	Status          models.AgreementStatus `json:"status"`
	CreatedAt       int64                  `json:"createdAt"`
	ExpiresAt       int64                  `json:"expiresAt"`
}

func NewLicensingService(store *store.Store, agent *aiagent.Agent, registry *RegistryService, logger *logrus.Logger) *LicensingService {
	return &LicensingService{
		store:    store,
		agent:    agent,
		registry: registry,
		logger:   logger,
	}
}

// CreateRequest stores a licensing request as-is, defaulting status to
// pending and history to empty.
func (s *LicensingService) CreateRequest(input CreateLicensingRequestInput) models.LicensingRequest {
	request := models.LicensingRequest{
		ID:                 input.ID,
		IPAssetID:          input.IPAssetID,
		LicenseeAddress:    input.LicenseeAddress,
		RequestedTerms:     input.RequestedTerms,
		Status:             input.Status,
		NegotiationHistory: input.NegotiationHistory,
		CreatedAt:          input.CreatedAt,
	}

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	if request.NegotiationHistory == nil {
		request.NegotiationHistory = []models.NegotiationResult{}
	}
	if request.CreatedAt == 0 {
		request.CreatedAt = time.Now().UnixMilli()
	}

	return s.store.CreateLicensingRequest(request)
}

// CreateAgreement stores a finalized agreement. The contract hash is
// derived from the contract text when the client does not supply one,
// and the expiry defaults to createdAt plus the term duration.
func (s *LicensingService) CreateAgreement(input CreateAgreementInput) models.LicensingAgreement {
	agreement := models.LicensingAgreement{
		ID:              input.ID,
		RequestID:       input.RequestID,
		IPAssetID:       input.IPAssetID,
		CreatorAddress:  input.CreatorAddress,
		LicenseeAddress: input.LicenseeAddress,
		Terms:           input.Terms,
		ContractText:    input.ContractText,
		ContractHash:    input.ContractHash,
		Status:          input.Status,
		CreatedAt:       input.CreatedAt,
		ExpiresAt:       input.ExpiresAt,
	}

	if agreement.ID == "" {
		agreement.ID = uuid.New().String()
	}
	if agreement.Status == "" {
		agreement.Status = models.AgreementStatusActive
	}
	if agreement.CreatedAt == 0 {
		agreement.CreatedAt = time.Now().UnixMilli()
	}
	if agreement.ContractHash == "" && agreement.ContractText != "" {
		agreement.ContractHash = utils.HashString(agreement.ContractText)
	}
	if agreement.ExpiresAt == 0 && agreement.Terms.Duration > 0 {
		agreement.ExpiresAt = agreement.CreatedAt + int64(agreement.Terms.Duration)*24*60*60*1000
	}

	licenseID := s.registry.CreateLicenseAgreement(agreement.IPAssetID, agreement.LicenseeAddress, agreement.Terms)
	s.logger.WithFields(logrus.Fields{
		"agreement_id": agreement.ID,
		"license_id":   licenseID,
	}).Info("licensing agreement recorded")

	return s.store.CreateLicensingAgreement(agreement)
}

// ProcessLicensing runs the combined flow: look up the asset, negotiate
// against its terms, and persist an accepted request when the agent
// accepts. A rejection returns the negotiation result alone.
func (s *LicensingService) ProcessLicensing(ctx context.Context, ipAssetID, licenseeAddress string, requested models.RequestedTerms) (*models.LicensingRequest, models.NegotiationResult, error) {
	asset, ok := s.store.GetIPAsset(ipAssetID)
	if !ok {
		return nil, models.NegotiationResult{}, ErrAssetNotFound
	}

	negotiation := s.agent.NegotiateTerms(ctx, asset.LicensingTerms, requested, asset.Analysis)

	if !negotiation.Accepted {
		s.logger.WithFields(logrus.Fields{
			"ip_asset_id": ipAssetID,
			"licensee":    licenseeAddress,
		}).Info("licensing request rejected by negotiation")
		return nil, negotiation, nil
	}

	request := s.store.CreateLicensingRequest(models.LicensingRequest{
		ID:                 uuid.New().String(),
		IPAssetID:          ipAssetID,
		LicenseeAddress:    licenseeAddress,
		RequestedTerms:     negotiation.FinalTerms,
		Status:             models.RequestStatusAccepted,
		NegotiationHistory: []models.NegotiationResult{negotiation},
		CreatedAt:          time.Now().UnixMilli(),
	})

	s.logger.WithFields(logrus.Fields{
		"request_id":  request.ID,
		"ip_asset_id": ipAssetID,
		"licensee":    licenseeAddress,
	}).Info("licensing request accepted")

	return &request, negotiation, nil
}

func (s *LicensingService) GetRequest(id string) (models.LicensingRequest, bool) {
	return s.store.GetLicensingRequest(id)
}

func (s *LicensingService) GetAgreement(id string) (models.LicensingAgreement, bool) {
	return s.store.GetLicensingAgreement(id)
}

// UpdateRequest merges the given fields into a stored request.
func (s *LicensingService) UpdateRequest(id string, update models.LicensingRequestUpdate) (models.LicensingRequest, bool) {
	return s.store.UpdateLicensingRequest(id, update)
}
