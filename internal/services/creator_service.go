// internal/services/creator_service.go
package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/store"
)

type CreatorService struct {
	store  *store.Store
	logger *logrus.Logger
}

type CreateCreatorInput struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	Language      string `json:"language"`
	CreatedAt     int64  `json:"createdAt"`
}

func NewCreatorService(store *store.Store, logger *logrus.Logger) *CreatorService {
	return &CreatorService{
		store:  store,
		logger: logger,
	}
}

// CreateCreator registers a creator profile. Re-posting an existing id
// replaces the stored profile.
func (s *CreatorService) CreateCreator(input CreateCreatorInput) models.Creator {
	creator := models.Creator{
		ID:            input.ID,
		WalletAddress: input.WalletAddress,
		Name:          input.Name,
		Bio:           input.Bio,
		Location:      input.Location,
		Language:      input.Language,
		CreatedAt:     input.CreatedAt,
	}

	if creator.ID == "" {
		creator.ID = uuid.New().String()
	}
	if creator.Language == "" {
		creator.Language = "en"
	}
	if creator.CreatedAt == 0 {
		creator.CreatedAt = time.Now().UnixMilli()
	}

	s.logger.WithFields(logrus.Fields{
		"creator_id": creator.ID,
		"wallet":     creator.WalletAddress,
	}).Info("creator profile saved")

	return s.store.CreateCreator(creator)
}

func (s *CreatorService) GetCreatorByAddress(address string) (models.Creator, bool) {
	return s.store.GetCreatorByAddress(address)
}

// ResolveCreator looks the creator up by id first, then by wallet
// address. Path params may carry either.
func (s *CreatorService) ResolveCreator(idOrAddress string) (models.Creator, bool) {
	if creator, ok := s.store.GetCreator(idOrAddress); ok {
		return creator, true
	}
	return s.store.GetCreatorByAddress(idOrAddress)
}

// AssetsForCreator returns the creator's assets. An unknown address
// yields an empty list, not an error.
func (s *CreatorService) AssetsForCreator(idOrAddress string) []models.IPAsset {
	creator, ok := s.ResolveCreator(idOrAddress)
	if !ok {
		return []models.IPAsset{}
	}
	return s.store.GetIPAssetsByCreator(creator.ID)
}

func (s *CreatorService) RequestsForCreator(idOrAddress string) []models.LicensingRequest {
	creator, ok := s.ResolveCreator(idOrAddress)
	if !ok {
		return []models.LicensingRequest{}
	}
	return s.store.GetLicensingRequestsByCreator(creator.ID)
}

func (s *CreatorService) AgreementsForCreator(idOrAddress string) []models.LicensingAgreement {
	creator, ok := s.ResolveCreator(idOrAddress)
	if !ok {
		// Agreements are keyed by wallet address, so try the raw param too
		return s.store.GetLicensingAgreementsByCreator(idOrAddress)
	}
	return s.store.GetLicensingAgreementsByCreator(creator.WalletAddress)
}
