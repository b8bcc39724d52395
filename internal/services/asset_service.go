// internal/services/asset_service.go
package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/store"
)

type AssetService struct {
	store    *store.Store
	registry *RegistryService
	logger   *logrus.Logger
}

type CreateIPAssetInput struct {
	ID             string                 `json:"id"`
	CreatorID      string                 `json:"creatorId" validate:"required"`
	TokenID        string                 `json:"tokenId"`
	Title          string                 `json:"title" validate:"required"`
	Description    string                 `json:"description"`
	FileURL        string                 `json:"fileUrl"`
	FileType       string                 `json:"fileType"`
	ContentHash    string                 `json:"contentHash"`
	Analysis       models.ContentAnalysis `json:"analysis"`
	LicensingTerms models.LicensingTerms  `json:"licensingTerms"`
	CreatedAt      int64                  `json:"createdAt"`
}

func NewAssetService(store *store.Store, registry *RegistryService, logger *logrus.Logger) *AssetService {
	return &AssetService{
		store:    store,
		registry: registry,
		logger:   logger,
	}
}

// CreateIPAsset stores a new asset. When the referenced creator has no
// profile yet a placeholder is created so creator-scoped listings work.
// A missing tokenId triggers registration.
func (s *AssetService) CreateIPAsset(input CreateIPAssetInput) models.IPAsset {
	if _, ok := s.store.GetCreator(input.CreatorID); !ok {
		s.logger.WithField("creator_id", input.CreatorID).Info("creating placeholder creator profile")
		s.store.CreateCreator(models.Creator{
			ID:            input.CreatorID,
			WalletAddress: input.CreatorID,
			Name:          "Unknown Creator",
			Language:      "en",
			CreatedAt:     time.Now().UnixMilli(),
		})
	}

	asset := models.IPAsset{
		ID:             input.ID,
		CreatorID:      input.CreatorID,
		TokenID:        input.TokenID,
		Title:          input.Title,
		Description:    input.Description,
		FileURL:        input.FileURL,
		FileType:       input.FileType,
		ContentHash:    input.ContentHash,
		Analysis:       input.Analysis,
		LicensingTerms: input.LicensingTerms,
		CreatedAt:      input.CreatedAt,
	}

	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	if asset.CreatedAt == 0 {
		asset.CreatedAt = time.Now().UnixMilli()
	}
	if asset.TokenID == "" {
		asset.TokenID = s.registry.RegisterIPAsset(asset.ContentHash, asset.Title, asset.CreatorID)
	}

	return s.store.CreateIPAsset(asset)
}

// ListAssets returns every asset, or only creatorID's when given.
func (s *AssetService) ListAssets(creatorID string) []models.IPAsset {
	if creatorID != "" {
		return s.store.GetIPAssetsByCreator(creatorID)
	}
	return s.store.GetAllIPAssets()
}

func (s *AssetService) GetAsset(id string) (models.IPAsset, bool) {
	return s.store.GetIPAsset(id)
}
