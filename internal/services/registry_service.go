// internal/services/registry_service.go
package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storymint/storymint-backend/internal/config"
	"github.com/storymint/storymint-backend/internal/models"
	"github.com/storymint/storymint-backend/internal/utils"
)

// RegistryService wraps on-chain IP registration. Server-side wallet
// signing is not available, so registration and license minting produce
// deterministic mock ids; the service never fails.
type RegistryService struct {
	config *config.Config
	logger *logrus.Logger
}

func NewRegistryService(config *config.Config, logger *logrus.Logger) *RegistryService {
	return &RegistryService{
		config: config,
		logger: logger,
	}
}

// RegisterIPAsset returns a token id for the asset.
// TODO: route through the Story Protocol SDK service once server-side
// signing is wired up.
func (s *RegistryService) RegisterIPAsset(contentHash, title, creatorAddress string) string {
	record := fmt.Sprintf("ip_registration|%s|%s|%s|%s|%d",
		s.config.Blockchain.Network, contentHash, title, creatorAddress, time.Now().UnixNano())
	tokenID := "0x" + utils.HashString(record)

	s.logger.WithFields(logrus.Fields{
		"network":  s.config.Blockchain.Network,
		"token_id": tokenID,
		"creator":  creatorAddress,
	}).Info("IP asset registered (mock)")

	return tokenID
}

// CreateLicenseAgreement returns a license id for the agreement.
func (s *RegistryService) CreateLicenseAgreement(ipAssetID, licenseeAddress string, terms models.LicensingTerms) string {
	record := fmt.Sprintf("license_grant|%s|%s|%s|%v|%d",
		s.config.Blockchain.Network, ipAssetID, licenseeAddress, terms.UsageRights, time.Now().UnixNano())
	licenseID := "0x" + utils.HashString(record)

	s.logger.WithFields(logrus.Fields{
		"network":    s.config.Blockchain.Network,
		"license_id": licenseID,
		"ip_asset":   ipAssetID,
		"licensee":   licenseeAddress,
	}).Info("license minted (mock)")

	return licenseID
}
