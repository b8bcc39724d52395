// internal/aiagent/royalty.go
package aiagent

import (
	"github.com/storymint/storymint-backend/internal/models"
)

// CalculateRoyaltySplit divides totalRevenue between creator, licensee
// and platform. The platform fee comes off the top; the remainder is
// split by creatorShare. No validation that the shares sum to <=1.
func (a *Agent) CalculateRoyaltySplit(totalRevenue float64, terms models.LicensingTerms, creatorShare, platformFee float64) models.RoyaltyShares {
	platformAmount := totalRevenue * platformFee
	remaining := totalRevenue - platformAmount
	creatorAmount := remaining * creatorShare
	licenseeAmount := remaining * (1 - creatorShare)

	return models.RoyaltyShares{
		Creator:  creatorAmount,
		Licensee: licenseeAmount,
		Platform: platformAmount,
	}
}
