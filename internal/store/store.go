// internal/store/store.go
package store

import (
	"strings"
	"sync"

	"github.com/storymint/storymint-backend/internal/models"
)

// Store is the in-memory record store. Records live for the lifetime of
// the process; nothing is ever deleted. Creates are insert-or-replace by
// id (last writer wins). The mutex only keeps concurrent map access safe;
// there is no transactional coupling between the four record sets.
type Store struct {
	mu                  sync.RWMutex
	creators            map[string]models.Creator
	ipAssets            map[string]models.IPAsset
	licensingRequests   map[string]models.LicensingRequest
	licensingAgreements map[string]models.LicensingAgreement
}

func New() *Store {
	return &Store{
		creators:            make(map[string]models.Creator),
		ipAssets:            make(map[string]models.IPAsset),
		licensingRequests:   make(map[string]models.LicensingRequest),
		licensingAgreements: make(map[string]models.LicensingAgreement),
	}
}

// Creators

func (s *Store) CreateCreator(creator models.Creator) models.Creator {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creators[creator.ID] = creator
	return creator
}

func (s *Store) GetCreator(id string) (models.Creator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creator, ok := s.creators[id]
	return creator, ok
}

// GetCreatorByAddress scans the full record set and returns the first
// creator whose wallet address matches case-insensitively.
func (s *Store) GetCreatorByAddress(address string) (models.Creator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, creator := range s.creators {
		if strings.EqualFold(creator.WalletAddress, address) {
			return creator, true
		}
	}
	return models.Creator{}, false
}

// IP assets

func (s *Store) CreateIPAsset(asset models.IPAsset) models.IPAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ipAssets[asset.ID] = asset
	return asset
}

func (s *Store) GetIPAsset(id string) (models.IPAsset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.ipAssets[id]
	return asset, ok
}

func (s *Store) GetIPAssetsByCreator(creatorID string) []models.IPAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := []models.IPAsset{}
	for _, asset := range s.ipAssets {
		if asset.CreatorID == creatorID {
			assets = append(assets, asset)
		}
	}
	return assets
}

func (s *Store) GetAllIPAssets() []models.IPAsset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := []models.IPAsset{}
	for _, asset := range s.ipAssets {
		assets = append(assets, asset)
	}
	return assets
}

// Licensing requests

func (s *Store) CreateLicensingRequest(request models.LicensingRequest) models.LicensingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.licensingRequests[request.ID] = request
	return request
}

func (s *Store) GetLicensingRequest(id string) (models.LicensingRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.licensingRequests[id]
	return request, ok
}

// GetLicensingRequestsByCreator returns requests against any of the
// creator's assets.
func (s *Store) GetLicensingRequestsByCreator(creatorID string) []models.LicensingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assetIDs := make(map[string]struct{})
	for _, asset := range s.ipAssets {
		if asset.CreatorID == creatorID {
			assetIDs[asset.ID] = struct{}{}
		}
	}

	requests := []models.LicensingRequest{}
	for _, request := range s.licensingRequests {
		if _, ok := assetIDs[request.IPAssetID]; ok {
			requests = append(requests, request)
		}
	}
	return requests
}

// UpdateLicensingRequest merges the non-nil fields of the update into the
// stored request. Returns false when the request does not exist.
func (s *Store) UpdateLicensingRequest(id string, update models.LicensingRequestUpdate) (models.LicensingRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.licensingRequests[id]
	if !ok {
		return models.LicensingRequest{}, false
	}

	if update.RequestedTerms != nil {
		request.RequestedTerms = *update.RequestedTerms
	}
	if update.Status != nil {
		request.Status = *update.Status
	}
	if update.NegotiationHistory != nil {
		request.NegotiationHistory = update.NegotiationHistory
	}

	s.licensingRequests[id] = request
	return request, true
}

// Licensing agreements

func (s *Store) CreateLicensingAgreement(agreement models.LicensingAgreement) models.LicensingAgreement {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.licensingAgreements[agreement.ID] = agreement
	return agreement
}

func (s *Store) GetLicensingAgreement(id string) (models.LicensingAgreement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agreement, ok := s.licensingAgreements[id]
	return agreement, ok
}

func (s *Store) GetLicensingAgreementsByCreator(creatorAddress string) []models.LicensingAgreement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agreements := []models.LicensingAgreement{}
	for _, agreement := range s.licensingAgreements {
		if strings.EqualFold(agreement.CreatorAddress, creatorAddress) {
			agreements = append(agreements, agreement)
		}
	}
	return agreements
}
