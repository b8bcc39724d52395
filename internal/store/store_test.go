// internal/store/store_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storymint/storymint-backend/internal/models"
)

func TestCreatorRoundTrip(t *testing.T) {
	s := New()

	creator := models.Creator{
		ID:            "c1",
		WalletAddress: "0xabc",
		Name:          "Asha",
		Language:      "en",
		CreatedAt:     1700000000000,
	}
	s.CreateCreator(creator)

	got, ok := s.GetCreator("c1")
	require.True(t, ok)
	assert.Equal(t, creator, got)
}

func TestGetCreatorByAddressCaseInsensitive(t *testing.T) {
	s := New()
	s.CreateCreator(models.Creator{ID: "c1", WalletAddress: "0xabc", Name: "Asha"})

	got, ok := s.GetCreatorByAddress("0xABC")
	require.True(t, ok)
	assert.Equal(t, "c1", got.ID)

	_, ok = s.GetCreatorByAddress("0xother")
	assert.False(t, ok)
}

func TestCreateIsInsertOrReplace(t *testing.T) {
	s := New()
	s.CreateCreator(models.Creator{ID: "c1", Name: "First"})
	s.CreateCreator(models.Creator{ID: "c1", Name: "Second"})

	got, ok := s.GetCreator("c1")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Name)
}

func TestFiltersReturnEmptyNonNilSlices(t *testing.T) {
	s := New()

	assets := s.GetIPAssetsByCreator("nobody")
	assert.NotNil(t, assets)
	assert.Empty(t, assets)

	requests := s.GetLicensingRequestsByCreator("nobody")
	assert.NotNil(t, requests)
	assert.Empty(t, requests)

	agreements := s.GetLicensingAgreementsByCreator("0xnobody")
	assert.NotNil(t, agreements)
	assert.Empty(t, agreements)

	all := s.GetAllIPAssets()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestLicensingRequestsByCreatorFollowsAssets(t *testing.T) {
	s := New()
	s.CreateIPAsset(models.IPAsset{ID: "a1", CreatorID: "c1"})
	s.CreateIPAsset(models.IPAsset{ID: "a2", CreatorID: "c2"})
	s.CreateLicensingRequest(models.LicensingRequest{ID: "r1", IPAssetID: "a1"})
	s.CreateLicensingRequest(models.LicensingRequest{ID: "r2", IPAssetID: "a2"})
	// Dangling reference; no creator owns this asset
	s.CreateLicensingRequest(models.LicensingRequest{ID: "r3", IPAssetID: "missing"})

	requests := s.GetLicensingRequestsByCreator("c1")
	require.Len(t, requests, 1)
	assert.Equal(t, "r1", requests[0].ID)
}

func TestUpdateLicensingRequestMergesFields(t *testing.T) {
	s := New()
	s.CreateLicensingRequest(models.LicensingRequest{
		ID:              "r1",
		IPAssetID:       "a1",
		LicenseeAddress: "0xdef",
		RequestedTerms:  models.LicensingTerms{Price: 100, Duration: 30},
		Status:          models.RequestStatusPending,
	})

	status := models.RequestStatusAccepted
	updated, ok := s.UpdateLicensingRequest("r1", models.LicensingRequestUpdate{Status: &status})
	require.True(t, ok)

	assert.Equal(t, models.RequestStatusAccepted, updated.Status)
	// Unset fields keep their stored values
	assert.Equal(t, 100.0, updated.RequestedTerms.Price)
	assert.Equal(t, "0xdef", updated.LicenseeAddress)

	_, ok = s.UpdateLicensingRequest("missing", models.LicensingRequestUpdate{Status: &status})
	assert.False(t, ok)
}

func TestAgreementsByCreatorAddress(t *testing.T) {
	s := New()
	s.CreateLicensingAgreement(models.LicensingAgreement{ID: "g1", CreatorAddress: "0xAbC"})
	s.CreateLicensingAgreement(models.LicensingAgreement{ID: "g2", CreatorAddress: "0xdef"})

	agreements := s.GetLicensingAgreementsByCreator("0xabc")
	require.Len(t, agreements, 1)
	assert.Equal(t, "g1", agreements[0].ID)
}
