// internal/models/licensing.go
package models

// LicensingRequest tracks a licensee's attempt to license an asset,
// including the full negotiation history.
type LicensingRequest struct {
	ID                 string              `json:"id"`
	IPAssetID          string              `json:"ipAssetId"`
	LicenseeAddress    string              `json:"licenseeAddress"`
	RequestedTerms     LicensingTerms      `json:"requestedTerms"`
	Status             RequestStatus       `json:"status"`
	NegotiationHistory []NegotiationResult `json:"negotiationHistory"`
	CreatedAt          int64               `json:"createdAt"`
}

// LicensingRequestUpdate is a partial update applied to a stored request.
// Nil fields are left unchanged.
type LicensingRequestUpdate struct {
	RequestedTerms     *LicensingTerms     `json:"requestedTerms,omitempty"`
	Status             *RequestStatus      `json:"status,omitempty"`
	NegotiationHistory []NegotiationResult `json:"negotiationHistory,omitempty"`
}

// LicensingAgreement is the settled license between a creator and a
// licensee, carrying the generated contract text and its hash.
type LicensingAgreement struct {
	ID              string          `json:"id"`
	RequestID       string          `json:"requestId"`
	IPAssetID       string          `json:"ipAssetId"`
	CreatorAddress  string          `json:"creatorAddress"`
	LicenseeAddress string          `json:"licenseeAddress"`
	Terms           LicensingTerms  `json:"terms"`
	ContractText    string          `json:"contractText"`
	ContractHash    string          `json:"contractHash"`
	Status          AgreementStatus `json:"status"`
	CreatedAt       int64           `json:"createdAt"`
	ExpiresAt       int64           `json:"expiresAt"`
}
