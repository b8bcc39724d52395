// internal/models/terms.go
package models

// LicensingTerms are the commercial conditions under which content may be
// used. They appear both as a creator's offered terms on an asset and as a
// licensee's negotiated terms on a request or agreement.
type LicensingTerms struct {
	UsageRights UsageRights `json:"usageRights"`
	Derivatives bool        `json:"derivatives"`
	Territory   []string    `json:"territory"`
	Duration    int         `json:"duration"` // days
	Price       float64     `json:"price"`    // USD
}

// RequestedTerms is a licensee's partial counter-offer. Nil fields mean
// "not specified" and are resolved against the creator's terms during
// negotiation.
type RequestedTerms struct {
	UsageRights *UsageRights `json:"usageRights,omitempty"`
	Derivatives *bool        `json:"derivatives,omitempty"`
	Territory   []string     `json:"territory,omitempty"`
	Duration    *int         `json:"duration,omitempty"`
	Price       *float64     `json:"price,omitempty"`
}

// NegotiationResult is the outcome of one negotiation round. It is
// transient; persisted only as a history entry on a licensing request.
type NegotiationResult struct {
	Accepted   bool           `json:"accepted"`
	FinalTerms LicensingTerms `json:"finalTerms"`
	Reasoning  string         `json:"reasoning"`
}

// PartyInfo identifies a contract party.
type PartyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ContentInfo identifies the licensed content in a contract.
type ContentInfo struct {
	Title   string `json:"title"`
	TokenID string `json:"tokenId"`
}

// RoyaltyShares is the proportional division of a payment.
type RoyaltyShares struct {
	Creator  float64 `json:"creator"`
	Licensee float64 `json:"licensee"`
	Platform float64 `json:"platform"`
}
