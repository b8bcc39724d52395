// internal/models/ip_asset.go
package models

// IPAsset is a tokenized content record. CreatorID references a Creator by
// id; dangling references are tolerated and produce empty result sets.
type IPAsset struct {
	ID             string          `json:"id"`
	CreatorID      string          `json:"creatorId"`
	TokenID        string          `json:"tokenId"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	FileURL        string          `json:"fileUrl"`
	FileType       string          `json:"fileType"`
	ContentHash    string          `json:"contentHash"`
	Analysis       ContentAnalysis `json:"analysis"`
	LicensingTerms LicensingTerms  `json:"licensingTerms"`
	CreatedAt      int64           `json:"createdAt"`
}
