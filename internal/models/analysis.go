// internal/models/analysis.go
package models

// PricingTiers holds suggested USD prices per license type.
type PricingTiers struct {
	Commercial    float64 `json:"commercial"`
	NonCommercial float64 `json:"nonCommercial"`
	Exclusive     float64 `json:"exclusive"`
}

// ContentAnalysis is produced once per upload and embedded by value
// into the owning asset record.
type ContentAnalysis struct {
	Type             ContentType  `json:"type"`
	Quality          Quality      `json:"quality"`
	Duration         float64      `json:"duration,omitempty"` // seconds, audio/video only
	Genre            string       `json:"genre,omitempty"`
	EstimatedValue   float64      `json:"estimatedValue"`
	SuggestedPricing PricingTiers `json:"suggestedPricing"`
	Tags             []string     `json:"tags"`
}

// ContentMetadata is the user-supplied part of an analyze request.
type ContentMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}
