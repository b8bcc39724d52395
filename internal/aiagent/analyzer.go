// internal/aiagent/analyzer.go
package aiagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storymint/storymint-backend/internal/models"
)

// Fixed quality-indexed price table used to backfill missing fields and
// as the offline fallback.
func pricingForQuality(quality string) models.PricingTiers {
	switch strings.ToLower(quality) {
	case "low":
		return models.PricingTiers{Commercial: 25, NonCommercial: 10, Exclusive: 100}
	case "medium":
		return models.PricingTiers{Commercial: 150, NonCommercial: 50, Exclusive: 1000}
	case "high":
		return models.PricingTiers{Commercial: 500, NonCommercial: 150, Exclusive: 3000}
	case "professional":
		return models.PricingTiers{Commercial: 2000, NonCommercial: 500, Exclusive: 10000}
	default:
		return models.PricingTiers{Commercial: 150, NonCommercial: 50, Exclusive: 1000}
	}
}

func estimatedValueForQuality(quality string) float64 {
	switch strings.ToLower(quality) {
	case "low":
		return 20
	case "medium":
		return 100
	case "high":
		return 500
	default:
		return 2000
	}
}

func contentTypeFromFileType(fileType string) models.ContentType {
	switch {
	case strings.Contains(fileType, "audio"):
		return models.ContentTypeMusic
	case strings.Contains(fileType, "video"):
		return models.ContentTypeVideo
	case strings.Contains(fileType, "image"):
		return models.ContentTypeImage
	default:
		return models.ContentTypeOther
	}
}

// parsedAnalysis is the model's view of an analysis response. All fields
// are optional; missing ones are backfilled afterwards.
type parsedAnalysis struct {
	Type             *string  `json:"type"`
	Quality          *string  `json:"quality"`
	Duration         *float64 `json:"duration"`
	Genre            *string  `json:"genre"`
	EstimatedValue   *float64 `json:"estimatedValue"`
	SuggestedPricing *struct {
		Commercial    *float64 `json:"commercial"`
		NonCommercial *float64 `json:"nonCommercial"`
		Exclusive     *float64 `json:"exclusive"`
	} `json:"suggestedPricing"`
	Tags []string `json:"tags"`
}

// parseAnalysis tries a strict parse first, then retries against the
// first {...} span of the response. A zero value is returned when both
// fail; backfilling handles the rest.
func parseAnalysis(raw string) parsedAnalysis {
	var parsed parsedAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}
	if obj, ok := extractJSON(raw); ok {
		parsed = parsedAnalysis{}
		json.Unmarshal([]byte(obj), &parsed)
	}
	return parsed
}

// AnalyzeContent analyzes uploaded content and suggests pricing. It never
// fails: generation or parse problems degrade to heuristic defaults.
func (a *Agent) AnalyzeContent(ctx context.Context, fileType, fileName string, meta models.ContentMetadata, fileSize int64) models.ContentAnalysis {
	prompt := a.buildAnalysisPrompt(fileType, fileName, meta, fileSize)

	raw, err := a.generator.Generate(ctx, prompt, true)
	if err != nil {
		a.logger.WithError(err).Warn("content analysis generation failed, using heuristic fallback")
		return a.heuristicAnalysis(fileType, fileName, fileSize)
	}

	parsed := parseAnalysis(raw)

	quality := "medium"
	if parsed.Quality != nil && *parsed.Quality != "" {
		quality = *parsed.Quality
	}

	pricing := pricingForQuality(quality)
	analysis := models.ContentAnalysis{
		Type:             contentTypeFromFileType(fileType),
		Quality:          models.Quality(quality),
		EstimatedValue:   estimatedValueForQuality(quality),
		SuggestedPricing: pricing,
		Tags:             []string{},
	}

	if parsed.Type != nil && *parsed.Type != "" {
		analysis.Type = models.ContentType(*parsed.Type)
	}
	if parsed.Duration != nil {
		analysis.Duration = *parsed.Duration
	}
	if parsed.Genre != nil {
		analysis.Genre = *parsed.Genre
	}
	if parsed.EstimatedValue != nil && *parsed.EstimatedValue != 0 {
		analysis.EstimatedValue = *parsed.EstimatedValue
	}
	if parsed.SuggestedPricing != nil {
		if parsed.SuggestedPricing.Commercial != nil && *parsed.SuggestedPricing.Commercial != 0 {
			analysis.SuggestedPricing.Commercial = *parsed.SuggestedPricing.Commercial
		}
		if parsed.SuggestedPricing.NonCommercial != nil && *parsed.SuggestedPricing.NonCommercial != 0 {
			analysis.SuggestedPricing.NonCommercial = *parsed.SuggestedPricing.NonCommercial
		}
		if parsed.SuggestedPricing.Exclusive != nil && *parsed.SuggestedPricing.Exclusive != 0 {
			analysis.SuggestedPricing.Exclusive = *parsed.SuggestedPricing.Exclusive
		}
	}
	if parsed.Tags != nil {
		analysis.Tags = parsed.Tags
	}

	return analysis
}

// heuristicAnalysis prices content from file characteristics alone, used
// when no generation provider is reachable.
func (a *Agent) heuristicAnalysis(fileType, fileName string, fileSize int64) models.ContentAnalysis {
	nameLower := strings.ToLower(fileName)
	isLowQuality := strings.Contains(nameLower, "screenshot") ||
		strings.Contains(nameLower, "copy") ||
		strings.Contains(nameLower, "temp") ||
		strings.Contains(nameLower, "low-res") ||
		(fileSize > 0 && fileSize < 100000)

	quality := models.QualityMedium
	estimatedValue := 100.0
	if isLowQuality {
		quality = models.QualityLow
		estimatedValue = 20.0
	}

	return models.ContentAnalysis{
		Type:             contentTypeFromFileType(fileType),
		Quality:          quality,
		EstimatedValue:   estimatedValue,
		SuggestedPricing: pricingForQuality(string(quality)),
		Tags:             []string{},
	}
}

func (a *Agent) buildAnalysisPrompt(fileType, fileName string, meta models.ContentMetadata, fileSize int64) string {
	sizeDesc := "unknown"
	if fileSize > 0 {
		sizeDesc = fmt.Sprintf("%.2f MB", float64(fileSize)/1024/1024)
	}

	title := meta.Title
	if title == "" {
		title = "Not provided"
	}
	description := meta.Description
	if description == "" {
		description = "Not provided"
	}

	return fmt.Sprintf(`You are an expert IP licensing analyst with deep knowledge of content market values, quality assessment, and fair pricing strategies.

Analyze this content for IP licensing with careful consideration:

FILE INFORMATION:
- File Type: %s
- File Name: %s
- File Size: %s
- Title: %s
- Description: %s

ANALYSIS REQUIREMENTS:
1. CONTENT TYPE: Determine if this is music/video/image/other based on file type and metadata
2. QUALITY ASSESSMENT: Evaluate quality as low/medium/high/professional based on:
   - File name patterns (screenshots, low-res, compressed files suggest lower quality)
   - File size relative to type (very small files may be low quality)
   - Title and description quality (professional content has better descriptions)
   - Common indicators of low quality: "screenshot", "copy", "temp", "low-res", "compressed"
3. MARKET VALUE: Estimate realistic market value considering:
   - Content type and quality level
   - Industry standards for similar content
   - Low quality content (screenshots, quick snaps) = $5-50
   - Medium quality (decent photos, basic videos) = $50-500
   - High quality (professional work) = $500-5000
   - Professional/exceptional = $5000+
4. PRICING STRATEGY: Set fair, market-appropriate pricing:
   - Commercial license: Based on quality and market value (typically 1-2x estimated value)
   - Non-commercial: Lower than commercial (typically 20-50%% of commercial)
   - Exclusive: Significantly higher (typically 5-10x commercial for high quality, 2-3x for lower quality)
   - Be realistic: Low quality content should NOT be priced at $500+
5. TAGS: Generate relevant tags for discoverability

CRITICAL RULES:
- Low quality content (screenshots, quick photos, basic images) should have commercial pricing of $10-100, NOT $500+
- Only professional, high-quality content should command premium pricing ($500+)
- Consider file size: Very small files often indicate low quality
- File names with "screenshot", "copy", "temp" suggest lower value
- Be conservative and realistic with pricing

Return ONLY valid JSON in this exact format:
{
  "type": "music|video|image|other",
  "quality": "low|medium|high|professional",
  "duration": number (in seconds, only for audio/video),
  "genre": "string or null",
  "estimatedValue": number (realistic USD value),
  "suggestedPricing": {
    "commercial": number (fair commercial price in USD),
    "nonCommercial": number (fair non-commercial price in USD),
    "exclusive": number (fair exclusive price in USD)
  },
  "tags": ["tag1", "tag2", "tag3"]
}

Return only the JSON object, no other text.`, fileType, fileName, sizeDesc, title, description)
}
