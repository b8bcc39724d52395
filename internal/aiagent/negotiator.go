// internal/aiagent/negotiator.go
package aiagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storymint/storymint-backend/internal/models"
)

// parsedNegotiation is the model's view of a negotiation response.
// Accepted is kept loosely typed so that only a literal JSON true is
// treated as acceptance.
type parsedNegotiation struct {
	Accepted   interface{} `json:"accepted"`
	FinalTerms *struct {
		UsageRights *string  `json:"usageRights"`
		Price       *float64 `json:"price"`
		Duration    *float64 `json:"duration"`
		Territory   []string `json:"territory"`
		Derivatives *bool    `json:"derivatives"`
	} `json:"finalTerms"`
	Reasoning *string `json:"reasoning"`
}

func parseNegotiation(raw string) parsedNegotiation {
	var parsed parsedNegotiation
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}
	if obj, ok := extractJSON(raw); ok {
		parsed = parsedNegotiation{}
		json.Unmarshal([]byte(obj), &parsed)
	}
	return parsed
}

// NegotiateTerms decides between the creator's terms and a licensee's
// request. It never returns an error: generation failure yields a
// rejection carrying the creator's terms unchanged.
func (a *Agent) NegotiateTerms(ctx context.Context, creatorTerms models.LicensingTerms, request models.RequestedTerms, analysis models.ContentAnalysis) models.NegotiationResult {
	prompt := a.buildNegotiationPrompt(creatorTerms, request, analysis)

	raw, err := a.generator.Generate(ctx, prompt, true)
	if err != nil {
		a.logger.WithError(err).Warn("negotiation generation failed")
		return models.NegotiationResult{
			Accepted:   false,
			FinalTerms: creatorTerms,
			Reasoning:  "Error during negotiation. Please try again.",
		}
	}

	parsed := parseNegotiation(raw)

	// Each final-terms field is independently defaulted from the
	// creator's terms.
	finalTerms := creatorTerms
	if parsed.FinalTerms != nil {
		if parsed.FinalTerms.UsageRights != nil && *parsed.FinalTerms.UsageRights != "" {
			finalTerms.UsageRights = models.UsageRights(*parsed.FinalTerms.UsageRights)
		}
		if parsed.FinalTerms.Price != nil {
			finalTerms.Price = *parsed.FinalTerms.Price
		}
		if parsed.FinalTerms.Duration != nil {
			finalTerms.Duration = int(*parsed.FinalTerms.Duration)
		}
		if parsed.FinalTerms.Territory != nil {
			finalTerms.Territory = parsed.FinalTerms.Territory
		}
		if parsed.FinalTerms.Derivatives != nil {
			finalTerms.Derivatives = *parsed.FinalTerms.Derivatives
		}
	}

	accepted, _ := parsed.Accepted.(bool)

	reasoning := "Negotiation completed"
	if parsed.Reasoning != nil && *parsed.Reasoning != "" {
		reasoning = *parsed.Reasoning
	}

	return models.NegotiationResult{
		Accepted:   accepted,
		FinalTerms: finalTerms,
		Reasoning:  reasoning,
	}
}

func (a *Agent) buildNegotiationPrompt(creatorTerms models.LicensingTerms, request models.RequestedTerms, analysis models.ContentAnalysis) string {
	requestedRights := "not specified"
	if request.UsageRights != nil {
		requestedRights = string(*request.UsageRights)
	}
	requestedPrice := "not specified"
	if request.Price != nil {
		requestedPrice = fmt.Sprintf("%v", *request.Price)
	}
	requestedDuration := "not specified"
	if request.Duration != nil {
		requestedDuration = fmt.Sprintf("%d", *request.Duration)
	}
	requestedTerritory := "not specified"
	if request.Territory != nil {
		requestedTerritory = strings.Join(request.Territory, ", ")
	}

	return fmt.Sprintf(`You are an expert IP licensing negotiator. Your role is to facilitate fair agreements between content creators and licensees.

CURRENT SITUATION:
Creator's Initial Terms:
- Usage Rights: %s
- Price: $%v
- Duration: %d days
- Territory: %s
- Derivatives Allowed: %t

Licensee's Request:
- Usage Rights: %s
- Price: $%s
- Duration: %s days
- Territory: %s

Content Analysis:
- Type: %s
- Quality: %s
- Estimated Market Value: $%v
- Suggested Commercial Price: $%v
- Suggested Non-Commercial Price: $%v
- Suggested Exclusive Price: $%v

NEGOTIATION GUIDELINES:
1. Consider the content quality and market value when evaluating price requests
2. Allow reasonable price negotiations (within 20-30%% of original price is usually acceptable)
3. If licensee requests significantly lower price, suggest a middle ground
4. Consider usage rights: exclusive should cost more than commercial, commercial more than non-commercial
5. Be fair to both parties - don't always favor the creator or licensee
6. If terms are reasonable, accept them. If unreasonable, suggest fair alternatives.

DECISION LOGIC:
- Accept if: Price difference is within 30%% and usage rights are compatible
- Negotiate if: Price difference is 30-50%% - suggest a middle ground
- Reject if: Price difference is >50%% or terms are fundamentally incompatible

Return JSON in this exact format:
{
  "accepted": boolean,
  "finalTerms": {
    "usageRights": "commercial|non-commercial|exclusive",
    "price": number,
    "duration": number,
    "territory": ["string"],
    "derivatives": boolean
  },
  "reasoning": "clear explanation of the negotiation outcome and why"
}

Return only the JSON object, no other text.`,
		creatorTerms.UsageRights,
		creatorTerms.Price,
		creatorTerms.Duration,
		strings.Join(creatorTerms.Territory, ", "),
		creatorTerms.Derivatives,
		requestedRights,
		requestedPrice,
		requestedDuration,
		requestedTerritory,
		analysis.Type,
		analysis.Quality,
		analysis.EstimatedValue,
		analysis.SuggestedPricing.Commercial,
		analysis.SuggestedPricing.NonCommercial,
		analysis.SuggestedPricing.Exclusive,
	)
}
