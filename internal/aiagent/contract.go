// internal/aiagent/contract.go
package aiagent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/storymint/storymint-backend/internal/lang"
	"github.com/storymint/storymint-backend/internal/models"
)

// ContractFailureMessage is returned when contract generation fails.
// There is no structural fallback for contract text.
const ContractFailureMessage = "Contract generation failed. Please try again."

// GenerateContract produces natural-language contract text in the
// requested language. Unknown language codes pass through as-is.
func (a *Agent) GenerateContract(ctx context.Context, terms models.LicensingTerms, creatorInfo, licenseeInfo models.PartyInfo, contentInfo models.ContentInfo, language string) string {
	if language == "" {
		language = "en"
	}
	languageName := lang.Name(language)

	termsJSON, _ := json.Marshal(terms)
	creatorJSON, _ := json.Marshal(creatorInfo)
	licenseeJSON, _ := json.Marshal(licenseeInfo)
	contentJSON, _ := json.Marshal(contentInfo)

	prompt := fmt.Sprintf(`Generate a professional licensing contract in %[1]s (language code: %[2]s).

Terms: %[3]s
Creator: %[4]s
Licensee: %[5]s
Content: %[6]s

IMPORTANT:
- Generate the ENTIRE contract in %[1]s language
- Use proper legal terminology in %[1]s
- Include all standard licensing clauses
- Make it professional and legally sound
- If %[1]s uses a specific script (like Devanagari, Tamil, Telugu, etc.), write the contract in that script
- Include: parties, terms, duration, territory, payment terms, usage rights, restrictions, termination clauses, and dispute resolution

Generate the complete contract text in %[1]s.`,
		languageName, language, termsJSON, creatorJSON, licenseeJSON, contentJSON)

	text, err := a.generator.Generate(ctx, prompt, false)
	if err != nil {
		a.logger.WithError(err).Warn("contract generation failed")
		return ContractFailureMessage
	}

	return text
}
