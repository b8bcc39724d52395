// internal/aiagent/contract_test.go
package aiagent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storymint/storymint-backend/internal/models"
)

func TestGenerateContractReturnsText(t *testing.T) {
	gen := &stubGenerator{response: "LICENSING AGREEMENT\n\nThis agreement..."}
	agent := newTestAgent(gen)

	contract := agent.GenerateContract(context.Background(),
		creatorTermsFixture(),
		models.PartyInfo{Name: "Asha", Address: "0xabc"},
		models.PartyInfo{Name: "Studio", Address: "0xdef"},
		models.ContentInfo{Title: "Sunset", TokenID: "0x1"},
		"en")

	assert.Equal(t, "LICENSING AGREEMENT\n\nThis agreement...", contract)
	assert.Contains(t, gen.prompts[0], "English")
	assert.Contains(t, gen.prompts[0], "Asha")
}

func TestGenerateContractFailureMessage(t *testing.T) {
	agent := newTestAgent(&stubGenerator{err: errors.New("provider down")})

	contract := agent.GenerateContract(context.Background(),
		creatorTermsFixture(), models.PartyInfo{}, models.PartyInfo{}, models.ContentInfo{}, "en")

	assert.Equal(t, ContractFailureMessage, contract)
}

func TestGenerateContractLanguageHandling(t *testing.T) {
	gen := &stubGenerator{response: "contract"}
	agent := newTestAgent(gen)

	agent.GenerateContract(context.Background(), creatorTermsFixture(), models.PartyInfo{}, models.PartyInfo{}, models.ContentInfo{}, "hi")
	assert.Contains(t, gen.prompts[0], "Hindi")

	// Empty language defaults to English
	agent.GenerateContract(context.Background(), creatorTermsFixture(), models.PartyInfo{}, models.PartyInfo{}, models.ContentInfo{}, "")
	assert.Contains(t, gen.prompts[1], "English")

	// Unknown codes pass through raw
	agent.GenerateContract(context.Background(), creatorTermsFixture(), models.PartyInfo{}, models.PartyInfo{}, models.ContentInfo{}, "xx")
	assert.Contains(t, gen.prompts[2], "language code: xx")
}
