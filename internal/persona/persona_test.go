package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate("session-abc-123")
	b := Generate("session-abc-123")
	assert.Equal(t, a, b)

	c := Generate("session-other")
	assert.NotEqual(t, a.Name+a.Bank.AccountNumber, c.Name+c.Bank.AccountNumber)
}

func TestGenerateFinancialIdentityShape(t *testing.T) {
	p := Generate("shape-check")

	require.Len(t, p.Bank.IFSC, 11)
	assert.Equal(t, byte('0'), p.Bank.IFSC[4])

	assert.GreaterOrEqual(t, len(p.Bank.AccountNumber), 10)
	assert.LessOrEqual(t, len(p.Bank.AccountNumber), 18)

	assert.True(t, strings.Contains(p.UPI, "@"))
	assert.True(t, strings.HasPrefix(p.Phone, "+91 "))

	assert.True(t, ValidLuhn(p.Card.Number), "card %s must pass Luhn", p.Card.Number)
	assert.Len(t, p.Card.Number, 16)
	assert.Equal(t, p.Card.Number[12:], p.Card.LastFour)

	assert.GreaterOrEqual(t, p.Age, 58)
	assert.LessOrEqual(t, p.Age, 78)
}

func TestValidLuhn(t *testing.T) {
	assert.True(t, ValidLuhn("4532015112830366"))
	assert.False(t, ValidLuhn("4532015112830367"))
	assert.False(t, ValidLuhn("4532abc"))
	assert.False(t, ValidLuhn(""))
}

func TestSystemPromptLocksIdentity(t *testing.T) {
	p := Generate("prompt-check")
	prompt := p.SystemPrompt()

	assert.Contains(t, prompt, p.Name)
	assert.Contains(t, prompt, p.Bank.AccountNumber)
	assert.Contains(t, prompt, p.Bank.IFSC)
	assert.Contains(t, prompt, p.UPI)
	assert.Contains(t, prompt, "NEVER CHANGE")
}

func TestExtractionPromptMentionsCategories(t *testing.T) {
	prompt := ExtractionPrompt()
	assert.Contains(t, prompt, "UPI IDs")
	assert.Contains(t, prompt, "IFSC codes")
	assert.Contains(t, prompt, "Phishing links")
}
