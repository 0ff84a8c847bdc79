package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThoughtPlainJSON(t *testing.T) {
	thought, err := ParseThought(goodPayload)
	require.NoError(t, err)
	assert.True(t, thought.ScamDetected)
	assert.Equal(t, "bank_fraud", thought.ScamType)
	assert.Contains(t, thought.Response, "thoda ruko")
	assert.Equal(t, []string{"otp"}, thought.Intelligence.SuspiciousKeywords)
}

func TestParseThoughtFencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n" + goodPayload + "\n```\nHope that helps!"
	thought, err := ParseThought(raw)
	require.NoError(t, err)
	assert.True(t, thought.ScamDetected)
}

func TestParseThoughtRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no json", "I am just prose, no structure at all"},
		{"broken json", `{"scam_detected": true, "response": `},
		{"missing reply", `{"scam_detected": true, "response": "   "}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseThought(tt.raw)
			assert.ErrorIs(t, err, ErrGenerationMalformed)
		})
	}
}

func TestRepairPromptCarriesRawOutput(t *testing.T) {
	raw := "some broken { output"
	p := RepairPrompt(raw)
	require.Len(t, p.Messages, 1)
	assert.Equal(t, ChatRoleUser, p.Messages[0].Role)
	assert.True(t, strings.Contains(p.Messages[0].Content, raw))
	assert.True(t, strings.Contains(p.Messages[0].Content, "valid JSON"))
	assert.Equal(t, float32(0), p.Temperature)
}
