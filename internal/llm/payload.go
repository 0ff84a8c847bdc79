package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ThoughtIntel is what the model believes the scammer revealed. It is
// advisory only: the deterministic extractor remains the source of
// truth, and these lists are merged through the same normalization.
type ThoughtIntel struct {
	BankAccounts       []string `json:"bank_accounts"`
	UPIIDs             []string `json:"upi_ids"`
	PhishingLinks      []string `json:"phishing_links"`
	PhoneNumbers       []string `json:"phone_numbers"`
	SuspiciousKeywords []string `json:"suspicious_keywords"`
}

// AgentThought is the structured payload every provider is asked to
// return: analysis plus the actual reply to the scammer.
type AgentThought struct {
	ScamDetected  bool         `json:"scam_detected"`
	ScamType      string       `json:"scam_type"`
	ScammerTactic string       `json:"scammer_tactic"`
	Strategy      string       `json:"strategy"`
	Intelligence  ThoughtIntel `json:"intelligence"`
	IsComplete    bool         `json:"is_complete"`
	AgentNotes    string       `json:"agent_notes"`
	Response      string       `json:"response"`
}

// ResponseFormat is appended to the user prompt so the model answers
// in the shape ParseThought expects.
const ResponseFormat = `Respond ONLY with valid JSON in exactly this format:
{
    "scam_detected": true/false,
    "scam_type": "bank_fraud/upi_fraud/digital_arrest/lottery_scam/unknown",
    "scammer_tactic": "urgency/fear/greed/impersonation",
    "strategy": "feigning_ignorance/technical_confusion/stalling/baiting/panic_mode/reverse_extraction",
    "intelligence": {
        "bank_accounts": [],
        "upi_ids": [],
        "phishing_links": [],
        "phone_numbers": [],
        "suspicious_keywords": []
    },
    "is_complete": true/false,
    "agent_notes": "Brief analysis of scammer behavior",
    "response": "Your reply to the scammer (2-3 sentences, Indian English, confused elderly person style)"
}`

// ParseThought pulls the structured payload out of raw model output.
// Models wrap JSON in prose and code fences, so parsing slices from
// the first brace to the last.
func ParseThought(raw string) (AgentThought, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return AgentThought{}, fmt.Errorf("llm: no JSON object in output: %w", ErrGenerationMalformed)
	}
	var thought AgentThought
	if err := json.Unmarshal([]byte(raw[start:end+1]), &thought); err != nil {
		return AgentThought{}, fmt.Errorf("llm: decode agent payload: %w", ErrGenerationMalformed)
	}
	if strings.TrimSpace(thought.Response) == "" {
		return AgentThought{}, fmt.Errorf("llm: payload missing response field: %w", ErrGenerationMalformed)
	}
	return thought, nil
}

// RepairPrompt builds the single retry sent when a provider returns
// unparseable output: the raw text goes back with an instruction to
// fix the structure, not to regenerate content.
func RepairPrompt(raw string) Prompt {
	return Prompt{
		Messages: []ChatMessage{
			{
				Role: ChatRoleUser,
				Content: "The following output was supposed to be a single valid JSON object but is malformed. " +
					"Return the same content as valid JSON only, no commentary, no code fences.\n\n" +
					ResponseFormat + "\n\nMalformed output:\n" + raw,
			},
		},
		MaxTokens:   600,
		Temperature: 0,
	}
}
