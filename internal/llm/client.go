// Package llm runs the multi-provider generation race: every
// configured provider gets the same prompt, the designated primary is
// accepted early when it answers fast with usable output, and
// otherwise the best-scoring candidate wins at the deadline.
package llm

import "context"

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of capped conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Prompt carries everything a provider needs for one generation call.
type Prompt struct {
	System      string
	Messages    []ChatMessage
	MaxTokens   int32
	Temperature float32
}

// Provider is a single text-generation backend. Priority orders
// providers for tie-breaking and scoring; lower is better.
type Provider interface {
	Name() string
	Priority() int
	Generate(ctx context.Context, p Prompt) (string, error)
}
