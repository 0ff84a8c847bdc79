package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenRouterProvider generates replies through OpenRouter's
// OpenAI-compatible chat completion API.
type OpenRouterProvider struct {
	client   openai.Client
	modelID  string
	priority int
}

// NewOpenRouterProvider creates an OpenRouter-backed provider. baseURL
// defaults to the public OpenRouter endpoint when empty.
func NewOpenRouterProvider(apiKey, baseURL, modelID string, priority int) (*OpenRouterProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: openrouter api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if strings.TrimSpace(modelID) == "" {
		return nil, errors.New("llm: openrouter model id is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &OpenRouterProvider{client: client, modelID: modelID, priority: priority}, nil
}

func (o *OpenRouterProvider) Name() string  { return "openrouter" }
func (o *OpenRouterProvider) Priority() int { return o.priority }

func (o *OpenRouterProvider) Generate(ctx context.Context, p Prompt) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(p.Messages)+1)
	if strings.TrimSpace(p.System) != "" {
		messages = append(messages, openai.SystemMessage(p.System))
	}
	for _, msg := range p.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		switch msg.Role {
		case ChatRoleSystem:
			messages = append(messages, openai.SystemMessage(content))
		case ChatRoleAssistant:
			messages = append(messages, openai.AssistantMessage(content))
		default:
			messages = append(messages, openai.UserMessage(content))
		}
	}
	if len(messages) == 0 {
		return "", errors.New("llm: openrouter requires at least one message")
	}

	params := openai.ChatCompletionNewParams{
		Model:    o.modelID,
		Messages: messages,
	}
	if p.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.MaxTokens))
	}
	if p.Temperature >= 0 {
		params.Temperature = openai.Float(float64(p.Temperature))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm: openrouter completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: openrouter returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
