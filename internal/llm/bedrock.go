package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

type bedrockConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockProvider generates replies through the AWS Bedrock Converse
// API. The API is injected so tests can stub the transport.
type BedrockProvider struct {
	api      bedrockConverseAPI
	modelID  string
	priority int
}

// NewBedrockProvider creates a Bedrock-backed provider.
func NewBedrockProvider(api bedrockConverseAPI, modelID string, priority int) (*BedrockProvider, error) {
	if api == nil {
		return nil, errors.New("llm: bedrock converse client cannot be nil")
	}
	if strings.TrimSpace(modelID) == "" {
		return nil, errors.New("llm: bedrock model id is required")
	}
	return &BedrockProvider{api: api, modelID: modelID, priority: priority}, nil
}

func (b *BedrockProvider) Name() string  { return "bedrock" }
func (b *BedrockProvider) Priority() int { return b.priority }

func (b *BedrockProvider) Generate(ctx context.Context, p Prompt) (string, error) {
	var systemBlocks []brtypes.SystemContentBlock
	if strings.TrimSpace(p.System) != "" {
		systemBlocks = append(systemBlocks, &brtypes.SystemContentBlockMemberText{Value: p.System})
	}

	messages := make([]brtypes.Message, 0, len(p.Messages))
	for _, msg := range p.Messages {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		switch msg.Role {
		case ChatRoleSystem:
			systemBlocks = append(systemBlocks, &brtypes.SystemContentBlockMemberText{Value: content})
		case ChatRoleAssistant:
			messages = append(messages, brtypes.Message{
				Role: brtypes.ConversationRoleAssistant,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: content},
				},
			})
		default:
			messages = append(messages, brtypes.Message{
				Role: brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: content},
				},
			})
		}
	}
	if len(messages) == 0 {
		return "", errors.New("llm: bedrock requires at least one message")
	}

	inference := &brtypes.InferenceConfiguration{}
	if p.MaxTokens > 0 {
		inference.MaxTokens = aws.Int32(p.MaxTokens)
	}
	if p.Temperature >= 0 {
		inference.Temperature = aws.Float32(p.Temperature)
	}
	if inference.MaxTokens == nil && inference.Temperature == nil {
		inference = nil
	}

	out, err := b.api.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId:         aws.String(b.modelID),
		System:          systemBlocks,
		Messages:        messages,
		InferenceConfig: inference,
	})
	if err != nil {
		return "", fmt.Errorf("llm: bedrock converse failed: %w", err)
	}

	output, ok := out.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok || len(output.Value.Content) == 0 {
		return "", errors.New("llm: bedrock returned no message content")
	}

	var text strings.Builder
	for _, block := range output.Value.Content {
		if t, ok := block.(*brtypes.ContentBlockMemberText); ok {
			text.WriteString(t.Value)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", errors.New("llm: bedrock returned empty text")
	}
	return strings.TrimSpace(text.String()), nil
}
