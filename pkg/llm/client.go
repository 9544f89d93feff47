// Package llm provides the text-in/text-out LLM client used by the llm tool
// provider. The concrete implementation calls the AWS Bedrock Converse API;
// tests substitute scripted fakes at the tool layer.
package llm

import "context"

// GenerateInput is a single non-streaming completion request.
type GenerateInput struct {
	// ModelID overrides the client's default model when set.
	ModelID string
	// SystemPrompt is sent as the system block.
	SystemPrompt string
	// UserPrompt is sent as the sole user message.
	UserPrompt string
	// MaxTokens caps the completion; 0 uses the client default.
	MaxTokens int32
	// Temperature overrides the client default when >= 0.
	Temperature float32
	// StopSequences stop generation early.
	StopSequences []string
}

// GenerateOutput is the completion plus usage accounting.
type GenerateOutput struct {
	Text         string
	ModelID      string
	InputTokens  int32
	OutputTokens int32
}

// Client is the narrow LLM surface the tool layer consumes.
type Client interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
