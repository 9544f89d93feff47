package tool

import (
	"context"
	"fmt"

	"github.com/intakehq/intake/pkg/llm"
)

// LLMTool adapts the llm.Client to the Tool interface. Request params it
// understands: model_id, system_prompt, temperature, max_tokens,
// stop_sequences.
type LLMTool struct {
	client llm.Client
}

// NewLLMTool wraps an LLM client as the "llm" capability provider.
func NewLLMTool(client llm.Client) *LLMTool {
	return &LLMTool{client: client}
}

// Invoke sends the request prompt to the LLM and returns the completion text.
// Provider throttling maps to ErrToolBusy; server faults are marked transient
// so the retry policy reschedules them.
func (t *LLMTool) Invoke(ctx context.Context, req *Request) (*Response, error) {
	input := &llm.GenerateInput{
		UserPrompt:  req.Input,
		Temperature: -1, // use client default unless overridden below
	}
	if v, ok := req.Params["model_id"].(string); ok {
		input.ModelID = v
	}
	if v, ok := req.Params["system_prompt"].(string); ok {
		input.SystemPrompt = v
	}
	if v, ok := req.Params["temperature"].(float64); ok {
		input.Temperature = float32(v)
	}
	if v, ok := req.Params["max_tokens"].(float64); ok {
		input.MaxTokens = int32(v)
	}
	if v, ok := req.Params["stop_sequences"].([]string); ok {
		input.StopSequences = v
	}

	out, err := t.client.Generate(ctx, input)
	if err != nil {
		switch {
		case llm.IsThrottle(err):
			return nil, fmt.Errorf("%w: %v", ErrToolBusy, err)
		case llm.IsServerFault(err):
			return nil, MarkTransient(err)
		default:
			return nil, err
		}
	}

	return &Response{
		Text: out.Text,
		Data: map[string]any{
			"model_id":      out.ModelID,
			"input_tokens":  out.InputTokens,
			"output_tokens": out.OutputTokens,
		},
	}, nil
}
