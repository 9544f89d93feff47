package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intakehq/intake/pkg/llm"
)

const classifierPrompt = `Classify the text below into descriptive labels.
Respond with JSON only, matching exactly:
{"labels": ["<label>", ...], "scores": [<0..1>, ...]}
labels and scores are parallel arrays ordered by descending score.

Text:
`

// ClassifierTool labels free text. LLM-backed like the geocoder; the broker
// accepts any replacement registered under the "classifier" name.
type ClassifierTool struct {
	client llm.Client
}

// NewClassifierTool creates the built-in classifier provider.
func NewClassifierTool(client llm.Client) *ClassifierTool {
	return &ClassifierTool{client: client}
}

// Invoke returns {labels[], scores[]} in Data.
func (t *ClassifierTool) Invoke(ctx context.Context, req *Request) (*Response, error) {
	out, err := t.client.Generate(ctx, &llm.GenerateInput{
		UserPrompt:  classifierPrompt + req.Input,
		Temperature: 0,
	})
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

	var parsed struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(out.Text), &parsed); err != nil {
		return nil, fmt.Errorf("classifier returned unparseable response: %w", err)
	}
	return &Response{
		Text: out.Text,
		Data: map[string]any{"labels": parsed.Labels, "scores": parsed.Scores},
	}, nil
}
