package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput_StrictJSON(t *testing.T) {
	out, ok := ParseOutput(`{"label": "pothole", "confidence": 0.9}`)
	require.True(t, ok)
	assert.Equal(t, "pothole", out["label"])
	assert.Equal(t, 0.9, out["confidence"])
}

func TestParseOutput_RescuesWrappedJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"prose prefix", `Sure, here is the result: {"label": "pothole", "confidence": 0.9}`},
		{"code fence", "```json\n{\"label\": \"pothole\", \"confidence\": 0.9}\n```"},
		{"prose both sides", `The answer is {"label": "pothole", "confidence": 0.9}. Let me know!`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := ParseOutput(tt.text)
			require.True(t, ok)
			assert.Equal(t, "pothole", out["label"])
		})
	}
}

func TestParseOutput_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no braces", "I cannot answer that."},
		{"broken json", `{"label": "pothole",`},
		{"json array", `[1, 2, 3]`},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseOutput(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestValidateOutput_DropsUnknownKeys(t *testing.T) {
	schema := map[string]string{"label": "string", "confidence": "number"}
	out, conf := ValidateOutput(schema, map[string]any{
		"label":      "pothole",
		"confidence": 0.8,
		"reasoning":  "the text mentions a hole in the road",
	}, DefaultLLMConfidence)

	assert.Equal(t, map[string]any{"label": "pothole"}, out)
	assert.Equal(t, 0.8, conf)
}

func TestValidateOutput_ZeroValuesForMissingKeys(t *testing.T) {
	schema := map[string]string{
		"label":      "string",
		"score":      "number",
		"urgent":     "boolean",
		"tags":       "array",
		"details":    "object",
		"confidence": "number",
	}
	out, conf := ValidateOutput(schema, map[string]any{}, DefaultLLMConfidence)

	assert.Equal(t, "", out["label"])
	assert.Equal(t, 0.0, out["score"])
	assert.Equal(t, false, out["urgent"])
	assert.Equal(t, []any{}, out["tags"])
	assert.Equal(t, map[string]any{}, out["details"])
	assert.NotContains(t, out, "confidence")
	assert.Equal(t, DefaultLLMConfidence, conf)
}

func TestValidateOutput_CoercesStringNumbers(t *testing.T) {
	schema := map[string]string{"score": "number", "confidence": "number"}
	out, conf := ValidateOutput(schema, map[string]any{
		"score":      "8.5",
		"confidence": "0.75",
	}, DefaultLLMConfidence)

	assert.Equal(t, 8.5, out["score"])
	assert.Equal(t, 0.75, conf)
}

func TestValidateOutput_WrongTypesFallToZero(t *testing.T) {
	schema := map[string]string{"label": "string", "score": "number"}
	out, _ := ValidateOutput(schema, map[string]any{
		"label": 42,
		"score": "not a number",
	}, DefaultLLMConfidence)

	assert.Equal(t, "", out["label"])
	assert.Equal(t, 0.0, out["score"])
}

func TestValidateOutput_ClampsConfidence(t *testing.T) {
	schema := map[string]string{"confidence": "number"}

	_, conf := ValidateOutput(schema, map[string]any{"confidence": 1.7}, DefaultLLMConfidence)
	assert.Equal(t, 1.0, conf)

	_, conf = ValidateOutput(schema, map[string]any{"confidence": -0.2}, DefaultLLMConfidence)
	assert.Equal(t, 0.0, conf)

	// Non-numeric confidence counts as absent.
	_, conf = ValidateOutput(schema, map[string]any{"confidence": "very sure"}, DefaultLLMConfidence)
	assert.Equal(t, DefaultLLMConfidence, conf)
}
