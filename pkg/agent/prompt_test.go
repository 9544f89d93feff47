package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

func promptAgent() *configstore.AgentDefinition {
	return &configstore.AgentDefinition{
		AgentID:      "geo",
		SystemPrompt: "You extract locations.",
		Tools:        []string{"llm"},
		OutputSchema: map[string]string{
			"location":   "string",
			"confidence": "number",
		},
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	in := &Input{
		Job: models.JobInput{
			Text:    "Pothole on Main Street",
			Filters: map[string]any{"b": 2, "a": 1, "c": 3},
		},
		ParentOutputs: map[string]map[string]any{
			"zeta":  {"z": 1},
			"alpha": {"a": 1},
		},
	}

	first := BuildPrompt(promptAgent(), in)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt(promptAgent(), in))
	}

	// Parents and map keys appear sorted.
	assert.Less(t, strings.Index(first, "alpha:"), strings.Index(first, "zeta:"))
	assert.Less(t, strings.Index(first, `"a"`), strings.Index(first, `"b"`))
}

func TestBuildPrompt_Sections(t *testing.T) {
	in := &Input{
		Job: models.JobInput{Text: "Pothole on Main Street"},
		ParentOutputs: map[string]map[string]any{
			"severity": {"score": 8.0},
			"broken":   nil,
		},
	}

	prompt := BuildPrompt(promptAgent(), in)

	assert.Contains(t, prompt, "## Task input")
	assert.Contains(t, prompt, "text: Pothole on Main Street")
	assert.Contains(t, prompt, "## Upstream agent outputs")
	assert.Contains(t, prompt, `severity: {"score":8}`)
	assert.Contains(t, prompt, "broken: null")
	assert.Contains(t, prompt, "## Response format")
	assert.Contains(t, prompt, `"location": string`)
	assert.Contains(t, prompt, `"confidence": number`)
}

func TestBuildPrompt_QueryWithRecords(t *testing.T) {
	in := &Input{
		Job: models.JobInput{Question: "Any potholes downtown?"},
		Records: []map[string]any{
			{"_id": "r1", "status": "open"},
		},
	}

	prompt := BuildPrompt(promptAgent(), in)
	assert.Contains(t, prompt, "question: Any potholes downtown?")
	assert.Contains(t, prompt, "## Records")
	assert.Contains(t, prompt, `"_id":"r1"`)
}

func TestBuildPrompt_ConfidenceDemandedEvenWhenNotInSchema(t *testing.T) {
	def := promptAgent()
	def.OutputSchema = map[string]string{"location": "string"}

	prompt := BuildPrompt(def, &Input{Job: models.JobInput{Text: "x"}})
	assert.Contains(t, prompt, `"confidence": number`)
}
