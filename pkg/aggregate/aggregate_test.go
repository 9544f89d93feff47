package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
)

func ingestPlaybook(agents map[string]*configstore.AgentDefinition) *playbook.Resolved {
	nodes := make([]string, 0, len(agents))
	for id := range agents {
		nodes = append(nodes, id)
	}
	return &playbook.Resolved{
		JobType: models.JobTypeIngest,
		Nodes:   nodes,
		Agents:  agents,
	}
}

func ingestionAgent(id string, weight float64, schema map[string]string) *configstore.AgentDefinition {
	return &configstore.AgentDefinition{
		AgentID:      id,
		AgentClass:   configstore.AgentClassIngestion,
		Weight:       weight,
		OutputSchema: schema,
	}
}

func completed(id string, conf float64) models.AgentResult {
	return models.AgentResult{
		AgentID:    id,
		Status:     models.AgentStatusCompleted,
		Confidence: models.Float64Ptr(conf),
	}
}

func TestDecide_HighConfidenceCompletes(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo":      ingestionAgent("geo", 1, nil),
		"temporal": ingestionAgent("temporal", 1, nil),
	})
	d := Decide(pb, []models.AgentResult{
		completed("geo", 0.95),
		completed("temporal", 0.92),
	}, configstore.Thresholds{})

	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.False(t, d.NeedsReview)
	assert.False(t, d.LowConfidence)
	assert.InDelta(t, 0.935, d.JobConfidence, 1e-9)
}

func TestDecide_MidBandNeedsReview(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo": ingestionAgent("geo", 1, nil),
	})
	d := Decide(pb, []models.AgentResult{completed("geo", 0.7)}, configstore.Thresholds{})

	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.True(t, d.NeedsReview)
}

func TestDecide_TiesFavourCompletion(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo": ingestionAgent("geo", 1, nil),
	})

	// Exactly at the complete threshold: complete without review.
	d := Decide(pb, []models.AgentResult{completed("geo", 0.9)}, configstore.Thresholds{})
	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.False(t, d.NeedsReview)

	// Exactly at the clarify threshold: complete with review, no clarification.
	d = Decide(pb, []models.AgentResult{completed("geo", 0.6)}, configstore.Thresholds{})
	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.True(t, d.NeedsReview)
}

func TestDecide_WeightedMean(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"heavy": ingestionAgent("heavy", 3, nil),
		"light": ingestionAgent("light", 1, nil),
	})
	d := Decide(pb, []models.AgentResult{
		completed("heavy", 1.0),
		completed("light", 0.5),
	}, configstore.Thresholds{})

	// (3*1.0 + 1*0.5) / 4 = 0.875
	assert.InDelta(t, 0.875, d.JobConfidence, 1e-9)
	assert.True(t, d.NeedsReview)
}

func TestDecide_IngestClarification(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo": ingestionAgent("geo", 1, map[string]string{
			"location": "string", "confidence": "number",
		}),
		"temporal": ingestionAgent("temporal", 1, map[string]string{
			"duration": "string", "confidence": "number",
		}),
	})
	d := Decide(pb, []models.AgentResult{
		completed("geo", 0.3),
		completed("temporal", 0.4),
	}, configstore.Thresholds{})

	assert.Equal(t, models.JobStatusAwaitingClarification, d.Status)
	assert.Equal(t, []string{"duration", "location"}, d.ClarificationFields)
}

func TestDecide_FailureDrivenLowConfidenceDoesNotClarify(t *testing.T) {
	// One agent failed outright, the other is confident. Re-asking the user
	// cannot fix a tool outage, so the job completes as low confidence.
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo": ingestionAgent("geo", 1, map[string]string{
			"location": "string", "confidence": "number",
		}),
		"temporal": ingestionAgent("temporal", 1, map[string]string{
			"duration": "string", "confidence": "number",
		}),
	})
	d := Decide(pb, []models.AgentResult{
		{AgentID: "geo", Status: models.AgentStatusFailed},
		completed("temporal", 0.9),
	}, configstore.Thresholds{})

	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.True(t, d.LowConfidence)
	assert.Empty(t, d.ClarificationFields)
}

func TestDecide_QueryNeverClarifies(t *testing.T) {
	pb := &playbook.Resolved{
		JobType: models.JobTypeQuery,
		Nodes:   []string{"what"},
		Agents: map[string]*configstore.AgentDefinition{
			"what": {
				AgentID:    "what",
				AgentClass: configstore.AgentClassQuery,
				Weight:     1,
				OutputSchema: map[string]string{
					"answer": "string", "confidence": "number",
				},
			},
		},
	}
	d := Decide(pb, []models.AgentResult{completed("what", 0.2)}, configstore.Thresholds{})

	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.True(t, d.LowConfidence)
	assert.Empty(t, d.ClarificationFields)
}

func TestDecide_DomainThresholdOverrides(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo": ingestionAgent("geo", 1, nil),
	})
	th := configstore.Thresholds{Complete: 0.5, Clarify: 0.3}

	d := Decide(pb, []models.AgentResult{completed("geo", 0.55)}, th)
	assert.Equal(t, models.JobStatusComplete, d.Status)
	assert.False(t, d.NeedsReview)
}

func TestDecide_ParseFailedCountsAsZero(t *testing.T) {
	pb := ingestPlaybook(map[string]*configstore.AgentDefinition{
		"geo":    ingestionAgent("geo", 1, nil),
		"entity": ingestionAgent("entity", 1, nil),
	})
	d := Decide(pb, []models.AgentResult{
		{AgentID: "geo", Status: models.AgentStatusParseFailed, Confidence: models.Float64Ptr(0)},
		completed("entity", 1.0),
	}, configstore.Thresholds{})

	assert.InDelta(t, 0.5, d.JobConfidence, 1e-9)
}
