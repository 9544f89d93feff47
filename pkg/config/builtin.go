package config

import (
	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/tool"
)

// BuiltinDefinitions returns the compiled-in system-tenant agents and
// domains. They are seeded under the "system" tenant on every startup;
// tenant-scoped rows with the same ids override them at resolution time.
func BuiltinDefinitions() ([]*configstore.AgentDefinition, []*configstore.DomainDefinition) {
	agents := []*configstore.AgentDefinition{
		{
			AgentID:    "geo_extractor",
			AgentName:  "Geographic extractor",
			AgentClass: configstore.AgentClassIngestion,
			SystemPrompt: "You extract the geographic location a report refers to. " +
				"Answer with the most specific place the text supports.",
			Tools:        []string{tool.NameLLM, tool.NameGeocoder},
			OutputSchema: map[string]string{"location": "string", "confidence": "number"},
			Weight:       1,
			Version:      1,
		},
		{
			AgentID:    "temporal_extractor",
			AgentName:  "Temporal extractor",
			AgentClass: configstore.AgentClassIngestion,
			SystemPrompt: "You extract when an issue started and how long it has " +
				"persisted.",
			Tools:        []string{tool.NameLLM},
			OutputSchema: map[string]string{"onset": "string", "duration": "string", "confidence": "number"},
			Weight:       1,
			Version:      1,
		},
		{
			AgentID:    "entity_extractor",
			AgentName:  "Entity extractor",
			AgentClass: configstore.AgentClassIngestion,
			SystemPrompt: "You classify the subject of a report into a category " +
				"and name the entities involved.",
			Tools:        []string{tool.NameLLM, tool.NameClassifier},
			OutputSchema: map[string]string{"category": "string", "entities": "array", "confidence": "number"},
			Weight:       1,
			Version:      1,
		},
		{
			AgentID:    "severity_assessor",
			AgentName:  "Severity assessor",
			AgentClass: configstore.AgentClassIngestion,
			SystemPrompt: "You rate the severity of a reported issue from 1 to 10 " +
				"given the extracted category and location.",
			Tools:        []string{tool.NameLLM},
			OutputSchema: map[string]string{"severity": "number", "rationale": "string", "confidence": "number"},
			Weight:       1,
			Version:      1,
		},
		{
			AgentID:    "record_responder",
			AgentName:  "Record responder",
			AgentClass: configstore.AgentClassQuery,
			SystemPrompt: "You answer a question using only the candidate records " +
				"provided. Cite record ids in references.",
			Tools:        []string{tool.NameLLM},
			OutputSchema: map[string]string{"summary": "string", "references": "array", "confidence": "number"},
			Weight:       1,
			Version:      1,
		},
		{
			AgentID:    "record_updater",
			AgentName:  "Record updater",
			AgentClass: configstore.AgentClassManagement,
			SystemPrompt: "You apply the requested change to the target record and " +
				"summarise what changed.",
			Tools:        []string{tool.NameLLM},
			OutputSchema: map[string]string{"summary": "string", "changes": "object", "confidence": "number"},
			Weight:       1,
			Strict:       true,
			Version:      1,
		},
	}

	domains := []*configstore.DomainDefinition{
		{
			DomainID:   "civic_complaints",
			DomainName: "Civic complaints",
			Ingestion: configstore.Playbook{
				Nodes: []string{"geo_extractor", "temporal_extractor", "entity_extractor", "severity_assessor"},
				Edges: []configstore.Edge{
					{From: "entity_extractor", To: "severity_assessor"},
					{From: "geo_extractor", To: "severity_assessor"},
				},
			},
			Query:      configstore.Playbook{Nodes: []string{"record_responder"}},
			Management: configstore.Playbook{Nodes: []string{"record_updater"}},
		},
	}

	return agents, domains
}
