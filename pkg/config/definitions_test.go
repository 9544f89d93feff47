package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/configstore"
)

func TestBuiltinDefinitionsDeclareConfidence(t *testing.T) {
	agents, domains := BuiltinDefinitions()
	require.NotEmpty(t, agents)
	require.NotEmpty(t, domains)

	for _, a := range agents {
		assert.Contains(t, a.OutputSchema, configstore.ConfidenceKey, "agent %s", a.AgentID)
		assert.LessOrEqual(t, len(a.OutputSchema), configstore.MaxOutputKeys, "agent %s", a.AgentID)
		assert.NotEmpty(t, a.Tools, "agent %s", a.AgentID)
	}
}

func TestBuiltinDomainReferencesKnownAgents(t *testing.T) {
	agents, domains := BuiltinDefinitions()
	known := map[string]bool{}
	for _, a := range agents {
		known[a.AgentID] = true
	}
	for _, d := range domains {
		for _, pb := range []configstore.Playbook{d.Ingestion, d.Query, d.Management} {
			for _, node := range pb.Nodes {
				assert.True(t, known[node], "domain %s references unknown agent %s", d.DomainID, node)
			}
		}
	}
}

func TestLoadDefinitionsMissingDirYieldsBuiltins(t *testing.T) {
	agents, domains, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	builtinAgents, builtinDomains := BuiltinDefinitions()
	assert.Len(t, agents, len(builtinAgents))
	assert.Len(t, domains, len(builtinDomains))
}

func TestLoadDefinitionsMergesAndOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
agents:
  - agent_id: noise_extractor
    agent_name: Noise extractor
    agent_class: ingestion
    system_prompt: Extract the noise source.
    tools: [llm]
    output_schema:
      source: string
      confidence: number
  - agent_id: geo_extractor
    agent_name: Overridden geo
    agent_class: ingestion
    system_prompt: Custom geo prompt.
    tools: [llm]
    output_schema:
      location: string
      confidence: number
    weight: 2
domains:
  - domain_id: noise_reports
    domain_name: Noise reports
    ingestion:
      nodes: [noise_extractor]
    thresholds:
      complete: 0.85
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noise.yaml"), []byte(content), 0o644))

	agents, domains, err := LoadDefinitions(dir)
	require.NoError(t, err)

	byID := map[string]*configstore.AgentDefinition{}
	for _, a := range agents {
		byID[a.AgentID] = a
	}
	require.Contains(t, byID, "noise_extractor")
	require.Contains(t, byID, "geo_extractor")
	assert.Equal(t, "Overridden geo", byID["geo_extractor"].AgentName)
	assert.Equal(t, 2.0, byID["geo_extractor"].Weight)

	domainIDs := map[string]*configstore.DomainDefinition{}
	for _, d := range domains {
		domainIDs[d.DomainID] = d
	}
	require.Contains(t, domainIDs, "noise_reports")
	require.Contains(t, domainIDs, "civic_complaints")
	assert.InDelta(t, 0.85, domainIDs["noise_reports"].Thresholds.Complete, 1e-9)
}

func TestLoadDefinitionsRejectsBadAgent(t *testing.T) {
	dir := t.TempDir()

	noConfidence := `
agents:
  - agent_id: broken
    agent_class: ingestion
    output_schema:
      value: string
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(noConfidence), 0o644))
	_, _, err := LoadDefinitions(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confidence")

	badClass := `
agents:
  - agent_id: broken
    agent_class: wizard
    output_schema:
      confidence: number
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(badClass), 0o644))
	_, _, err = LoadDefinitions(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent_class")
}

func TestLoadDefinitionsDefaultsWeight(t *testing.T) {
	dir := t.TempDir()
	content := `
agents:
  - agent_id: weightless
    agent_class: query
    output_schema:
      answer: string
      confidence: number
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "w.yaml"), []byte(content), 0o644))

	agents, _, err := LoadDefinitions(dir)
	require.NoError(t, err)
	for _, a := range agents {
		if a.AgentID == "weightless" {
			assert.Equal(t, 1.0, a.Weight)
			return
		}
	}
	t.Fatal("weightless agent not loaded")
}
