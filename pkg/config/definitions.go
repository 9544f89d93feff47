package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/intakehq/intake/pkg/configstore"
)

// definitionsFile is the YAML shape of one file in the definitions
// directory. Agents and domains defined here are seeded alongside the
// builtins; ids colliding with a builtin override it.
type definitionsFile struct {
	Agents  []agentYAML  `yaml:"agents"`
	Domains []domainYAML `yaml:"domains"`
}

type agentYAML struct {
	AgentID      string            `yaml:"agent_id"`
	AgentName    string            `yaml:"agent_name"`
	AgentClass   string            `yaml:"agent_class"`
	SystemPrompt string            `yaml:"system_prompt"`
	Tools        []string          `yaml:"tools"`
	OutputSchema map[string]string `yaml:"output_schema"`
	Weight       float64           `yaml:"weight"`
	Strict       bool              `yaml:"strict"`
}

type domainYAML struct {
	DomainID   string                 `yaml:"domain_id"`
	DomainName string                 `yaml:"domain_name"`
	Ingestion  playbookYAML           `yaml:"ingestion"`
	Query      playbookYAML           `yaml:"query"`
	Management playbookYAML           `yaml:"management"`
	Thresholds configstore.Thresholds `yaml:"thresholds"`
}

type playbookYAML struct {
	Nodes []string           `yaml:"nodes"`
	Edges []configstore.Edge `yaml:"edges"`
}

// LoadDefinitions returns the compiled-in builtins merged with any YAML
// definition files under dir. An empty dir, or one that does not exist,
// yields the builtins unchanged. Files load in lexical order; later files
// override earlier ones by id.
func LoadDefinitions(dir string) ([]*configstore.AgentDefinition, []*configstore.DomainDefinition, error) {
	agents, domains := BuiltinDefinitions()
	if dir == "" {
		return agents, domains, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return agents, domains, nil
		}
		return nil, nil, fmt.Errorf("reading definitions dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	agentsByID := make(map[string]*configstore.AgentDefinition, len(agents))
	for _, a := range agents {
		agentsByID[a.AgentID] = a
	}
	domainsByID := make(map[string]*configstore.DomainDefinition, len(domains))
	for _, d := range domains {
		domainsByID[d.DomainID] = d
	}

	for _, name := range files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var file definitionsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, a := range file.Agents {
			def, err := a.toDefinition()
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", path, err)
			}
			agentsByID[def.AgentID] = def
		}
		for _, d := range file.Domains {
			def, err := d.toDefinition()
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", path, err)
			}
			domainsByID[def.DomainID] = def
		}
	}

	return sortedAgents(agentsByID), sortedDomains(domainsByID), nil
}

func (a agentYAML) toDefinition() (*configstore.AgentDefinition, error) {
	if a.AgentID == "" {
		return nil, fmt.Errorf("agent with empty agent_id")
	}
	class := configstore.AgentClass(a.AgentClass)
	switch class {
	case configstore.AgentClassIngestion, configstore.AgentClassQuery, configstore.AgentClassManagement:
	default:
		return nil, fmt.Errorf("agent %s: unknown agent_class %q", a.AgentID, a.AgentClass)
	}
	if len(a.OutputSchema) > configstore.MaxOutputKeys {
		return nil, fmt.Errorf("agent %s: output_schema exceeds %d keys", a.AgentID, configstore.MaxOutputKeys)
	}
	if _, ok := a.OutputSchema[configstore.ConfidenceKey]; !ok {
		return nil, fmt.Errorf("agent %s: output_schema must declare %q", a.AgentID, configstore.ConfidenceKey)
	}
	weight := a.Weight
	if weight <= 0 {
		weight = 1
	}
	return &configstore.AgentDefinition{
		AgentID:      a.AgentID,
		AgentName:    a.AgentName,
		AgentClass:   class,
		SystemPrompt: a.SystemPrompt,
		Tools:        a.Tools,
		OutputSchema: a.OutputSchema,
		Weight:       weight,
		Strict:       a.Strict,
		Version:      1,
	}, nil
}

func (d domainYAML) toDefinition() (*configstore.DomainDefinition, error) {
	if d.DomainID == "" {
		return nil, fmt.Errorf("domain with empty domain_id")
	}
	return &configstore.DomainDefinition{
		DomainID:   d.DomainID,
		DomainName: d.DomainName,
		Ingestion:  configstore.Playbook{Nodes: d.Ingestion.Nodes, Edges: d.Ingestion.Edges},
		Query:      configstore.Playbook{Nodes: d.Query.Nodes, Edges: d.Query.Edges},
		Management: configstore.Playbook{Nodes: d.Management.Nodes, Edges: d.Management.Edges},
		Thresholds: d.Thresholds,
	}, nil
}

func sortedAgents(m map[string]*configstore.AgentDefinition) []*configstore.AgentDefinition {
	out := make([]*configstore.AgentDefinition, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}

func sortedDomains(m map[string]*configstore.DomainDefinition) []*configstore.DomainDefinition {
	out := make([]*configstore.DomainDefinition, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DomainID < out[j].DomainID })
	return out
}
