// Package agent executes a single agent definition: deterministic prompt
// assembly, tool invocation through the broker with retries, and robust
// parsing/validation of the tool's output against the agent's schema.
package agent

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
)

// Input is the bundle an agent executes over: the job's user input, any
// records loaded for query/management jobs, and the outputs of upstream
// agents. A nil entry in ParentOutputs marks a parent that failed.
type Input struct {
	TenantID      string
	JobID         string
	Job           models.JobInput
	Records       []map[string]any
	ParentOutputs map[string]map[string]any
}

// BuildPrompt renders the user-facing half of the agent's prompt. The format
// is fixed so a given input always yields the same string: sections appear in
// a set order and every serialised map has lexicographically sorted keys
// (encoding/json sorts map keys). Replays of the same job produce the same
// prompt byte for byte.
//
// Layout:
//
//	## Task input
//	text: <text>
//	question: <question>
//	record_id: <id>
//	filters: <json>
//	clarification_answers: <json>
//
//	## Records            (query/management only, one JSON doc per line)
//
//	## Upstream agent outputs
//	<agent_id>: <json or null>
//
//	## Response format
//	<schema restatement>
func BuildPrompt(def *configstore.AgentDefinition, in *Input) string {
	var b strings.Builder

	b.WriteString("## Task input\n")
	if in.Job.Text != "" {
		fmt.Fprintf(&b, "text: %s\n", in.Job.Text)
	}
	if in.Job.Question != "" {
		fmt.Fprintf(&b, "question: %s\n", in.Job.Question)
	}
	if in.Job.RecordID != "" {
		fmt.Fprintf(&b, "record_id: %s\n", in.Job.RecordID)
	}
	if len(in.Job.Filters) > 0 {
		fmt.Fprintf(&b, "filters: %s\n", mustJSON(in.Job.Filters))
	}
	if len(in.Job.ClarificationAnswers) > 0 {
		fmt.Fprintf(&b, "clarification_answers: %s\n", mustJSON(in.Job.ClarificationAnswers))
	}

	if len(in.Records) > 0 {
		b.WriteString("\n## Records\n")
		for _, rec := range in.Records {
			fmt.Fprintf(&b, "%s\n", mustJSON(rec))
		}
	}

	if len(in.ParentOutputs) > 0 {
		b.WriteString("\n## Upstream agent outputs\n")
		for _, id := range sortedParentIDs(in.ParentOutputs) {
			out := in.ParentOutputs[id]
			if out == nil {
				fmt.Fprintf(&b, "%s: null\n", id)
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", id, mustJSON(out))
		}
	}

	b.WriteString("\n## Response format\n")
	b.WriteString("Respond with a single JSON object and nothing else. Keys:\n")
	for _, key := range sortedSchemaKeys(def.OutputSchema) {
		fmt.Fprintf(&b, "- %q: %s\n", key, def.OutputSchema[key])
	}
	if _, ok := def.OutputSchema[configstore.ConfidenceKey]; !ok {
		fmt.Fprintf(&b, "- %q: number\n", configstore.ConfidenceKey)
	}
	fmt.Fprintf(&b, "The %q value must be a number between 0 and 1 rating how certain you are.\n", configstore.ConfidenceKey)

	return b.String()
}

func sortedParentIDs(m map[string]map[string]any) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedSchemaKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
