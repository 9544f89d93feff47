// Package aggregate turns a job's per-agent results into an overall
// disposition: complete, complete-with-review, low-confidence, or a
// clarification request.
package aggregate

import (
	"sort"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/playbook"
)

// System default thresholds; domains may override either one.
const (
	DefaultCompleteThreshold = 0.9
	DefaultClarifyThreshold  = 0.6
)

// Decision is the aggregated job disposition.
type Decision struct {
	Status        models.JobStatus
	JobConfidence float64
	NeedsReview   bool
	LowConfidence bool

	// ClarificationFields is set only when Status is awaiting_clarification:
	// the sorted union of schema keys the low-confidence agents own.
	ClarificationFields []string
}

// Decide computes the weighted-mean job confidence and applies the domain's
// thresholds. Ties break in favour of completion (>= on both boundaries).
//
// A clarification is raised only for ingest jobs and only when at least one
// ingestion agent completed with confidence below the clarify threshold;
// a job dragged down purely by agent failures completes with low_confidence
// instead, since re-asking the user cannot fix a tool outage.
func Decide(pb *playbook.Resolved, results []models.AgentResult, th configstore.Thresholds) Decision {
	complete := th.Complete
	if complete <= 0 {
		complete = DefaultCompleteThreshold
	}
	clarify := th.Clarify
	if clarify <= 0 {
		clarify = DefaultClarifyThreshold
	}

	d := Decision{JobConfidence: jobConfidence(pb, results)}

	switch {
	case d.JobConfidence >= complete:
		d.Status = models.JobStatusComplete

	case d.JobConfidence >= clarify:
		d.Status = models.JobStatusComplete
		d.NeedsReview = true

	default:
		fields := clarificationFields(pb, results, clarify)
		if pb.JobType == models.JobTypeIngest && len(fields) > 0 {
			d.Status = models.JobStatusAwaitingClarification
			d.ClarificationFields = fields
			return d
		}
		d.Status = models.JobStatusComplete
		d.LowConfidence = true
	}
	return d
}

// jobConfidence is the weighted mean of per-agent confidences. Non-completed
// agents contribute 0. A missing or non-positive weight counts as the
// default 1; an all-zero total yields 0.
func jobConfidence(pb *playbook.Resolved, results []models.AgentResult) float64 {
	var sum, total float64
	for i := range results {
		r := &results[i]
		w := 1.0
		if def := pb.Agents[r.AgentID]; def != nil && def.Weight > 0 {
			w = def.Weight
		}
		sum += w * r.ConfidenceOrZero()
		total += w
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// clarificationFields collects the schema keys of ingestion agents that
// completed below the clarify threshold. The confidence key itself is not a
// user-facing field.
func clarificationFields(pb *playbook.Resolved, results []models.AgentResult, clarify float64) []string {
	set := map[string]struct{}{}
	for i := range results {
		r := &results[i]
		if r.Status != models.AgentStatusCompleted || r.ConfidenceOrZero() >= clarify {
			continue
		}
		def := pb.Agents[r.AgentID]
		if def == nil || def.AgentClass != configstore.AgentClassIngestion {
			continue
		}
		for key := range def.OutputSchema {
			if key == configstore.ConfidenceKey {
				continue
			}
			set[key] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	fields := make([]string, 0, len(set))
	for f := range set {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
