package models

// Edge is a dependency between two playbook nodes: To runs after From.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Playbook is a directed acyclic graph of agent ids. An empty node set means
// the playbook is disabled.
type Playbook struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Disabled reports whether the playbook has no nodes.
func (p *Playbook) Disabled() bool { return len(p.Nodes) == 0 }

// Thresholds are the per-domain confidence decision overrides.
// Zero values mean "use the system defaults".
type Thresholds struct {
	Complete float64 `json:"complete,omitempty"`
	Clarify  float64 `json:"clarify,omitempty"`
}
