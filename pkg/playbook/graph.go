package playbook

import (
	"fmt"

	"github.com/intakehq/intake/pkg/configstore"
)

// validateGraph checks the stored playbook invariants: no duplicate nodes,
// every edge endpoint present, and no cycles (Kahn's algorithm, O(V+E)).
func validateGraph(nodes []string, edges []configstore.Edge) error {
	present := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if present[n] {
			return fmt.Errorf("%w: duplicate node %q", ErrInvalidGraph, n)
		}
		present[n] = true
	}

	indeg := make(map[string]int, len(nodes))
	children := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if !present[e.From] {
			return fmt.Errorf("%w: edge references unknown node %q", ErrInvalidGraph, e.From)
		}
		if !present[e.To] {
			return fmt.Errorf("%w: edge references unknown node %q", ErrInvalidGraph, e.To)
		}
		indeg[e.To]++
		children[e.From] = append(children[e.From], e.To)
	}

	queue := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if indeg[n] == 0 {
			queue = append(queue, n)
		}
	}

	processed := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		processed++
		for _, c := range children[n] {
			indeg[c]--
			if indeg[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	if processed != len(nodes) {
		return fmt.Errorf("%w: cycle detected", ErrInvalidGraph)
	}
	return nil
}
