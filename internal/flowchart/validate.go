package flowchart

import (
	"fmt"
	"strings"
)

// ValidationError reports why a graph violates the structural invariants.
// A delegated graph failing validation is discarded, never partially used.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "invalid flowchart: " + strings.Join(e.Reasons, "; ")
}

// Validate checks the structural invariants: single START first, single END,
// labels on every node, Yes/No pairs on branch nodes, at least one outgoing
// edge on every non-END node, full reachability from START, and END reachable
// from every node.
func (g *Graph) Validate() error {
	var reasons []string

	if len(g.Nodes) == 0 {
		return &ValidationError{Reasons: []string{"graph has no nodes"}}
	}

	var startID, endID string
	starts, ends := 0, 0
	seen := make(map[string]bool, len(g.Nodes))

	for _, n := range g.Nodes {
		if seen[n.ID] {
			reasons = append(reasons, fmt.Sprintf("duplicate node id %q", n.ID))
		}
		seen[n.ID] = true

		if n.Label == "" {
			reasons = append(reasons, fmt.Sprintf("node %q has no label", n.ID))
		}

		switch n.Kind {
		case KindStart:
			starts++
			startID = n.ID
		case KindEnd:
			ends++
			endID = n.ID
		}
	}

	if starts != 1 {
		reasons = append(reasons, fmt.Sprintf("expected exactly one START node, got %d", starts))
	} else if g.Nodes[0].Kind != KindStart {
		reasons = append(reasons, "START node is not first")
	}
	if ends != 1 {
		reasons = append(reasons, fmt.Sprintf("expected exactly one END node, got %d", ends))
	}

	for _, e := range g.Edges {
		if !seen[e.From] {
			reasons = append(reasons, fmt.Sprintf("edge from unknown node %q", e.From))
		}
		if !seen[e.To] {
			reasons = append(reasons, fmt.Sprintf("edge to unknown node %q", e.To))
		}
	}

	for _, n := range g.Nodes {
		out := g.Outgoing(n.ID)

		switch n.Kind {
		case KindEnd:
			if len(out) != 0 {
				reasons = append(reasons, fmt.Sprintf("END node %q has outgoing edges", n.ID))
			}
		case KindDecision, KindLoopCheck:
			if len(out) != 2 || !hasBranchLabels(out) {
				reasons = append(reasons, fmt.Sprintf("branch node %q must have exactly Yes and No edges", n.ID))
			}
		default:
			if len(out) < 1 {
				reasons = append(reasons, fmt.Sprintf("node %q has no outgoing edge", n.ID))
			}
			for _, e := range out {
				if e.Label != "" {
					reasons = append(reasons, fmt.Sprintf("non-branch node %q owns a labeled edge", n.ID))
				}
			}
		}
	}

	if starts == 1 {
		if unreached := g.unreachableFrom(startID, false); len(unreached) > 0 {
			reasons = append(reasons, fmt.Sprintf("nodes unreachable from START: %s", strings.Join(unreached, ", ")))
		}
	}
	if ends == 1 {
		if stranded := g.unreachableFrom(endID, true); len(stranded) > 0 {
			reasons = append(reasons, fmt.Sprintf("nodes that never reach END: %s", strings.Join(stranded, ", ")))
		}
	}

	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

func hasBranchLabels(edges []Edge) bool {
	var yes, no bool
	for _, e := range edges {
		switch e.Label {
		case "Yes":
			yes = true
		case "No":
			no = true
		}
	}
	return yes && no
}

// unreachableFrom runs a BFS from the given node, following edges forward or
// (reverse=true) backward, and returns the IDs it never visits.
func (g *Graph) unreachableFrom(id string, reverse bool) []string {
	visited := map[string]bool{id: true}
	queue := []string{id}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range g.Edges {
			next := ""
			if !reverse && e.From == current {
				next = e.To
			} else if reverse && e.To == current {
				next = e.From
			}
			if next != "" && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	var missing []string
	for _, n := range g.Nodes {
		if !visited[n.ID] {
			missing = append(missing, n.ID)
		}
	}
	return missing
}
