package flowchart

// NodeKind is the structural role of a graph node.
type NodeKind int

const (
	KindStart NodeKind = iota
	KindProcess
	KindDecision
	KindLoopCheck
	KindEnd
)

func (k NodeKind) String() string {
	switch k {
	case KindStart:
		return "START"
	case KindDecision:
		return "DECISION"
	case KindLoopCheck:
		return "LOOP_CHECK"
	case KindEnd:
		return "END"
	default:
		return "PROCESS"
	}
}

// Node is one flowchart node. IDs are assigned in traversal order and are
// unique within a graph.
type Node struct {
	ID    string
	Kind  NodeKind
	Label string
}

// Edge connects two nodes by ID. Only DECISION and LOOP_CHECK nodes own
// labeled outgoing edges, always exactly "Yes"/"No".
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is an ordered node list plus edge list. A valid graph has exactly one
// START node (first), exactly one END node, a Yes/No pair on every branch
// node, and every node reachable from START with END reachable from every
// node.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Outgoing returns the edges leaving the given node, in edge-list order.
func (g *Graph) Outgoing(id string) []Edge {
	var out []Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// NodeByID returns the node with the given ID, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}
