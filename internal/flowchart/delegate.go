package flowchart

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

const dotPrompt = `You are a senior business analyst. You have received all the classified steps for an automation process. Generate a Graphviz DOT flowchart for this process.

The steps have been pre-classified:
- Regular steps -> box nodes
- [DECISION] steps -> diamond nodes with Yes/No branches
- [LOOP] steps -> must have a loop-back arrow (a "More Items?" diamond that loops back)
- [END PHASE] steps -> these come near the end before the End node

CLASSIFIED STEPS:
%s

FLOWCHART RULES:
1. Start with a Start node (oval, green) and end with an End node (oval, red)
2. Every node MUST have: label="Short Description" (max 5-6 words)
3. Regular steps: shape=box, fillcolor=lightblue
4. Decisions: shape=diamond, fillcolor=gold, with Yes/No edge labels
5. After a [LOOP] step, add a decision diamond "More Items?" that loops back to the loop step on "Yes" and continues forward on "No"
6. Edges between regular steps have NO labels
7. Every path must reach the End node
8. Use node IDs like Step1, Step2, Decision1, LoopCheck1

Output ONLY the DOT code in a fenced code block.`

var (
	fencedDotRe = regexp.MustCompile("(?s)```(?:dot|graphviz)?\\s*\n?(.*?)```")
	rawDotRe    = regexp.MustCompile(`(?s)(digraph\s+\w*\s*\{.*\})`)
)

// delegate serializes the classified steps, asks the generation capability
// for DOT code, and parses and validates the result. Any failure along the
// way is returned to the caller, which falls back to deterministic synthesis.
func (s *implSynthesizer) delegate(ctx context.Context, steps []classifier.Step) (*Graph, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(dotPrompt, formatStepsForPrompt(steps))

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	dot := extractDOT(response)
	if dot == "" {
		return nil, fmt.Errorf("no DOT code in response")
	}

	graph, err := parseDelegatedDOT(dot)
	if err != nil {
		return nil, fmt.Errorf("parse delegated DOT: %w", err)
	}

	repairTermination(graph)

	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return graph, nil
}

// formatStepsForPrompt annotates each step with its category so the
// capability sees clean, classified input rather than raw transcript.
func formatStepsForPrompt(steps []classifier.Step) string {
	lines := make([]string, 0, len(steps))
	for _, s := range steps {
		switch s.Category {
		case classifier.CategoryDecision:
			lines = append(lines, fmt.Sprintf("%d. [DECISION] %s", s.Index, s.RawText))
		case classifier.CategoryLoop:
			lines = append(lines, fmt.Sprintf("%d. [LOOP - repeats for multiple items] %s", s.Index, s.RawText))
		case classifier.CategoryEndPhase:
			lines = append(lines, fmt.Sprintf("%d. [END PHASE] %s", s.Index, s.RawText))
		default:
			lines = append(lines, fmt.Sprintf("%d. %s", s.Index, s.RawText))
		}
	}
	return strings.Join(lines, "\n")
}

// extractDOT pulls DOT code out of a generation response: fenced block
// first, then a raw digraph body.
func extractDOT(response string) string {
	if m := fencedDotRe.FindStringSubmatch(response); m != nil {
		if strings.Contains(m[1], "digraph") {
			return strings.TrimSpace(m[1])
		}
	}
	if m := rawDotRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseDelegatedDOT parses DOT text into a Graph, mapping shapes and ids to
// node kinds. Node order follows declaration order, with Start pinned first
// and End pinned last.
func parseDelegatedDOT(dot string) (*Graph, error) {
	ast, err := gographviz.ParseString(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}

	parsed := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, parsed); err != nil {
		return nil, fmt.Errorf("analyse DOT: %w", err)
	}

	graph := &Graph{}

	for _, n := range parsed.Nodes.Nodes {
		// Default-attribute statements (node [...], edge [...]) are not nodes.
		if isDotKeyword(n.Name) {
			continue
		}

		label := unquote(n.Attrs[gographviz.Attr("label")])
		shape := strings.ToLower(unquote(n.Attrs[gographviz.Attr("shape")]))

		graph.Nodes = append(graph.Nodes, Node{
			ID:    n.Name,
			Kind:  nodeKindFor(n.Name, label, shape),
			Label: strings.ReplaceAll(label, `\n`, " "),
		})
	}

	for _, e := range parsed.Edges.Edges {
		graph.Edges = append(graph.Edges, Edge{
			From:  e.Src,
			To:    e.Dst,
			Label: unquote(e.Attrs[gographviz.Attr("label")]),
		})
	}

	orderTerminals(graph)

	return graph, nil
}

func nodeKindFor(id, label, shape string) NodeKind {
	idLower := strings.ToLower(id)
	labelLower := strings.ToLower(label)

	switch {
	case idLower == "start" || labelLower == "start":
		return KindStart
	case idLower == "end" || labelLower == "end":
		return KindEnd
	case shape == "diamond" && (strings.HasPrefix(idLower, "loopcheck") || strings.Contains(labelLower, "more items")):
		return KindLoopCheck
	case shape == "diamond":
		return KindDecision
	default:
		return KindProcess
	}
}

// orderTerminals moves the Start node to the front of the node list and the
// End node to the back, preserving the relative order of everything else.
func orderTerminals(g *Graph) {
	ordered := make([]Node, 0, len(g.Nodes))
	var start, end []Node

	for _, n := range g.Nodes {
		switch n.Kind {
		case KindStart:
			start = append(start, n)
		case KindEnd:
			end = append(end, n)
		default:
			ordered = append(ordered, n)
		}
	}

	g.Nodes = append(append(start, ordered...), end...)
}

// repairTermination is the only repair allowed on delegated output: ensure an
// End node exists and, when nothing reaches it, wire the last emitted node to
// it. Anything else that fails validation discards the whole graph.
func repairTermination(g *Graph) {
	var endID string
	for _, n := range g.Nodes {
		if n.Kind == KindEnd {
			endID = n.ID
			break
		}
	}

	if endID == "" {
		endID = "End"
		g.Nodes = append(g.Nodes, Node{ID: endID, Kind: KindEnd, Label: "End"})
	}

	for _, e := range g.Edges {
		if e.To == endID {
			return
		}
	}

	// No edge reaches End: terminate from the last non-End node.
	for i := len(g.Nodes) - 1; i >= 0; i-- {
		if g.Nodes[i].Kind != KindEnd {
			g.Edges = append(g.Edges, Edge{From: g.Nodes[i].ID, To: endID})
			return
		}
	}
}

func isDotKeyword(name string) bool {
	switch strings.ToLower(name) {
	case "node", "edge", "graph":
		return true
	}
	return false
}

func unquote(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return v
}
