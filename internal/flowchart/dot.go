package flowchart

import (
	"fmt"
	"strings"
)

// ToDOT renders the graph as styled Graphviz DOT: green oval Start, red oval
// End, gold diamonds for branches, light blue boxes for process steps.
func ToDOT(g Graph) string {
	var b strings.Builder

	b.WriteString("digraph ProcessFlow {\n")
	b.WriteString("    rankdir=TB;\n")
	b.WriteString("    node [fontname=\"Arial\", fontsize=10, style=filled];\n")
	b.WriteString("    edge [fontname=\"Arial\", fontsize=9];\n\n")

	for _, n := range g.Nodes {
		label := escapeLabel(wrapLabel(n.Label))

		switch n.Kind {
		case KindStart:
			fmt.Fprintf(&b, "    %s [label=\"%s\", shape=oval, fillcolor=lightgreen];\n", n.ID, label)
		case KindEnd:
			fmt.Fprintf(&b, "    %s [label=\"%s\", shape=oval, fillcolor=lightcoral];\n", n.ID, label)
		case KindDecision, KindLoopCheck:
			fmt.Fprintf(&b, "    %s [label=\"%s\", shape=diamond, fillcolor=gold];\n", n.ID, label)
		default:
			fmt.Fprintf(&b, "    %s [label=\"%s\", shape=box, fillcolor=lightblue];\n", n.ID, label)
		}
	}

	b.WriteString("\n")

	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&b, "    %s -> %s [label=\"%s\"];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&b, "    %s -> %s;\n", e.From, e.To)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// wrapLabel breaks long labels across two lines so diamonds and boxes stay
// readable.
func wrapLabel(label string) string {
	if len(label) <= 30 {
		return label
	}
	words := strings.Fields(label)
	if len(words) < 2 {
		return label
	}
	mid := len(words) / 2
	return strings.Join(words[:mid], " ") + `\n` + strings.Join(words[mid:], " ")
}

func escapeLabel(label string) string {
	// \n stays a DOT line break; only bare quotes need escaping.
	return strings.ReplaceAll(label, `"`, `\"`)
}
