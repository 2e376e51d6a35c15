package flowchart

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

// deterministic builds the graph directly from classified steps. Same input
// always produces the same graph, and the construction itself guarantees the
// structural invariants, so no post-hoc validation runs on this path.
func deterministic(steps []classifier.Step) Graph {
	nodes := []Node{{ID: "Start", Kind: KindStart, Label: "Start"}}

	// loop-check id -> the loop body it repeats
	loopBack := make(map[string]string)

	var stepCount, decisionCount, loopCount int

	for _, step := range steps {
		switch step.Category {
		case classifier.CategoryDecision:
			decisionCount++
			nodes = append(nodes, Node{
				ID:    fmt.Sprintf("Decision%d", decisionCount),
				Kind:  KindDecision,
				Label: makeQuestion(step.ShortLabel),
			})

		case classifier.CategoryLoop:
			stepCount++
			bodyID := fmt.Sprintf("Step%d", stepCount)
			nodes = append(nodes, Node{
				ID:    bodyID,
				Kind:  KindProcess,
				Label: step.ShortLabel,
			})

			loopCount++
			checkID := fmt.Sprintf("LoopCheck%d", loopCount)
			nodes = append(nodes, Node{
				ID:    checkID,
				Kind:  KindLoopCheck,
				Label: "More Items?",
			})
			loopBack[checkID] = bodyID

		default: // PROCESS and END_PHASE
			stepCount++
			nodes = append(nodes, Node{
				ID:    fmt.Sprintf("Step%d", stepCount),
				Kind:  KindProcess,
				Label: step.ShortLabel,
			})
		}
	}

	nodes = append(nodes, Node{ID: "End", Kind: KindEnd, Label: "End"})

	var edges []Edge
	for i := 0; i < len(nodes)-1; i++ {
		current := nodes[i]
		next := nodes[i+1]

		switch current.Kind {
		case KindLoopCheck:
			edges = append(edges,
				Edge{From: current.ID, To: loopBack[current.ID], Label: "Yes"},
				Edge{From: current.ID, To: next.ID, Label: "No"},
			)

		case KindDecision:
			skipTo := "End"
			if i+2 < len(nodes) {
				skipTo = nodes[i+2].ID
			}
			edges = append(edges,
				Edge{From: current.ID, To: next.ID, Label: "Yes"},
				Edge{From: current.ID, To: skipTo, Label: "No"},
			)

		default:
			edges = append(edges, Edge{From: current.ID, To: next.ID})
		}
	}

	return Graph{Nodes: nodes, Edges: edges}
}

// questionCues maps semantic cues in a declarative label to the diamond
// question it implies. Checked in order.
var questionCues = []struct {
	cue      string
	question string
}{
	{"valid", "Valid?"},
	{"eligible", "Eligible?"},
	{"active", "Active?"},
	{"found", "Found?"},
	{"exist", "Exists?"},
	{"success", "Successful?"},
	{"fail", "Failed?"},
	{"match", "Matches?"},
	{"approv", "Approved?"},
	{"compli", "Compliant?"},
	{"meets criteria", "Meets Criteria?"},
}

// makeQuestion converts a declarative short label into the interrogative
// form used on decision diamonds.
func makeQuestion(label string) string {
	label = strings.TrimRight(label, ".")

	if strings.HasSuffix(label, "?") {
		return label
	}

	lower := strings.ToLower(label)
	for _, c := range questionCues {
		if strings.Contains(lower, c.cue) {
			return c.question
		}
	}

	words := strings.Fields(label)
	if len(words) > 4 {
		label = strings.Join(words[:4], " ")
	}
	return label + "?"
}
