package flowchart

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/process-flow/internal/logger"
)

type fakeGenerator struct {
	response string
	err      error
	block    bool
	calls    int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

const goodDOT = "```dot\n" + `digraph ProcessFlow {
    Start [label="Start", shape=oval, fillcolor=lightgreen];
    Step1 [label="Open portal", shape=box, fillcolor=lightblue];
    Decision1 [label="Valid?", shape=diamond, fillcolor=gold];
    End [label="End", shape=oval, fillcolor=lightcoral];

    Start -> Step1;
    Step1 -> Decision1;
    Decision1 -> End [label="Yes"];
    Decision1 -> Step1 [label="No"];
}
` + "```"

func newTestSynthesizer(gen Generator) Synthesizer {
	return New(gen, logger.New("error"), time.Second)
}

func TestSynthesizeDelegatedAccepted(t *testing.T) {
	s := newTestSynthesizer(&fakeGenerator{response: goodDOT})

	steps := classify(t, "Opens the portal.", "Checks if record is valid.")
	g := s.Synthesize(context.Background(), steps)

	checkInvariants(t, g)
	if g.NodeByID("Decision1") == nil {
		t.Fatal("delegated graph lost Decision1")
	}
	if g.NodeByID("Decision1").Kind != KindDecision {
		t.Errorf("Decision1 kind = %v, want DECISION", g.NodeByID("Decision1").Kind)
	}
	if g.Nodes[0].Kind != KindStart || g.Nodes[len(g.Nodes)-1].Kind != KindEnd {
		t.Error("delegated graph terminals not ordered Start..End")
	}
}

func TestSynthesizeFallbacks(t *testing.T) {
	steps := classify(t,
		"Connects to Portal using credentials.",
		"Checks if record is valid.",
		"Generates final report.",
	)
	want := deterministic(steps)

	tests := []struct {
		name string
		gen  Generator
	}{
		{"generation error", &fakeGenerator{err: errors.New("model unavailable")}},
		{"empty response", &fakeGenerator{response: ""}},
		{"no DOT in response", &fakeGenerator{response: "Sure! Here is a description of the process."}},
		{"unparseable DOT", &fakeGenerator{response: "```dot\ndigraph { Start -> ; }\n```"}},
		{"missing branch labels", &fakeGenerator{response: "```dot\n" + `digraph {
    Start [label="Start", shape=oval];
    Decision1 [label="Valid?", shape=diamond];
    End [label="End", shape=oval];
    Start -> Decision1;
    Decision1 -> End [label="Yes"];
}` + "\n```"}},
		{"orphan node", &fakeGenerator{response: "```dot\n" + `digraph {
    Start [label="Start", shape=oval];
    Step1 [label="Work", shape=box];
    Step2 [label="Stranded", shape=box];
    End [label="End", shape=oval];
    Start -> Step1;
    Step1 -> End;
    Step2 -> End;
}` + "\n```"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSynthesizer(tt.gen)
			got := s.Synthesize(context.Background(), steps)

			checkInvariants(t, got)
			if len(got.Nodes) != len(want.Nodes) {
				t.Errorf("fallback graph has %d nodes, deterministic has %d", len(got.Nodes), len(want.Nodes))
			}
		})
	}
}

func TestSynthesizeTimeoutFallsBack(t *testing.T) {
	s := New(&fakeGenerator{block: true}, logger.New("error"), 20*time.Millisecond)

	steps := classify(t, "Opens the portal.", "Generates final report.")
	g := s.Synthesize(context.Background(), steps)

	checkInvariants(t, g)
	if g.NodeByID("Step1") == nil || g.NodeByID("Step2") == nil {
		t.Error("timeout fallback did not produce the deterministic graph")
	}
}

func TestSynthesizeNoGenerator(t *testing.T) {
	s := New(nil, logger.New("error"), time.Second)

	steps := classify(t, "Opens the portal.")
	g := s.Synthesize(context.Background(), steps)

	checkInvariants(t, g)
}

func TestSynthesizeEmptySteps(t *testing.T) {
	s := New(nil, logger.New("error"), time.Second)

	g := s.Synthesize(context.Background(), nil)

	checkInvariants(t, g)
	if len(g.Nodes) != 3 {
		t.Errorf("empty-step graph has %d nodes, want Start/Process/End", len(g.Nodes))
	}
}

func TestSynthesizeEmptyStepsSkipsDelegation(t *testing.T) {
	gen := &fakeGenerator{response: goodDOT}
	s := newTestSynthesizer(gen)

	g := s.Synthesize(context.Background(), nil)

	checkInvariants(t, g)
	if gen.calls != 0 {
		t.Errorf("generator invoked %d times for empty input, want 0", gen.calls)
	}
	if len(g.Nodes) != 3 {
		t.Errorf("empty-step graph has %d nodes, want Start/Process/End", len(g.Nodes))
	}
}

func TestRepairMissingEnd(t *testing.T) {
	dot := `digraph {
    Start [label="Start", shape=oval];
    Step1 [label="Do work", shape=box];
    Start -> Step1;
}`

	g, err := parseDelegatedDOT(dot)
	if err != nil {
		t.Fatalf("parseDelegatedDOT() error = %v", err)
	}

	repairTermination(g)

	if err := g.Validate(); err != nil {
		t.Fatalf("repaired graph still invalid: %v", err)
	}
	last := g.Nodes[len(g.Nodes)-1]
	if last.Kind != KindEnd {
		t.Errorf("last node kind = %v, want END", last.Kind)
	}
	out := g.Outgoing("Step1")
	if len(out) != 1 || out[0].To != last.ID {
		t.Errorf("Step1 outgoing = %+v, want a single terminal edge", out)
	}
}

func TestExtractDOT(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantHit  bool
	}{
		{"fenced dot block", goodDOT, true},
		{"fenced plain block", "```\ndigraph { A [label=\"x\"]; }\n```", true},
		{"raw digraph", "Here you go: digraph Flow { A -> B }", true},
		{"prose only", "I could not produce a diagram.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDOT(tt.response)
			if (got != "") != tt.wantHit {
				t.Errorf("extractDOT() = %q, wantHit %v", got, tt.wantHit)
			}
		})
	}
}

func TestFormatStepsForPrompt(t *testing.T) {
	steps := classify(t,
		"Connects to Portal using credentials.",
		"Checks if record is valid.",
		"Validates each record in the batch.",
		"Generates final report.",
	)

	got := formatStepsForPrompt(steps)

	wants := []string{
		"1. Connects to Portal using credentials.",
		"2. [DECISION] Checks if record is valid.",
		"3. [LOOP - repeats for multiple items] Validates each record in the batch.",
		"4. [END PHASE] Generates final report.",
	}
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("prompt missing line %q in:\n%s", w, got)
		}
	}
}
