package classifier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassifyCategories(t *testing.T) {
	c := New(DefaultTables(), 6)

	tests := []struct {
		name string
		text string
		want Category
	}{
		{"plain action", "Connects to Portal using credentials.", CategoryProcess},
		{"decision cue", "Checks if record is valid.", CategoryDecision},
		{"loop cue", "Validates each record in the batch.", CategoryLoop},
		{"end phase cue", "Generates final report.", CategoryEndPhase},
		{"decision beats loop", "Checks if each entry is valid.", CategoryDecision},
		{"no cue defaults to process", "Opens the dashboard.", CategoryProcess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify([]string{tt.text})
			if len(got) != 1 {
				t.Fatalf("Classify() returned %d steps, want 1", len(got))
			}
			if got[0].Category != tt.want {
				t.Errorf("Category = %v, want %v", got[0].Category, tt.want)
			}
		})
	}
}

func TestClassifyScenario(t *testing.T) {
	c := New(DefaultTables(), 6)

	steps := []string{
		"Connects to Portal using credentials.",
		"Checks if record is valid.",
		"Validates each record in the batch.",
		"Generates final report.",
	}

	got := c.Classify(steps)
	want := []Category{CategoryProcess, CategoryDecision, CategoryLoop, CategoryEndPhase}

	if len(got) != len(want) {
		t.Fatalf("Classify() returned %d steps, want %d", len(got), len(want))
	}
	for i, step := range got {
		if step.Category != want[i] {
			t.Errorf("step %d category = %v, want %v", i+1, step.Category, want[i])
		}
		if step.Index != i+1 {
			t.Errorf("step %d index = %d, want %d", i, step.Index, i+1)
		}
		if step.RawText != steps[i] {
			t.Errorf("step %d raw text = %q, want %q", i+1, step.RawText, steps[i])
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(DefaultTables(), 6)

	steps := []string{
		"The system validates each record.",
		"Checks if the user is eligible.",
	}

	first := c.Classify(steps)
	second := c.Classify(steps)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Classify() not deterministic (-first +second):\n%s", diff)
	}
}

func TestClassifyEmpty(t *testing.T) {
	c := New(DefaultTables(), 6)

	if got := c.Classify(nil); len(got) != 0 {
		t.Errorf("Classify(nil) returned %d steps, want 0", len(got))
	}
	if got := c.Classify([]string{}); len(got) != 0 {
		t.Errorf("Classify(empty) returned %d steps, want 0", len(got))
	}
}

func TestShortLabel(t *testing.T) {
	c := New(DefaultTables(), 6)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"strips subject prefix", "The system connects to the portal.", "Connects to the portal"},
		{"strips it prefix", "it downloads the report.", "Downloads the report"},
		{"capitalizes", "downloads the report", "Downloads the report"},
		{"truncates long labels", "Opens the main dashboard page and reviews all pending entries", "Opens the main dashboard page and..."},
		{"keeps short labels", "Login", "Login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify([]string{tt.text})
			if got[0].ShortLabel != tt.want {
				t.Errorf("ShortLabel = %q, want %q", got[0].ShortLabel, tt.want)
			}
		})
	}
}

func TestShortLabelCustomWidth(t *testing.T) {
	c := New(DefaultTables(), 3)

	got := c.Classify([]string{"Opens the dashboard page now"})
	if got[0].ShortLabel != "Opens the dashboard..." {
		t.Errorf("ShortLabel = %q, want %q", got[0].ShortLabel, "Opens the dashboard...")
	}
}

func TestFilterConversational(t *testing.T) {
	c := New(DefaultTables(), 6)

	steps := []string{
		"Connects to the portal.",
		"Team will follow up with stakeholders.",
		"Downloads the user report.",
		"We will schedule meeting for next week.",
	}

	got := c.FilterConversational(steps)
	want := []string{
		"Connects to the portal.",
		"Downloads the user report.",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FilterConversational() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterConversationalAllFiltered(t *testing.T) {
	c := New(DefaultTables(), 6)

	steps := []string{
		"Team will review the plan.",
		"We will circle back on this.",
	}

	got := c.FilterConversational(steps)
	if len(got) != len(steps) {
		t.Errorf("all-conversational input returned %d steps, want original %d", len(got), len(steps))
	}
}

func TestInjectedTables(t *testing.T) {
	custom := Tables{
		DecisionKeywords: []string{"maybe"},
	}
	c := New(custom, 6)

	got := c.Classify([]string{"Maybe retry the upload."})
	if got[0].Category != CategoryDecision {
		t.Errorf("custom table: category = %v, want DECISION", got[0].Category)
	}

	// Default cue absent from the custom table must not fire.
	got = c.Classify([]string{"Checks if record is valid."})
	if got[0].Category != CategoryProcess {
		t.Errorf("custom table: category = %v, want PROCESS", got[0].Category)
	}
}
