package classifier

// Category is the semantic kind of a process step.
type Category int

const (
	CategoryProcess Category = iota
	CategoryDecision
	CategoryLoop
	CategoryEndPhase
)

func (c Category) String() string {
	switch c {
	case CategoryDecision:
		return "DECISION"
	case CategoryLoop:
		return "LOOP"
	case CategoryEndPhase:
		return "END_PHASE"
	default:
		return "PROCESS"
	}
}

// Step is one classified unit of process description.
// Immutable after classification.
type Step struct {
	Index      int
	RawText    string
	Category   Category
	ShortLabel string
}

// Classifier turns raw step text into classified steps.
type Classifier interface {
	// Classify labels every input string with a category and a short
	// flowchart-friendly label. Pure and total: every input string yields
	// exactly one Step, empty input yields empty output.
	Classify(steps []string) []Step

	// FilterConversational removes steps that describe the meeting itself
	// rather than process actions. If everything is filtered out, the first
	// few original steps are returned so downstream synthesis never starves.
	FilterConversational(steps []string) []string
}
