package flowchart

import (
	"context"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

// Generator is the external text-generation capability the synthesizer may
// delegate to. Implementations must return an error (never panic) on
// transport failure, non-success status, or empty output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns classified steps into a structurally valid flowchart.
type Synthesizer interface {
	// Synthesize always returns a graph satisfying the model invariants.
	// When a generation capability is configured its output is parsed and
	// validated; any failure falls back to deterministic construction.
	Synthesize(ctx context.Context, steps []classifier.Step) Graph
}
