package flowchart

import (
	"context"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

// Synthesize produces a flowchart for the classified steps. The delegated
// path is attempted first when a generator is configured; its output must
// survive parsing and validation or the deterministic path replaces it.
// Every code path yields a well-formed graph.
func (s *implSynthesizer) Synthesize(ctx context.Context, steps []classifier.Step) Graph {
	// Nothing to describe to the model: emit the placeholder graph directly.
	if len(steps) == 0 {
		return deterministic([]classifier.Step{{
			Index:      1,
			RawText:    "Process",
			Category:   classifier.CategoryProcess,
			ShortLabel: "Process",
		}})
	}

	if s.generator != nil {
		graph, err := s.delegate(ctx, steps)
		if err == nil {
			s.logger.Debug(ctx, "Using delegated flowchart (%d nodes)", len(graph.Nodes))
			return *graph
		}
		s.logger.Warn(ctx, "Delegated flowchart rejected, using deterministic synthesis: %v", err)
	}

	return deterministic(steps)
}
