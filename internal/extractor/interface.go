package extractor

import "context"

// Extractor turns a process-step text file into flowchart and frame-matching
// artifacts in the output directory.
type Extractor interface {
	Process(ctx context.Context, stepsPath string) error
}
