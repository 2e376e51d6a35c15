package generator

import "context"

// Generator sends a prompt to a text-generation model and returns the raw
// response text. Implementations return errors for transport failures,
// quota exhaustion, and empty output; callers decide how to recover.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
