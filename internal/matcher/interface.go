package matcher

import (
	"context"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

// FrameCandidate is one still image eligible for alignment to a step.
// OCR and transcript text are supplied by the caller; either may be empty.
type FrameCandidate struct {
	Handle         string  `yaml:"handle"`
	OCRText        string  `yaml:"ocr_text"`
	TranscriptText string  `yaml:"transcript_text"`
	Timestamp      float64 `yaml:"timestamp"`
}

// Entry pairs a step description with the frame assigned to it. An empty
// FrameHandle means the step stayed unmatched.
type Entry struct {
	FrameHandle     string  `yaml:"frame"`
	StepDescription string  `yaml:"step"`
	Score           float64 `yaml:"score"`
}

// Assignment holds one Entry per step, in step order.
type Assignment []Entry

// Matched reports how many entries carry a frame.
func (a Assignment) Matched() int {
	n := 0
	for _, e := range a {
		if e.FrameHandle != "" {
			n++
		}
	}
	return n
}

// Matcher aligns candidate frames to ordered steps.
type Matcher interface {
	// Match scores every frame against every step and assigns greedily in
	// step order. Degenerate input (no frames, no steps) yields all-unmatched
	// or empty results, never an error.
	Match(ctx context.Context, frames []FrameCandidate, steps []classifier.Step) Assignment
}
