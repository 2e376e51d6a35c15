package matcher

import (
	"context"
	"sort"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
)

// Blend constants for the combined frame/step score: 70% weighted average,
// 30% best single signal, so a frame is not penalized when only one of
// OCR/transcript is strong.
const (
	weightedShare = 0.7
	bestShare     = 0.3
)

// Match builds a full step-by-frame score matrix, assigns frames greedily in
// step order (first strict maximum wins, frames iterated in original order),
// then backfills unmatched steps with unused frames in chronological order.
func (m *implMatcher) Match(ctx context.Context, frames []FrameCandidate, steps []classifier.Step) Assignment {
	if len(steps) == 0 {
		return Assignment{}
	}

	assigned := make(Assignment, 0, len(steps))

	if len(frames) == 0 {
		m.logger.Debug(ctx, "No candidate frames provided, %d steps stay unmatched", len(steps))
		for _, step := range steps {
			assigned = append(assigned, Entry{StepDescription: step.RawText})
		}
		return assigned
	}

	m.logger.Debug(ctx, "Matching %d frames to %d steps", len(frames), len(steps))

	scores := make([][]float64, len(steps))
	for i, step := range steps {
		scores[i] = make([]float64, len(frames))
		for j, frame := range frames {
			scores[i][j] = m.scoreFrame(frame, step.RawText)
		}
	}

	used := make(map[int]bool, len(frames))

	for i, step := range steps {
		bestFrame := -1
		bestScore := -1.0

		for j := range frames {
			if !m.allowReuse && used[j] {
				continue
			}
			if scores[i][j] > bestScore {
				bestScore = scores[i][j]
				bestFrame = j
			}
		}

		if bestFrame >= 0 && bestScore >= m.minScore {
			assigned = append(assigned, Entry{
				FrameHandle:     frames[bestFrame].Handle,
				StepDescription: step.RawText,
				Score:           bestScore,
			})
			if !m.allowReuse {
				used[bestFrame] = true
			}
			m.logger.Debug(ctx, "Step %d matched frame %d (score=%.2f)", i+1, bestFrame, bestScore)
		} else {
			assigned = append(assigned, Entry{StepDescription: step.RawText})
			m.logger.Debug(ctx, "Step %d unmatched (best=%.2f)", i+1, bestScore)
		}
	}

	assigned = m.backfill(assigned, frames)

	m.logger.Info(ctx, "Matched %d/%d steps", assigned.Matched(), len(steps))

	return assigned
}

// scoreFrame blends OCR and transcript similarity against the step text.
// When one side is empty the other is used exclusively.
func (m *implMatcher) scoreFrame(frame FrameCandidate, stepDescription string) float64 {
	var ocrScore, transcriptScore float64

	if frame.OCRText != "" {
		ocrScore = m.scorer.Score(frame.OCRText, stepDescription)
	}
	if frame.TranscriptText != "" {
		transcriptScore = m.scorer.Score(frame.TranscriptText, stepDescription)
	}

	if frame.OCRText == "" {
		return transcriptScore
	}
	if frame.TranscriptText == "" {
		return ocrScore
	}

	weighted := ocrScore*m.ocrWeight + transcriptScore*m.transcriptWeight
	best := ocrScore
	if transcriptScore > best {
		best = transcriptScore
	}

	return weighted*weightedShare + best*bestShare
}

// backfill assigns the chronologically-next unused frame to each still
// unmatched step, so matched and unmatched entries partition the steps only
// when the frame pool runs out.
func (m *implMatcher) backfill(assigned Assignment, frames []FrameCandidate) Assignment {
	usedHandles := make(map[string]bool, len(assigned))
	for _, e := range assigned {
		if e.FrameHandle != "" {
			usedHandles[e.FrameHandle] = true
		}
	}

	unused := make([]FrameCandidate, 0, len(frames))
	for _, f := range frames {
		if !usedHandles[f.Handle] {
			unused = append(unused, f)
		}
	}
	sort.SliceStable(unused, func(i, j int) bool {
		return unused[i].Timestamp < unused[j].Timestamp
	})

	next := 0
	for i := range assigned {
		if assigned[i].FrameHandle != "" {
			continue
		}
		if next >= len(unused) {
			break
		}
		assigned[i].FrameHandle = unused[next].Handle
		next++
	}

	return assigned
}
