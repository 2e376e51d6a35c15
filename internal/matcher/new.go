package matcher

import (
	"github.com/nguyentantai21042004/process-flow/internal/config"
	"github.com/nguyentantai21042004/process-flow/internal/logger"
	"github.com/nguyentantai21042004/process-flow/internal/similarity"
)

type implMatcher struct {
	scorer           similarity.Scorer
	logger           logger.Logger
	ocrWeight        float64
	transcriptWeight float64
	minScore         float64
	allowReuse       bool
}

// New creates a Matcher using the supplied scorer and matcher config.
func New(scorer similarity.Scorer, cfg config.MatcherConfig, log logger.Logger) Matcher {
	return &implMatcher{
		scorer:           scorer,
		logger:           log,
		ocrWeight:        cfg.OCRWeight,
		transcriptWeight: cfg.TranscriptWeight,
		minScore:         cfg.MinScore,
		allowReuse:       cfg.AllowReuse,
	}
}
