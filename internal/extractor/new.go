package extractor

import (
	"github.com/nguyentantai21042004/process-flow/internal/classifier"
	"github.com/nguyentantai21042004/process-flow/internal/config"
	"github.com/nguyentantai21042004/process-flow/internal/flowchart"
	"github.com/nguyentantai21042004/process-flow/internal/logger"
	"github.com/nguyentantai21042004/process-flow/internal/matcher"
	"github.com/nguyentantai21042004/process-flow/pkg/executor"
)

type implExtractor struct {
	cfg         *config.Config
	classifier  classifier.Classifier
	synthesizer flowchart.Synthesizer
	matcher     matcher.Matcher
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a new Extractor instance
func New(
	cfg *config.Config,
	cls classifier.Classifier,
	syn flowchart.Synthesizer,
	m matcher.Matcher,
	exec executor.Executor,
	log logger.Logger,
) Extractor {
	return &implExtractor{
		cfg:         cfg,
		classifier:  cls,
		synthesizer: syn,
		matcher:     m,
		executor:    exec,
		logger:      log,
	}
}
