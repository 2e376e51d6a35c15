package flowchart

import (
	"time"

	"github.com/nguyentantai21042004/process-flow/internal/logger"
)

type implSynthesizer struct {
	generator Generator
	logger    logger.Logger
	timeout   time.Duration
}

// New creates a Synthesizer. A nil generator disables the delegated path and
// every graph is built deterministically.
func New(gen Generator, log logger.Logger, timeout time.Duration) Synthesizer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &implSynthesizer{
		generator: gen,
		logger:    log,
		timeout:   timeout,
	}
}
