package generator

import (
	"sync"

	"github.com/nguyentantai21042004/process-flow/internal/logger"
)

type implGenerator struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// guards currentKey: one generator serves all concurrent extractions
	mu         sync.Mutex
	currentKey int
}

// New creates a Gemini-backed Generator that rotates through the supplied
// API keys on quota errors.
func New(apiKeys []string, model string, log logger.Logger) Generator {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implGenerator{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
