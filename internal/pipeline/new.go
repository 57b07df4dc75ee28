package pipeline

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implPipeline struct {
	transformer Transformer
	logger      logger.Logger
}

// New creates a Pipeline that transforms chunks with t.
func New(t Transformer, l logger.Logger) Pipeline {
	return &implPipeline{
		transformer: t,
		logger:      l,
	}
}
