package processor

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/artifact"
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/formalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implProcessor struct {
	cfg        *config.Config
	formalizer formalizer.Formalizer
	writer     artifact.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, f formalizer.Formalizer, w artifact.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		formalizer: f,
		writer:     w,
		logger:     log,
	}
}
