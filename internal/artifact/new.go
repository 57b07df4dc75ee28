package artifact

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// Options enables the optional formats.
type Options struct {
	Docx bool
	HTML bool
}

type implWriter struct {
	opts   Options
	logger logger.Logger
}

// New creates a Writer.
func New(opts Options, l logger.Logger) Writer {
	return &implWriter{opts: opts, logger: l}
}
