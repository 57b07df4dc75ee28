package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
)

// Transformer is the per-chunk transform operation the pipeline folds with.
type Transformer interface {
	TransformPlain(ctx context.Context, chunk, background, model, credential string) (string, error)
	TransformWithContext(ctx context.Context, chunk, previous, background, model, credential string) (string, error)
}

// Pipeline transforms an ordered chunk sequence into one Document, carrying
// prior output forward as context.
type Pipeline interface {
	// Process runs the chunks strictly in order. It fails fast on the first
	// transform error and never returns a partial Document.
	Process(ctx context.Context, chunks []segmenter.Chunk, background string, reporter Reporter, cfg Config) (Document, error)
}
