package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/segmenter"
)

func (pl *implPipeline) Process(ctx context.Context, chunks []segmenter.Chunk, background string, reporter Reporter, cfg Config) (Document, error) {
	if err := cfg.Validate(); err != nil {
		return Document{}, err
	}
	sep, _ := SeparatorFor(cfg.Separator)

	total := len(chunks)
	segments := make([]string, 0, total)
	start := time.Now()

	pl.logger.Info(ctx, "Transforming %d chunks with %s (%s context)", total, cfg.Model, cfg.Policy)

	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			return Document{}, fmt.Errorf("pipeline stopped before chunk %d/%d: %w", i+1, total, err)
		}

		pl.report(ctx, reporter, Progress{Current: i + 1, Total: total})

		var (
			out string
			err error
		)
		if i == 0 {
			out, err = pl.transformer.TransformPlain(ctx, c.Text(), background, cfg.Model, cfg.Credential)
		} else {
			previous := contextWindow(segments, cfg, sep)
			out, err = pl.transformer.TransformWithContext(ctx, c.Text(), previous, background, cfg.Model, cfg.Credential)
		}
		if err != nil {
			pl.logger.Error(ctx, "Chunk %d/%d failed: %v", i+1, total, err)
			return Document{}, &TransformError{Index: i, Total: total, Err: err}
		}

		pl.logger.Debug(ctx, "Chunk %d/%d: %d chars in, %d chars out", i+1, total, c.Len(), len([]rune(out)))
		segments = append(segments, out)
	}

	pl.logger.Info(ctx, "Transformed %d chunks in %s", total, time.Since(start).Round(time.Millisecond))
	return Document{Segments: segments, Separator: sep}, nil
}

// contextWindow derives the read-only context for the next chunk from the
// segments transformed so far.
func contextWindow(segments []string, cfg Config, sep string) string {
	if cfg.Policy == PolicyCumulative {
		return Assemble(segments, sep)
	}
	from := len(segments) - cfg.WindowSize
	if from < 0 {
		from = 0
	}
	return Assemble(segments[from:], windowJoin)
}
