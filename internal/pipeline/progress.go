package pipeline

import (
	"context"
	"fmt"
)

// Progress is emitted once per chunk, before its transform call.
type Progress struct {
	Current int
	Total   int
}

// Fraction returns Current/Total in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	f := float64(p.Current) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Status returns the textual status line, e.g. "chunk 2/5".
func (p Progress) Status() string {
	return fmt.Sprintf("chunk %d/%d", p.Current, p.Total)
}

// Reporter receives progress notifications. Errors are logged and ignored.
type Reporter interface {
	Report(ctx context.Context, p Progress) error
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(ctx context.Context, p Progress) error

func (f ReporterFunc) Report(ctx context.Context, p Progress) error {
	return f(ctx, p)
}

// ChannelReporter sends every Progress on a channel, for consumers that
// render progress in their own goroutine. The send blocks until received
// or ctx is done.
type ChannelReporter chan<- Progress

func (c ChannelReporter) Report(ctx context.Context, p Progress) error {
	select {
	case c <- p:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (pl *implPipeline) report(ctx context.Context, r Reporter, p Progress) {
	if r == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			pl.logger.Warn(ctx, "Progress reporter panicked at %s: %v", p.Status(), rec)
		}
	}()
	if err := r.Report(ctx, p); err != nil {
		pl.logger.Warn(ctx, "Progress reporter failed at %s: %v", p.Status(), err)
	}
}
