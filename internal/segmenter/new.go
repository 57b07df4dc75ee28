package segmenter

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when size or overlap break the preconditions.
var ErrInvalidOptions = errors.New("invalid segmenter options")

const (
	DefaultMaxSize           = 3000
	DefaultContinuationLabel = "(continued)"
)

// Options controls how text is cut.
type Options struct {
	MaxSize int
	Overlap int
	// Strategy rewrites the text before splitting. Nil means Paragraph.
	Strategy Strategy
	// Separators, coarsest first. Empty selects the preset for Language.
	Separators []string
	Language   string
	// ContinuityMarkers prefixes chunks that start mid-turn with the last
	// timestamp seen in the previous chunk.
	ContinuityMarkers bool
	ContinuationLabel string
}

type implSegmenter struct {
	maxSize    int
	overlap    int
	separators []string
	strategy   Strategy
	continuity bool
	label      string
}

// New validates opts and returns a Segmenter.
func New(opts Options) (Segmenter, error) {
	if opts.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: max size must be > 0, got %d", ErrInvalidOptions, opts.MaxSize)
	}
	if opts.Overlap < 0 || opts.Overlap >= opts.MaxSize {
		return nil, fmt.Errorf("%w: overlap must be in [0, %d), got %d", ErrInvalidOptions, opts.MaxSize, opts.Overlap)
	}

	seps := opts.Separators
	if len(seps) == 0 {
		seps = SeparatorsFor(opts.Language)
	}
	// character-level fallback is always available
	if seps[len(seps)-1] != "" {
		seps = append(append([]string(nil), seps...), "")
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = Paragraph
	}
	label := opts.ContinuationLabel
	if label == "" {
		label = DefaultContinuationLabel
	}

	return &implSegmenter{
		maxSize:    opts.MaxSize,
		overlap:    opts.Overlap,
		separators: seps,
		strategy:   strategy,
		continuity: opts.ContinuityMarkers,
		label:      label,
	}, nil
}

// Segment is the one-shot form: paragraph strategy, default separators.
func Segment(text string, maxSize, overlap int) ([]Chunk, error) {
	s, err := New(Options{MaxSize: maxSize, Overlap: overlap})
	if err != nil {
		return nil, err
	}
	return s.Segment(text)
}
