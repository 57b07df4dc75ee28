package formalizer

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
)

// Formalizer exposes the user-triggered operations.
type Formalizer interface {
	// Formalize segments the transcript and rewrites it chunk by chunk.
	Formalize(ctx context.Context, in Input) (Result, error)
	// GenerateQuestions asks for clarifying questions about the whole,
	// unsegmented transcript in one call.
	GenerateQuestions(ctx context.Context, in Input) (string, error)
}

// Input is one formalize or question-generation request.
type Input struct {
	Transcript string
	Background string
	// Model overrides the configured model for this request.
	Model string
	// APIKey is an explicitly entered credential; it wins over stored ones.
	APIKey   string
	Reporter pipeline.Reporter
}

// Result is a completed formalize run.
type Result struct {
	RunID    string
	Model    string
	Chunks   int
	Document pipeline.Document
	Duration time.Duration
}

// Text returns the rendered document.
func (r Result) Text() string {
	return r.Document.Text()
}
