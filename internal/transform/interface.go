package transform

import "context"

// Template variable names.
const (
	VarChunk          = "chunk"
	VarBackground     = "background"
	VarPreviousResult = "previous_result"
	VarContext        = "context"
	VarTranscript     = "transcript"
)

// Vars maps template variable names to their values.
type Vars map[string]string

// Transformer performs the text-in/text-out LLM calls of the formalizer.
type Transformer interface {
	// Invoke renders the named template with vars and sends it to the model.
	Invoke(ctx context.Context, template string, vars Vars, model, credential string) (string, error)
	// TransformPlain formats a chunk with no prior context.
	TransformPlain(ctx context.Context, chunk, background, model, credential string) (string, error)
	// TransformWithContext formats a chunk as a continuation of previous.
	TransformWithContext(ctx context.Context, chunk, previous, background, model, credential string) (string, error)
	// GenerateQuestions asks for clarifying questions about a whole transcript.
	GenerateQuestions(ctx context.Context, transcript, model, credential string) (string, error)
}
