package artifact

import "context"

// Fixed artifact names and media types.
const (
	MarkdownFileName  = "formalized_transcript.md"
	MarkdownMediaType = "text/markdown"

	DocxFileName  = "formalized_transcript.docx"
	DocxMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	HTMLFileName  = "formalized_transcript.html"
	HTMLMediaType = "text/html"

	QuestionsFileName = "questions.md"
)

// Artifact is one file written to disk.
type Artifact struct {
	Name      string
	MediaType string
	Path      string
}

// Writer renders a formalized document into downloadable files.
type Writer interface {
	// WriteDocument always writes the markdown artifact, plus docx and
	// HTML when enabled.
	WriteDocument(ctx context.Context, dir, title, document string) ([]Artifact, error)
	WriteQuestions(ctx context.Context, dir, questions string) (Artifact, error)
}
