package segmenter

// Segmenter splits raw transcript text into bounded, ordered chunks.
type Segmenter interface {
	Segment(text string) ([]Chunk, error)
}

// Chunk is one bounded slice of the transcript.
type Chunk struct {
	Index int
	// Body is the split text. Bodies joined in order reproduce the
	// transcript modulo whitespace.
	Body string
	// Marker is a synthetic continuity prefix such as "12:30 (continued) ".
	Marker string
}

// Text returns the chunk as it should be sent downstream.
func (c Chunk) Text() string {
	return c.Marker + c.Body
}

// Len returns the body length in characters.
func (c Chunk) Len() int {
	return runeLen(c.Body)
}
