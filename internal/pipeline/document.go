package pipeline

import (
	"fmt"
	"strings"
)

// Document is the final ordered concatenation of transformed segments.
type Document struct {
	Segments  []string
	Separator string
}

// Text renders the document. Repeated calls return identical bytes.
func (d Document) Text() string {
	return Assemble(d.Segments, d.Separator)
}

func (d Document) String() string {
	return d.Text()
}

// Assemble joins segments in order with sep.
func Assemble(segments []string, sep string) string {
	return strings.Join(segments, sep)
}

// TransformError reports the chunk whose transform call failed.
type TransformError struct {
	Index int
	Total int
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform chunk %d/%d: %v", e.Index+1, e.Total, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
