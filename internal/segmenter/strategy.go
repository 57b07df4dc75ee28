package segmenter

import (
	"fmt"
	"regexp"
	"strings"
)

// Strategy rewrites raw text before it is split.
type Strategy interface {
	Name() string
	Preprocess(text string) string
}

const (
	StrategyParagraph = "paragraph"
	StrategyDiscourse = "discourse"
)

var (
	// Paragraph only normalizes line endings and blank-line runs.
	Paragraph Strategy = paragraphStrategy{}
	// Discourse additionally breaks paragraphs before timestamps and
	// speaker labels so they anchor chunk starts.
	Discourse Strategy = discourseStrategy{}
)

var (
	reTimestamp      = regexp.MustCompile(`\b\d{2}:\d{2}(?::\d{2})?\b`)
	reTimestampStart = regexp.MustCompile(`^\d{2}:\d{2}`)
	reTimestampOnly  = regexp.MustCompile(`^[ \t]*\d{2}:\d{2}(?::\d{2})?[ \t]*$`)
	reBlankRun       = regexp.MustCompile(`\n{3,}`)

	// A label is one or two short tokens ending in an ASCII or full-width
	// colon. Tokens never start with a digit, so clock times are not labels.
	labelToken   = `[^\s\d:：.。!?！？、,，][^\s:：.。!?！？、,，]{0,29}`
	reSpeakerTag = regexp.MustCompile(labelToken + `(?:[ \t]` + labelToken + `)?[:：]`)
)

// StrategyByName resolves a configured strategy name.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyParagraph:
		return Paragraph, nil
	case StrategyDiscourse:
		return Discourse, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidOptions, name)
	}
}

type paragraphStrategy struct{}

func (paragraphStrategy) Name() string { return StrategyParagraph }

func (paragraphStrategy) Preprocess(text string) string {
	return collapseBlankRuns(normalizeNewlines(text))
}

type discourseStrategy struct{}

func (discourseStrategy) Name() string { return StrategyDiscourse }

func (discourseStrategy) Preprocess(text string) string {
	text = normalizeNewlines(text)
	text = reTimestamp.ReplaceAllString(text, "\n\n${0}")
	text = breakBeforeSpeakers(text)
	return collapseBlankRuns(text)
}

// breakBeforeSpeakers inserts a paragraph break before every speaker label,
// except labels that directly follow a timestamp on the same line.
func breakBeforeSpeakers(text string) string {
	matches := reSpeakerTag.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 2*len(matches))
	last := 0
	for _, m := range matches {
		lineStart := strings.LastIndexByte(text[:m[0]], '\n') + 1
		if reTimestampOnly.MatchString(text[lineStart:m[0]]) {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString("\n\n")
		last = m[0]
	}
	b.WriteString(text[last:])
	return b.String()
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func collapseBlankRuns(text string) string {
	return reBlankRun.ReplaceAllString(text, "\n\n")
}
