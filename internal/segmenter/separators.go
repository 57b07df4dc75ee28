package segmenter

import "strings"

var (
	// japaneseSeparators also covers mixed Japanese/English transcripts.
	japaneseSeparators = []string{"\n\n", "\n", ". ", "。", "、", " ", ""}
	englishSeparators  = []string{"\n\n", "\n", ". ", "! ", "? ", "; ", ", ", " ", ""}
)

// SeparatorsFor returns the separator preset for a language code.
// Unknown codes get the Japanese preset, which is the default.
func SeparatorsFor(language string) []string {
	switch strings.ToLower(language) {
	case "en", "english":
		return append([]string(nil), englishSeparators...)
	default:
		return append([]string(nil), japaneseSeparators...)
	}
}
