package segmenter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment preprocesses text, splits it recursively and optionally adds
// continuity markers.
func (s *implSegmenter) Segment(text string) ([]Chunk, error) {
	if text == "" {
		return []Chunk{}, nil
	}

	prepared := s.strategy.Preprocess(text)
	pieces := s.split(prepared, s.separators)

	chunks := make([]Chunk, 0, len(pieces))
	for _, p := range pieces {
		// pieces emitted without merging (maxSize 1) may be bare whitespace
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Body: p})
	}

	if s.continuity {
		addContinuityMarkers(chunks, s.label)
	}
	return chunks, nil
}

// split picks the coarsest separator present in text, cuts on it and
// recurses with finer separators into pieces that are still too long.
func (s *implSegmenter) split(text string, separators []string) []string {
	separator := separators[len(separators)-1]
	var finer []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			finer = separators[i+1:]
			break
		}
	}

	var out, fitting []string
	for _, piece := range splitKeepingSeparator(text, separator) {
		if runeLen(piece) < s.maxSize {
			fitting = append(fitting, piece)
			continue
		}
		if len(fitting) > 0 {
			out = append(out, s.merge(fitting)...)
			fitting = nil
		}
		if len(finer) == 0 {
			out = append(out, piece)
		} else {
			out = append(out, s.split(piece, finer)...)
		}
	}
	if len(fitting) > 0 {
		out = append(out, s.merge(fitting)...)
	}
	return out
}

// merge packs consecutive pieces into chunks of at most maxSize characters.
// When a chunk is emitted, leading pieces are dropped until no more than
// overlap characters remain, then the next chunk is topped up from the tail
// of the dropped text so that it repeats overlap characters of the last one.
func (s *implSegmenter) merge(pieces []string) []string {
	var (
		out     []string
		current []string
		total   int
	)
	for _, p := range pieces {
		n := runeLen(p)
		if total+n > s.maxSize && len(current) > 0 {
			if doc := joinPieces(current); doc != "" {
				out = append(out, doc)
			}
			var dropped strings.Builder
			for total > s.overlap || (total+n > s.maxSize && total > 0) {
				dropped.WriteString(current[0])
				total -= runeLen(current[0])
				current = current[1:]
			}
			if seed := overlapSeed(dropped.String(), s.overlap-total, s.maxSize-n-total); seed != "" {
				current = append([]string{seed}, current...)
				total += runeLen(seed)
			}
		}
		current = append(current, p)
		total += n
	}
	if doc := joinPieces(current); doc != "" {
		out = append(out, doc)
	}
	return out
}

// splitKeepingSeparator cuts text on sep and glues each separator to the
// start of the piece that follows it. Empty pieces are dropped.
func splitKeepingSeparator(text, sep string) []string {
	if sep == "" {
		out := make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out
	}

	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	if parts[0] != "" {
		out = append(out, parts[0])
	}
	for _, p := range parts[1:] {
		out = append(out, sep+p)
	}
	return out
}

// overlapSeed returns the last want runes of dropped, capped at room. When
// the cut lands on whitespace it moves back to the previous visible rune, as
// long as room allows, because chunk edges are trimmed.
func overlapSeed(dropped string, want, room int) string {
	if want > room {
		want = room
	}
	r := []rune(dropped)
	if want <= 0 || len(r) == 0 {
		return ""
	}
	if want > len(r) {
		want = len(r)
	}
	start := len(r) - want
	for start > 0 && unicode.IsSpace(r[start]) && len(r)-start < room {
		start--
	}
	return string(r[start:])
}

func joinPieces(pieces []string) string {
	return strings.TrimSpace(strings.Join(pieces, ""))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
