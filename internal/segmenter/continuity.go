package segmenter

import "strings"

// addContinuityMarkers prefixes every chunk after the first that does not
// open with a timestamp with the last timestamp of the chunk before it.
// The previous chunk is read with its own marker, so a timestamp carries
// across several chunks that contain none.
func addContinuityMarkers(chunks []Chunk, label string) {
	for i := 1; i < len(chunks); i++ {
		if reTimestampStart.MatchString(strings.TrimSpace(chunks[i].Body)) {
			continue
		}
		found := reTimestamp.FindAllString(chunks[i-1].Text(), -1)
		if len(found) == 0 {
			continue
		}
		chunks[i].Marker = found[len(found)-1] + " " + label + " "
	}
}
