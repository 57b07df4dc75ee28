package processor

import "context"

// Processor runs one transcript file through formalization.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}

// BackgroundSuffix marks the optional background file that accompanies a
// transcript, e.g. meeting.txt + meeting.background.txt.
const BackgroundSuffix = ".background.txt"
