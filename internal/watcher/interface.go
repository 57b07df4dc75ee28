package watcher

import "context"

// Watcher feeds transcripts arriving in a directory to an EventHandler.
type Watcher interface {
	// Start blocks until ctx is done, then waits for running handlers.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one transcript file. Errors are logged, not fatal.
type EventHandler func(ctx context.Context, transcriptPath string) error
