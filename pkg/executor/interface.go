package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput feeds stdin to the command and appends env to the
	// inherited environment.
	ExecuteWithInput(ctx context.Context, stdin string, env []string, name string, args ...string) (string, error)
}
