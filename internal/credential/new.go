package credential

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implResolver struct {
	session *Session
	store   *FileStore
	env     Source
	formats map[string]Format
	logger  logger.Logger
}

// Options wires the credential sources. Nil Session creates one with the
// default TTL; nil Store or Env disables that source.
type Options struct {
	Session *Session
	Store   *FileStore
	Env     Source
	// Formats overrides the per-provider format gate.
	Formats map[string]Format
}

// New creates a Resolver over the given sources.
func New(opts Options, l logger.Logger) Resolver {
	session := opts.Session
	if session == nil {
		session = NewSession(0)
	}
	return &implResolver{
		session: session,
		store:   opts.Store,
		env:     opts.Env,
		formats: opts.Formats,
		logger:  l,
	}
}
