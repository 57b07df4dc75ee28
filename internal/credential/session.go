package credential

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultSessionTTL   = 12 * time.Hour
	sessionCleanupEvery = 10 * time.Minute
)

// Session holds credentials for the lifetime of the process, with expiry.
type Session struct {
	cache *gocache.Cache
}

// NewSession creates a session store. A zero ttl uses 12h.
func NewSession(ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Session{cache: gocache.New(ttl, sessionCleanupEvery)}
}

func (s *Session) Name() string { return "session" }

func (s *Session) Lookup(ctx context.Context, provider string) (string, bool, error) {
	v, found := s.cache.Get(sessionKey(provider))
	if !found {
		return "", false, nil
	}
	str, ok := v.(string)
	return str, ok && str != "", nil
}

// Store keeps value for provider until the session TTL passes.
func (s *Session) Store(provider, value string) {
	s.cache.Set(sessionKey(provider), value, gocache.DefaultExpiration)
}

func (s *Session) Delete(provider string) {
	s.cache.Delete(sessionKey(provider))
}

func sessionKey(provider string) string {
	return "credential:" + strings.ToLower(provider)
}
