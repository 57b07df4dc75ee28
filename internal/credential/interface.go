package credential

import "context"

// Source supplies a stored credential for a provider.
type Source interface {
	Name() string
	// Lookup reports ok=false when the source holds nothing for provider.
	Lookup(ctx context.Context, provider string) (value string, ok bool, err error)
}

// Resolver picks the credential for a run from the ordered sources:
// explicit input, then session, then persisted store, then environment.
type Resolver interface {
	Resolve(ctx context.Context, provider, explicit string) (string, error)
	// Persist validates value and saves it for later runs.
	Persist(ctx context.Context, provider, value string) error
	// Forget removes the persisted and session values for provider.
	Forget(ctx context.Context, provider string) error
}
