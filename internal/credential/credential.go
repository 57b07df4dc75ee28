package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func (r *implResolver) Resolve(ctx context.Context, provider, explicit string) (string, error) {
	format := r.formatFor(provider)

	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if err := format.Validate(explicit); err != nil {
			return "", err
		}
		r.session.Store(provider, explicit)
		return explicit, nil
	}

	for _, src := range r.sources() {
		value, ok, err := src.Lookup(ctx, provider)
		if err != nil {
			r.logger.Warn(ctx, "Credential source %s unavailable: %v", src.Name(), err)
			continue
		}
		if !ok {
			continue
		}
		if err := format.Validate(value); err != nil {
			r.logger.Warn(ctx, "Ignoring %s key from %s: %v", provider, src.Name(), err)
			continue
		}
		r.logger.Debug(ctx, "Using %s key %s from %s", provider, Mask(value), src.Name())
		r.session.Store(provider, value)
		return value, nil
	}

	return "", fmt.Errorf("%w for provider %s", ErrMissingCredential, provider)
}

func (r *implResolver) Persist(ctx context.Context, provider, value string) error {
	value = strings.TrimSpace(value)
	if err := r.formatFor(provider).Validate(value); err != nil {
		return err
	}
	if r.store == nil {
		return errors.New("credential: no persistent store configured")
	}
	if err := r.store.Save(provider, value); err != nil {
		return err
	}
	r.session.Store(provider, value)
	r.logger.Info(ctx, "Saved %s key %s to %s", provider, Mask(value), r.store.Path())
	return nil
}

func (r *implResolver) Forget(ctx context.Context, provider string) error {
	r.session.Delete(provider)
	if r.store == nil {
		return nil
	}
	if err := r.store.Delete(provider); err != nil {
		return err
	}
	r.logger.Info(ctx, "Removed %s key from %s", provider, r.store.Path())
	return nil
}

func (r *implResolver) sources() []Source {
	out := []Source{r.session}
	if r.store != nil {
		out = append(out, r.store)
	}
	if r.env != nil {
		out = append(out, r.env)
	}
	return out
}

func (r *implResolver) formatFor(provider string) Format {
	if f, ok := r.formats[strings.ToLower(provider)]; ok {
		return f
	}
	return FormatFor(provider)
}
