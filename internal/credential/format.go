package credential

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrMissingCredential       = errors.New("no valid API key available")
	ErrInvalidCredentialFormat = errors.New("API key has an invalid format")
)

// Format is a shallow gate on a credential's shape. It never contacts the
// provider.
type Format struct {
	Prefix    string
	MinLength int
}

// DefaultFormat accepts keys such as those issued by Anthropic and OpenAI.
var DefaultFormat = Format{Prefix: "sk-", MinLength: 20}

var providerFormats = map[string]Format{
	"anthropic": DefaultFormat,
	"openai":    DefaultFormat,
	"gemini":    {Prefix: "AIza", MinLength: 20},
}

// FormatFor returns the format expected for a provider's keys.
func FormatFor(provider string) Format {
	if f, ok := providerFormats[strings.ToLower(provider)]; ok {
		return f
	}
	return DefaultFormat
}

// Validate returns ErrMissingCredential for an empty value and
// ErrInvalidCredentialFormat when the prefix or length is wrong.
func (f Format) Validate(value string) error {
	if value == "" {
		return ErrMissingCredential
	}
	if !strings.HasPrefix(value, f.Prefix) {
		return fmt.Errorf("%w: must start with %q", ErrInvalidCredentialFormat, f.Prefix)
	}
	if utf8.RuneCountInString(value) < f.MinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrInvalidCredentialFormat, f.MinLength)
	}
	return nil
}

// Mask hides all but the first and last characters of a key for logging.
func Mask(value string) string {
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}
