package pipeline

import "fmt"

// Context policies.
const (
	// PolicySliding passes the last WindowSize transformed segments.
	PolicySliding = "sliding"
	// PolicyCumulative passes the whole document assembled so far.
	PolicyCumulative = "cumulative"
)

// Document separators.
const (
	SeparatorRule    = "rule"
	SeparatorNewline = "newline"

	RuleSeparator    = "\n\n----\n\n"
	NewlineSeparator = "\n"

	// windowJoin joins segments inside a sliding context window.
	windowJoin = "\n\n"

	DefaultWindowSize = 3
)

// Config selects the model and the context/assembly policies of one run.
type Config struct {
	Model      string
	Credential string
	Policy     string
	WindowSize int
	Separator  string
}

// Validate fills defaults and rejects unknown policies.
func (c *Config) Validate() error {
	if c.Policy == "" {
		c.Policy = PolicySliding
	}
	if c.Policy != PolicySliding && c.Policy != PolicyCumulative {
		return fmt.Errorf("pipeline: unknown context policy %q", c.Policy)
	}
	if c.WindowSize <= 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.Separator == "" {
		c.Separator = SeparatorRule
	}
	if _, err := SeparatorFor(c.Separator); err != nil {
		return err
	}
	return nil
}

// SeparatorFor maps a separator name to the literal joining segments.
func SeparatorFor(name string) (string, error) {
	switch name {
	case SeparatorRule:
		return RuleSeparator, nil
	case SeparatorNewline:
		return NewlineSeparator, nil
	default:
		return "", fmt.Errorf("pipeline: unknown separator %q", name)
	}
}
