package credential

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvVars names the environment variable read for each provider.
var DefaultEnvVars = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}

// Env reads credentials from the process environment, falling back to
// values parsed from .env files. The process environment is not modified.
type Env struct {
	vars   map[string]string
	dotenv map[string]string
}

// NewEnv creates an environment source. vars overrides DefaultEnvVars per
// provider; missing dotenv files are skipped.
func NewEnv(vars map[string]string, dotenvFiles ...string) (*Env, error) {
	merged := make(map[string]string, len(DefaultEnvVars)+len(vars))
	for k, v := range DefaultEnvVars {
		merged[k] = v
	}
	for k, v := range vars {
		merged[strings.ToLower(k)] = v
	}

	e := &Env{vars: merged, dotenv: map[string]string{}}
	for _, file := range dotenvFiles {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			if _, seen := e.dotenv[k]; !seen {
				e.dotenv[k] = v
			}
		}
	}
	return e, nil
}

func (e *Env) Name() string { return "env" }

// Var returns the variable name consulted for provider.
func (e *Env) Var(provider string) string {
	return e.vars[strings.ToLower(provider)]
}

func (e *Env) Lookup(ctx context.Context, provider string) (string, bool, error) {
	name := e.Var(provider)
	if name == "" {
		return "", false, nil
	}
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v, true, nil
	}
	if v := strings.TrimSpace(e.dotenv[name]); v != "" {
		return v, true, nil
	}
	return "", false, nil
}
