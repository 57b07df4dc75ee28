package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/pkg/executor"
)

const (
	Anthropic = "anthropic"
	OpenAI    = "openai"
	Gemini    = "gemini"
	Command   = "command"

	anthropicBaseURL = "https://api.anthropic.com/v1"
	defaultMaxTokens = 8192
	defaultTimeout   = 5 * time.Minute
)

// Options selects and tunes a backend.
type Options struct {
	Name        string
	BaseURL     string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
	// Command is the argv of the command backend; "{model}" is substituted.
	Command  []string
	Executor executor.Executor
}

// New creates the Provider named by opts.Name.
func New(opts Options) (Provider, error) {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	switch strings.ToLower(opts.Name) {
	case Anthropic:
		if opts.BaseURL == "" {
			opts.BaseURL = anthropicBaseURL
		}
		return newOpenAICompatible(Anthropic, opts), nil
	case OpenAI:
		return newOpenAICompatible(OpenAI, opts), nil
	case Gemini:
		return newGemini(opts), nil
	case Command:
		if len(opts.Command) == 0 {
			return nil, fmt.Errorf("command provider: llm.command is empty")
		}
		exec := opts.Executor
		if exec == nil {
			exec = executor.New()
		}
		return &commandProvider{argv: opts.Command, executor: exec}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Name)
	}
}
