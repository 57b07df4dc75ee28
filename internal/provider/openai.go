package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// openAICompatible talks to any chat-completions endpoint. Anthropic is
// reached through its OpenAI-compatible API.
type openAICompatible struct {
	name        string
	baseURL     string
	maxTokens   int
	temperature float32
	httpClient  *http.Client
}

func newOpenAICompatible(name string, opts Options) *openAICompatible {
	return &openAICompatible{
		name:        name,
		baseURL:     opts.BaseURL,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		httpClient:  &http.Client{Timeout: opts.Timeout},
	}
}

func (p *openAICompatible) Name() string { return p.name }

func (p *openAICompatible) RequiresCredential() bool { return true }

func (p *openAICompatible) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		return "", ErrMissingModel
	}

	cfg := openai.DefaultConfig(req.Credential)
	if p.baseURL != "" {
		cfg.BaseURL = strings.TrimRight(p.baseURL, "/")
	}
	cfg.HTTPClient = p.httpClient
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
			return "", fmt.Errorf("%s: %w: %s", p.name, ErrUnauthorized, apiErr.Message)
		}
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%s: %w", p.name, ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
