package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

type geminiProvider struct {
	maxTokens   int
	temperature float32
	timeout     time.Duration
}

func newGemini(opts Options) *geminiProvider {
	return &geminiProvider{
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		timeout:     opts.Timeout,
	}
}

func (p *geminiProvider) Name() string { return Gemini }

func (p *geminiProvider) RequiresCredential() bool { return true }

// Complete sends the prompt to Gemini and returns the concatenated text parts.
func (p *geminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		return "", ErrMissingModel
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  req.Credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), p.generateConfig())
	if err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "API_KEY_INVALID") || strings.Contains(errMsg, "PERMISSION_DENIED") || strings.Contains(errMsg, "401") {
			return "", fmt.Errorf("gemini: %w: %v", ErrUnauthorized, err)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
}

// generateConfig mirrors the chat-completions settings. A zero temperature
// is left unset so the model default applies.
func (p *geminiProvider) generateConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: int32(p.maxTokens)}
	if p.temperature != 0 {
		cfg.Temperature = genai.Ptr(p.temperature)
	}
	return cfg
}
