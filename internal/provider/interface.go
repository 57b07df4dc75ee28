package provider

import (
	"context"
	"errors"
)

// Request is one text-in/text-out completion.
type Request struct {
	Model      string
	Credential string
	Prompt     string
}

// Provider is an LLM backend.
type Provider interface {
	Name() string
	// RequiresCredential reports whether Complete needs Request.Credential.
	RequiresCredential() bool
	Complete(ctx context.Context, req Request) (string, error)
}

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrUnauthorized    = errors.New("credential rejected by provider")
	ErrMissingModel    = errors.New("model identifier is required")
)
