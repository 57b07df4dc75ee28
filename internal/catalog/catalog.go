// Package catalog lists the model identifiers offered for formalizing.
package catalog

import "strings"

// Model describes one selectable model identifier.
type Model struct {
	ID          string
	Label       string
	Description string
	Provider    string
	Recommended bool
}

var models = []Model{
	{
		ID:          "claude-3-7-sonnet-latest",
		Label:       "Claude 3.7 Sonnet (recommended)",
		Description: "Latest high-performance model with a good balance of quality and speed.",
		Provider:    "anthropic",
		Recommended: true,
	},
	{
		ID:          "claude-3-5-sonnet-latest",
		Label:       "Claude 3.5 Sonnet",
		Description: "High-performance model suited to most tasks.",
		Provider:    "anthropic",
	},
	{
		ID:          "claude-3-opus-latest",
		Label:       "Claude 3 Opus",
		Description: "Most capable model, but slower to process.",
		Provider:    "anthropic",
	},
	{
		ID:          "claude-3-haiku-latest",
		Label:       "Claude 3 Haiku (fast, low cost)",
		Description: "Lightweight and fast. Good for simple transcripts.",
		Provider:    "anthropic",
	},
	{
		ID:          "gemini-2.5-flash",
		Label:       "Gemini 2.5 Flash",
		Description: "Fast Gemini model with a large input window.",
		Provider:    "gemini",
	},
	{
		ID:          "gemini-2.5-pro",
		Label:       "Gemini 2.5 Pro",
		Description: "Most capable Gemini model for long, technical conversations.",
		Provider:    "gemini",
	},
	{
		ID:          "gpt-4o",
		Label:       "GPT-4o",
		Description: "OpenAI general-purpose model.",
		Provider:    "openai",
	},
	{
		ID:          "gpt-4o-mini",
		Label:       "GPT-4o mini (fast, low cost)",
		Description: "Small OpenAI model for quick drafts.",
		Provider:    "openai",
	},
}

// All returns every known model in display order.
func All() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// Default returns the recommended model.
func Default() Model {
	for _, m := range models {
		if m.Recommended {
			return m
		}
	}
	return models[0]
}

// Lookup finds a model by identifier.
func Lookup(id string) (Model, bool) {
	for _, m := range models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

// Label returns the display label for id, or id itself when unknown.
func Label(id string) string {
	if m, ok := Lookup(id); ok {
		return m.Label
	}
	return id
}

// ProviderFor returns the provider serving id. Unknown identifiers are
// passed through to fallback.
func ProviderFor(id, fallback string) string {
	if m, ok := Lookup(id); ok {
		return m.Provider
	}
	return fallback
}

// ForProvider returns the models served by provider.
func ForProvider(provider string) []Model {
	var out []Model
	for _, m := range models {
		if strings.EqualFold(m.Provider, provider) {
			out = append(out, m)
		}
	}
	return out
}
