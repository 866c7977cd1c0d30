package generation

import "context"

// Provider is a text-completion backend.
type Provider interface {
	// Complete sends the prompt and returns the raw generated text.
	// Errors are wrapped with the sentinels in errors.go.
	Complete(ctx context.Context, req Request) (string, error)

	// Model returns the provider model identifier.
	Model() string
}

// Request describes a single completion call.
type Request struct {
	Prompt    string
	MaxTokens int
}

// ProviderFactory builds a Provider bound to the caller's API key.
// Keys are supplied per request and never stored by the application.
type ProviderFactory func(ctx context.Context, apiKey string) (Provider, error)

// ResolveModel maps a friendly model name to a provider model ID.
// Unknown names are used as-is; an empty name selects fallback.
func ResolveModel(name string, models map[string]string, fallback string) string {
	if name == "" {
		return fallback
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
