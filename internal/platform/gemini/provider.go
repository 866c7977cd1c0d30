package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/skillpilot-api/internal/generation"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// models maps friendly names to Gemini model IDs.
var models = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// Config configures a Provider.
type Config struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string
}

// Provider implements generation.Provider using the Google Gemini SDK.
type Provider struct {
	client *genai.Client
	model  string
}

var _ generation.Provider = (*Provider)(nil)

// New creates a Gemini provider.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, generation.ErrMissingAPIKey
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %w", generation.ErrInvalidConfig, err)
	}

	return &Provider{
		client: client,
		model:  generation.ResolveModel(cfg.Model, models, DefaultModel),
	}, nil
}

// Factory returns a generation.ProviderFactory that builds a Provider per API key.
func Factory(model, baseURL string) generation.ProviderFactory {
	return func(ctx context.Context, apiKey string) (generation.Provider, error) {
		return New(ctx, Config{APIKey: apiKey, Model: model, BaseURL: baseURL})
	}
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", mapError(err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, result.PromptFeedback.BlockReason)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if result.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}
	return text, nil
}

// Model implements generation.Provider.
func (p *Provider) Model() string {
	return p.model
}
