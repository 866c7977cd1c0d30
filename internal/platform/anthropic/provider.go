// Package anthropic implements generation.Provider on the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phrazzld/skillpilot-api/internal/generation"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-haiku-4-5-20251001"

// models maps friendly names to Anthropic model IDs.
var models = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

// Config configures a Provider.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Provider implements generation.Provider using the Anthropic SDK.
type Provider struct {
	client *anthropic.Client
	model  string
}

var _ generation.Provider = (*Provider)(nil)

// New creates an Anthropic provider. SDK retries are disabled; retries are
// handled by generation.WithRetry.
func New(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, generation.ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &Provider{
		client: &client,
		model:  generation.ResolveModel(cfg.Model, models, DefaultModel),
	}, nil
}

// Factory returns a generation.ProviderFactory that builds a Provider per API key.
func Factory(model, baseURL string) generation.ProviderFactory {
	return func(_ context.Context, apiKey string) (generation.Provider, error) {
		return New(Config{APIKey: apiKey, Model: model, BaseURL: baseURL})
	}
}

// Complete implements generation.Provider.
func (p *Provider) Complete(ctx context.Context, req generation.Request) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", mapError(err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no text content in Anthropic response", generation.ErrInvalidResponse)
	}
	return b.String(), nil
}

// Model implements generation.Provider.
func (p *Provider) Model() string {
	return p.model
}

func mapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return generation.WrapStatusError(apiErr.StatusCode, err)
	}
	return generation.WrapTransportError(err)
}
