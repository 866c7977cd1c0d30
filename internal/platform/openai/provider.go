// Package openai implements generation.Provider on the OpenAI chat
// completions API. BaseURL allows OpenAI-compatible endpoints.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/skillpilot-api/internal/generation"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// models maps friendly names to OpenAI model IDs.
var models = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// Config configures a Provider.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Provider implements generation.Provider using the OpenAI SDK.
type Provider struct {
	client *openai.Client
	model  string
}

var _ generation.Provider = (*Provider)(nil)

// New creates an OpenAI provider.
func New(cfg Config) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, generation.ErrMissingAPIKey
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &Provider{
		client: openai.NewClientWithConfig(config),
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
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxCompletionTokens: req.MaxTokens,
	})
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in OpenAI response", generation.ErrInvalidResponse)
	}
	if resp.Choices[0].FinishReason == openai.FinishReasonContentFilter {
		return "", fmt.Errorf("%w: content filtered", generation.ErrContentBlocked)
	}
	return resp.Choices[0].Message.Content, nil
}

// Model implements generation.Provider.
func (p *Provider) Model() string {
	return p.model
}

func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return generation.WrapStatusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return generation.WrapStatusError(reqErr.HTTPStatusCode, err)
	}
	return generation.WrapTransportError(err)
}
