package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/skillpilot-api/internal/redact"
)

// Recommender produces learning pathways from an external text-generation service.
type Recommender interface {
	// Recommend asks the provider for a pathway for interest at level using apiKey.
	// It never panics and never returns topics alongside an error.
	Recommend(ctx context.Context, apiKey, interest, level string) Result
}

// RecommenderConfig configures a ProviderRecommender.
type RecommenderConfig struct {
	// MaxTokens bounds the length of the generated text.
	MaxTokens int

	// MaxTopics caps the number of returned topics.
	MaxTopics int

	// Timeout bounds a whole Recommend call including retries. Zero means no limit.
	Timeout time.Duration

	// Retry configures retries of transient failures.
	Retry RetryConfig
}

// ProviderRecommender implements Recommender on top of a ProviderFactory.
type ProviderRecommender struct {
	factory ProviderFactory
	prompts *PromptBuilder
	config  RecommenderConfig
	logger  *slog.Logger
}

// NewRecommender creates a Recommender.
//
// Parameters:
//   - factory: builds a provider for each call from the caller's API key
//   - prompts: renders the prompt for an interest and level
//   - config: token, topic, timeout and retry limits
//   - logger: structured logger; nil selects the default logger
//
// Returns:
//   - A configured ProviderRecommender or an error wrapping ErrInvalidConfig
func NewRecommender(
	factory ProviderFactory,
	prompts *PromptBuilder,
	config RecommenderConfig,
	logger *slog.Logger,
) (*ProviderRecommender, error) {
	if factory == nil {
		return nil, fmt.Errorf("%w: provider factory cannot be nil", ErrInvalidConfig)
	}
	if prompts == nil {
		return nil, fmt.Errorf("%w: prompt builder cannot be nil", ErrInvalidConfig)
	}
	if config.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProviderRecommender{
		factory: factory,
		prompts: prompts,
		config:  config,
		logger:  logger.With("component", "recommender"),
	}, nil
}

// Recommend implements Recommender.
func (r *ProviderRecommender) Recommend(ctx context.Context, apiKey, interest, level string) (result Result) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.ErrorContext(ctx, "recovered panic during pathway generation",
				"panic", redact.String(fmt.Sprint(p)))
			result = Failure(&Error{Kind: KindUnknown, Err: fmt.Errorf("%w: panic: %v", ErrGenerationFailed, p)})
		}
	}()

	if strings.TrimSpace(apiKey) == "" {
		return Failure(ErrMissingAPIKey)
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	prompt, err := r.prompts.Build(interest, level)
	if err != nil {
		return r.fail(ctx, fmt.Errorf("%w: %w", ErrGenerationFailed, err))
	}

	provider, err := r.factory(ctx, apiKey)
	if err != nil {
		return r.fail(ctx, err)
	}
	provider = WithRetry(provider, r.config.Retry, r.logger)

	r.logger.DebugContext(ctx, "requesting learning pathway",
		"model", provider.Model(),
		"interest", interest,
		"level", level)

	text, err := provider.Complete(ctx, Request{Prompt: prompt, MaxTokens: r.config.MaxTokens})
	if err != nil {
		return r.fail(ctx, err)
	}

	topics := ParseTopics(text, r.config.MaxTopics)
	if len(topics) == 0 {
		return r.fail(ctx, fmt.Errorf("%w: empty completion", ErrInvalidResponse))
	}

	r.logger.InfoContext(ctx, "learning pathway generated",
		"model", provider.Model(),
		"topics", len(topics))
	return Success(topics)
}

func (r *ProviderRecommender) fail(ctx context.Context, err error) Result {
	res := Failure(err)
	r.logger.WarnContext(ctx, "pathway generation failed",
		"kind", res.Err.Kind,
		"error", redact.Error(err))
	return res
}
