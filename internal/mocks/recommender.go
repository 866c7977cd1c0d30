package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/skillpilot-api/internal/generation"
)

// MockRecommender implements generation.Recommender for testing
type MockRecommender struct {
	// RecommendFn allows for custom behavior in tests
	RecommendFn func(ctx context.Context, apiKey, interest, level string) generation.Result

	mu    sync.Mutex
	Calls []RecommendCall
}

// RecommendCall records the arguments of one Recommend call.
type RecommendCall struct {
	APIKey   string
	Interest string
	Level    string
}

// Recommend implements the generation.Recommender interface.
// Without RecommendFn it returns an empty successful result.
func (m *MockRecommender) Recommend(ctx context.Context, apiKey, interest, level string) generation.Result {
	m.mu.Lock()
	m.Calls = append(m.Calls, RecommendCall{APIKey: apiKey, Interest: interest, Level: level})
	m.mu.Unlock()

	if m.RecommendFn != nil {
		return m.RecommendFn(ctx, apiKey, interest, level)
	}
	return generation.Success(nil)
}

// CallCount returns the number of Recommend calls.
func (m *MockRecommender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
