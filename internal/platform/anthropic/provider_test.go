package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/skillpilot-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	return p
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestProvider_HappyPath(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "Intro to Robotics\n"},
				{"type": "text", "text": "Arduino Basics"},
			},
			"model":       DefaultModel,
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 20, "output_tokens": 10},
		})
	})

	text, err := p.Complete(context.Background(), generation.Request{Prompt: "p", MaxTokens: 250})
	require.NoError(t, err)
	assert.Equal(t, "Intro to Robotics\nArduino Basics", text)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		errType string
		want    generation.ErrorKind
	}{
		{"invalid key", http.StatusUnauthorized, "authentication_error", generation.KindInvalidKey},
		{"rate limit", http.StatusTooManyRequests, "rate_limit_error", generation.KindRateLimited},
		{"overloaded", 529, "overloaded_error", generation.KindUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				writeJSON(w, tt.status, map[string]any{
					"type":  "error",
					"error": map[string]any{"type": tt.errType, "message": "nope"},
				})
			})

			_, err := p.Complete(context.Background(), generation.Request{Prompt: "p", MaxTokens: 10})
			require.Error(t, err)
			assert.Equal(t, tt.want, generation.KindOf(err))
			assert.Equal(t, int32(1), calls.Load(), "sdk retries are disabled")
		})
	}
}

func TestProvider_NoTextContent(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "msg_test", "type": "message", "role": "assistant",
			"content": []any{}, "model": DefaultModel, "stop_reason": "end_turn",
			"usage": map[string]any{"input_tokens": 1, "output_tokens": 0},
		})
	})

	_, err := p.Complete(context.Background(), generation.Request{Prompt: "p", MaxTokens: 10})
	assert.ErrorIs(t, err, generation.ErrInvalidResponse)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	assert.ErrorIs(t, err, generation.ErrMissingAPIKey)

	p, err := Factory("claude-sonnet", "")(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-20250514", p.Model())
}
