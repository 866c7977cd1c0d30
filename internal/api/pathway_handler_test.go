package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/skillpilot-api/internal/generation"
	"github.com/phrazzld/skillpilot-api/internal/mocks"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePathway(t *testing.T, w *httptest.ResponseRecorder) PathwayResponse {
	t.Helper()
	var resp PathwayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPathwayHandler_Catalog(t *testing.T) {
	t.Parallel()

	h := NewPathwayHandler(&mocks.MockRecommender{})
	w := httptest.NewRecorder()
	h.Catalog(w, httptest.NewRequest(http.MethodGet, "/api/pathways/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Interests, 14)
	assert.Equal(t, []string{"Beginner", "Intermediate", "Advanced"}, resp.Levels)
}

func TestPathwayHandler_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "known pair",
			query: "interest=Machine+Learning&level=Beginner",
			want:  []string{"Python Basics", "Statistics", "Scikit-learn", "Intro to ML"},
		},
		{name: "unknown interest", query: "interest=Astrology&level=Beginner", want: []string{}},
		{name: "missing params", query: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewPathwayHandler(&mocks.MockRecommender{})
			w := httptest.NewRecorder()
			h.Lookup(w, httptest.NewRequest(http.MethodGet, "/api/pathways?"+tt.query, nil))

			require.Equal(t, http.StatusOK, w.Code)
			resp := decodePathway(t, w)
			assert.Equal(t, tt.want, resp.Topics)
			assert.Nil(t, resp.Error)
		})
	}
}

func TestPathwayHandler_LookupLogsUnknownSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantLog bool
	}{
		{name: "catalog pair", query: "interest=Machine+Learning&level=Advanced"},
		{name: "catalog interest without table entry", query: "interest=IoT&level=Beginner"},
		{name: "unknown interest", query: "interest=Astrology&level=Beginner", wantLog: true},
		{name: "unknown level", query: "interest=IoT&level=Expert", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/api/pathways?"+tt.query, nil)
			req = req.WithContext(logger.WithLogger(req.Context(), l))

			w := httptest.NewRecorder()
			NewPathwayHandler(&mocks.MockRecommender{}).Lookup(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "pathway selection not in catalog"))
		})
	}
}

func TestPathwayHandler_Generate(t *testing.T) {
	t.Parallel()

	rec := &mocks.MockRecommender{
		RecommendFn: func(context.Context, string, string, string) generation.Result {
			return generation.Success([]string{"Sensors", "Actuators"})
		},
	}
	h := NewPathwayHandler(rec)

	w := httptest.NewRecorder()
	h.Generate(w, jsonRequest(t, http.MethodPost, "/api/pathways/generate", GenerateRequest{
		APIKey: "user-key", Interest: "IoT", Level: "Beginner",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"topics":["Sensors","Actuators"]}`, w.Body.String())
	require.Equal(t, 1, rec.CallCount())
	assert.Equal(t, mocks.RecommendCall{APIKey: "user-key", Interest: "IoT", Level: "Beginner"}, rec.Calls[0])
}

func TestPathwayHandler_GenerateFailure(t *testing.T) {
	t.Parallel()

	rec := &mocks.MockRecommender{
		RecommendFn: func(context.Context, string, string, string) generation.Result {
			return generation.Failure(fmt.Errorf("%w: dial tcp: i/o timeout", generation.ErrProviderUnavailable))
		},
	}
	h := NewPathwayHandler(rec)

	w := httptest.NewRecorder()
	h.Generate(w, jsonRequest(t, http.MethodPost, "/api/pathways/generate", GenerateRequest{
		APIKey: "k", Interest: "IoT", Level: "Beginner",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodePathway(t, w)
	assert.Empty(t, resp.Topics)
	assert.NotNil(t, resp.Topics)
	require.NotNil(t, resp.Error)
	assert.Equal(t, generation.KindUnavailable, resp.Error.Kind)
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestPathwayHandler_GenerateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    any
		wantMsg string
	}{
		{
			name:    "missing api key",
			body:    GenerateRequest{Interest: "IoT", Level: "Beginner"},
			wantMsg: "Invalid APIKey: required field",
		},
		{
			name:    "missing interest",
			body:    GenerateRequest{APIKey: "k", Level: "Beginner"},
			wantMsg: "Invalid Interest: required field",
		},
		{name: "malformed json", body: `{`, wantMsg: "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &mocks.MockRecommender{}
			h := NewPathwayHandler(rec)

			w := httptest.NewRecorder()
			h.Generate(w, jsonRequest(t, http.MethodPost, "/api/pathways/generate", tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.Zero(t, rec.CallCount())
		})
	}
}

func TestNewPathwayResponse(t *testing.T) {
	t.Parallel()

	resp := NewPathwayResponse(generation.Result{})
	assert.NotNil(t, resp.Topics)
	assert.Nil(t, resp.Error)

	resp = NewPathwayResponse(generation.Result{
		Topics: []string{"leaked"},
		Err:    &generation.Error{Kind: generation.KindInvalidKey},
	})
	assert.Empty(t, resp.Topics)
	assert.Equal(t, generation.KindInvalidKey.Message(), resp.Error.Message)
}
