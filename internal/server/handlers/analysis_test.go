// internal/server/handlers/analysis_test.go

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetpulse/internal/domain/sentiment"
)

// stubService returns canned responses for handler tests.
type stubService struct {
	result   *sentiment.AnalysisResult
	analyses []sentiment.Analysis
	err      error
}

func (s *stubService) Analyze(ctx context.Context, topic string, count int) (*sentiment.AnalysisResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubService) RecentAnalyses(ctx context.Context, limit int) ([]sentiment.Analysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.analyses) {
		return s.analyses[:limit], nil
	}
	return s.analyses, nil
}

func TestAnalyzeSuccess(t *testing.T) {
	h := NewAnalysisHandler(&stubService{result: &sentiment.AnalysisResult{
		Positive: 40,
		Negative: 30,
		Neutral:  30,
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"topic":"golang","count":20}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body sentiment.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 40, body.Positive)
	assert.Equal(t, 30, body.Negative)
	assert.Equal(t, 30, body.Neutral)
}

func TestAnalyzeInvalidBody(t *testing.T) {
	h := NewAnalysisHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeValidationError(t *testing.T) {
	h := NewAnalysisHandler(&stubService{err: sentiment.ErrInvalidInput})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"topic":"","count":20}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestAnalyzeRateLimited(t *testing.T) {
	h := NewAnalysisHandler(&stubService{err: &sentiment.RateLimitError{
		ResetAt: time.Now().Add(3 * time.Minute),
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"topic":"golang","count":20}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "rate limit")
}

func TestAnalyzeUpstreamError(t *testing.T) {
	h := NewAnalysisHandler(&stubService{err: sentiment.ErrUpstreamAuth})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"topic":"golang","count":20}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal details stay out of the response body.
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body["error"], "authentication")
}

func TestRecentAnalyses(t *testing.T) {
	h := NewAnalysisHandler(&stubService{analyses: []sentiment.Analysis{
		{ID: "2", Topic: "second"},
		{ID: "1", Topic: "first"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	rec := httptest.NewRecorder()
	h.RecentAnalyses(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []sentiment.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "second", body[0].Topic)
}

func TestRecentAnalysesInvalidLimit(t *testing.T) {
	h := NewAnalysisHandler(&stubService{})

	for _, limit := range []string{"abc", "-1", "0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit="+limit, nil)
		rec := httptest.NewRecorder()
		h.RecentAnalyses(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)
	}
}
