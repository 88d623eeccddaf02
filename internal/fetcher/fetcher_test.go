package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministry-jobs-parser/internal/config"
	"ministry-jobs-parser/internal/observability"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			UserAgent:      "test-agent/1.0",
			TotalTimeoutMS: 2000,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             10,
		},
	}
}

func TestFetchSendsBrowserIdentity(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	f, err := NewFetcher(testConfig(), observability.NewTestLogger())
	require.NoError(t, err)

	html, ok := f.Fetch(context.Background(), server.URL)
	require.True(t, ok)
	assert.Contains(t, html, "ok")
	assert.Equal(t, "test-agent/1.0", gotUA)
}

func TestFetchNonSuccessStatusIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusInternalServerError)
	}))
	defer server.Close()

	f, err := NewFetcher(testConfig(), observability.NewTestLogger())
	require.NoError(t, err)

	html, ok := f.Fetch(context.Background(), server.URL)
	assert.False(t, ok)
	assert.Empty(t, html)
}

func TestFetchTransportErrorIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f, err := NewFetcher(testConfig(), observability.NewTestLogger())
	require.NoError(t, err)

	html, ok := f.Fetch(context.Background(), url)
	assert.False(t, ok)
	assert.Empty(t, html)
}

func TestHostLimiterUnparseableURL(t *testing.T) {
	hl := NewHostLimiter(100, 10)
	assert.NoError(t, hl.WaitURL(context.Background(), "::not-a-url::"))
}
