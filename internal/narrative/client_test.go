// internal/narrative/client_test.go
package narrative

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "hoopmatch/internal/common/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"choices":[{"delta":{"content":%q}}]}`+"\n\n", content)
}

func newStreamServer(t *testing.T, chunks ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			fmt.Fprint(w, c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.APIURL = url
	cfg.APIKey = "test-key"
	cfg.MaxRetries = 3
	return cfg
}

func TestStreamWritesDeltas(t *testing.T) {
	server := newStreamServer(t,
		sseChunk("Top recommendation: "),
		sseChunk("Boston Celtics"),
		`data: not-json`+"\n\n", // malformed chunks are skipped
		sseChunk(" — banner chasers."),
	)
	defer server.Close()

	client := NewClient(testConfig(server.URL), nopLogger{})
	var buf bytes.Buffer
	err := client.Stream(context.Background(), StreamRequest{
		System:    "system",
		User:      "user",
		Model:     "gpt-4.1-2025-04-14",
		MaxTokens: 1000,
	}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "Top recommendation: Boston Celtics — banner chasers.", buf.String())
}

func TestStreamRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, sseChunk("ok"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nopLogger{})
	var buf bytes.Buffer
	err := client.Stream(context.Background(), StreamRequest{Model: "m", MaxTokens: 10}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "ok", buf.String())
	assert.Equal(t, int32(2), calls.Load())
}

func TestStreamClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"bad key"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nopLogger{})
	err := client.Stream(context.Background(), StreamRequest{Model: "m", MaxTokens: 10}, &bytes.Buffer{})

	require.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeNarrativeUpstreamFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "status 401")
	assert.Equal(t, int32(1), calls.Load())
}

func TestStreamExhaustedRetriesReturnsUpstreamError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.MaxRetries = 2
	client := NewClient(cfg, nopLogger{})
	err := client.Stream(context.Background(), StreamRequest{Model: "m", MaxTokens: 10}, &bytes.Buffer{})

	require.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeNarrativeUpstreamFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStreamCollapsesWhitespace(t *testing.T) {
	server := newStreamServer(t, sseChunk("quick\n\nhands,  elite\tvision"))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nopLogger{})
	var buf bytes.Buffer
	err := client.Stream(context.Background(), StreamRequest{
		Model:              "gpt-4o-mini",
		MaxTokens:          120,
		CollapseWhitespace: true,
	}, &buf)

	require.NoError(t, err)
	assert.Equal(t, "quick hands, elite vision", buf.String())
}

func TestStreamRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := NewClient(cfg, nopLogger{})

	assert.False(t, client.Enabled())
	err := client.Stream(context.Background(), StreamRequest{Model: "m"}, &bytes.Buffer{})
	assert.Error(t, err)
}
