// internal/narrative/client.go

// Package narrative streams LLM-written recommendation stories to the
// client. The upstream is an OpenAI-compatible chat completions API;
// when no key is configured every stream degrades to the deterministic
// local synthesizer in fallback.go.
package narrative

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	commonerrors "hoopmatch/internal/common/errors"
	"hoopmatch/internal/common/httpx"
)

// Logger defines the logging interface for the synthesizer client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client talks to the upstream chat completions API.
type Client struct {
	config     Config
	httpClient *httpx.Client
	logger     Logger
}

// NewClient creates a synthesizer client.
func NewClient(config Config, log Logger) *Client {
	return &Client{
		config:     config,
		httpClient: httpx.NewClient(config.Timeout),
		logger:     log,
	}
}

// Enabled reports whether an upstream API key is configured.
func (c *Client) Enabled() bool {
	return c.config.APIKey != ""
}

// StreamRequest is one streamed completion.
type StreamRequest struct {
	System    string
	User      string
	Model     string
	MaxTokens int

	Temperature float64
	TopP        float64

	// CollapseWhitespace folds runs of whitespace inside each delta to a
	// single space (used for the one-line player hooks).
	CollapseWhitespace bool
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
	Stream              bool          `json:"stream"`
	Temperature         float64       `json:"temperature,omitempty"`
	TopP                float64       `json:"top_p,omitempty"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Stream sends the completion request and writes content deltas to w as
// they arrive. Connection failures and 5xx responses are retried with
// exponential backoff; once the stream is open, errors pass through.
func (c *Client) Stream(ctx context.Context, req StreamRequest, w io.Writer) error {
	if !c.Enabled() {
		return fmt.Errorf("narrative upstream is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:               req.Model,
		Messages:            []chatMessage{{Role: "system", Content: req.System}, {Role: "user", Content: req.User}},
		MaxCompletionTokens: req.MaxTokens,
		Stream:              true,
		Temperature:         req.Temperature,
		TopP:                req.TopP,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal completion request: %w", err)
	}

	var resp *http.Response
	for attempt := 1; attempt <= c.config.MaxRetries; attempt++ {
		httpReq, err := http.NewRequest(http.MethodPost, c.config.APIURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create completion request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

		resp, err = c.httpClient.DoWithContext(ctx, httpReq)
		if err == nil && resp.StatusCode < 500 {
			break
		}
		if resp != nil {
			resp.Body.Close()
			resp = nil
		}
		if attempt == c.config.MaxRetries {
			if err == nil {
				err = fmt.Errorf("upstream unavailable")
			}
			return commonerrors.NewNarrativeUpstreamError(
				fmt.Errorf("completion request failed after %d attempts: %w", attempt, err))
		}
		backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
		c.logger.Warn("narrative upstream unavailable, retrying", map[string]interface{}{
			"attempt": attempt,
			"backoff": backoff.String(),
		})
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return commonerrors.NewNarrativeTimeoutError()
			}
			return ctx.Err()
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return commonerrors.NewNarrativeUpstreamError(
			fmt.Errorf("completion request rejected with status %d: %s", resp.StatusCode, strings.TrimSpace(string(errBody))))
	}

	return c.copyStream(resp.Body, w, req.CollapseWhitespace)
}

// copyStream decodes the SSE response and forwards content deltas.
func (c *Client) copyStream(body io.Reader, w io.Writer, collapse bool) error {
	flusher, _ := w.(http.Flusher)
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			return nil
		}
		var chunk chatChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Malformed chunks are skipped, not fatal.
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		if collapse {
			delta = whitespaceRun.ReplaceAllString(delta, " ")
		}
		if _, err := io.WriteString(w, delta); err != nil {
			return fmt.Errorf("failed to write narrative delta: %w", err)
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read narrative stream: %w", err)
	}
	return nil
}
