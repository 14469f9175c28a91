// pkg/client/client.go

// Package client is a small Go client for the hoopmatch HTTP API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"hoopmatch/internal/common/httpx"
)

// MatchResult mirrors the wire shape of one recommendation.
type MatchResult struct {
	Name             string   `json:"name"`
	MatchPercent     int      `json:"matchPercent"`
	Reasons          []string `json:"reasons"`
	Stars            []string `json:"stars,omitempty"`
	ViewingTimes     string   `json:"viewingTimes,omitempty"`
	Status           string   `json:"status,omitempty"`
	Style            string   `json:"style,omitempty"`
	Headline         string   `json:"headline,omitempty"`
	TierLabel        string   `json:"tierLabel,omitempty"`
	TitleLabel       string   `json:"titleLabel,omitempty"`
	Catch            string   `json:"catch,omitempty"`
	NarrativeSummary string   `json:"narrativeSummary,omitempty"`
}

// APIError is the decoded error envelope returned by the service.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable"`
	RequestID string `json:"requestId,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hoopmatch: %s: %s", e.Code, e.Message)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *httpx.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpx.NewClient(timeout),
	}
}

// Health checks the /healthz endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hoopmatch: health check returned %d", resp.StatusCode)
	}
	return nil
}

// MatchSources ranks NBA teams from fandoms in other leagues.
func (c *Client) MatchSources(ctx context.Context, teams []string) ([]MatchResult, error) {
	return c.match(ctx, "/api/match/sources", map[string]interface{}{"teams": teams})
}

// MatchQuiz ranks NBA teams from quiz answers.
func (c *Client) MatchQuiz(ctx context.Context, answers map[string]string) ([]MatchResult, error) {
	return c.match(ctx, "/api/match/quiz", map[string]interface{}{"answers": answers})
}

// MatchPlayers ranks NBA teams from favorite players.
func (c *Client) MatchPlayers(ctx context.Context, players []string) ([]MatchResult, error) {
	return c.match(ctx, "/api/match/players", map[string]interface{}{"players": players})
}

// Narrative fetches the streamed summary for a sources result and
// returns it fully assembled.
func (c *Client) Narrative(ctx context.Context, topThree []MatchResult, sources []string) (string, error) {
	return c.text(ctx, "/api/narrative", map[string]interface{}{
		"topThree": topThree,
		"sources":  sources,
	})
}

// QuizNarrative fetches the streamed summary for a quiz result.
func (c *Client) QuizNarrative(ctx context.Context, results []MatchResult, answers map[string]string) (string, error) {
	return c.text(ctx, "/api/narrative/quiz", map[string]interface{}{
		"results": results,
		"answers": answers,
	})
}

func (c *Client) match(ctx context.Context, path string, payload interface{}) ([]MatchResult, error) {
	resp, err := c.post(ctx, path, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out struct {
		Results []MatchResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("hoopmatch: decoding response: %w", err)
	}
	return out.Results, nil
}

func (c *Client) text(ctx context.Context, path string, payload interface{}) (string, error) {
	resp, err := c.post(ctx, path, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("hoopmatch: reading stream: %w", err)
	}
	return string(body), nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	var envelope struct {
		Error APIError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return fmt.Errorf("hoopmatch: unexpected status %d", resp.StatusCode)
	}
	return &envelope.Error
}
