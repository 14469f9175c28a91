// test/e2e/e2e_test.go

// End-to-end smoke tests against a running hoopmatch instance.
// Set HOOPMATCH_E2E_URL (e.g. http://localhost:8080) to enable them.
package e2e

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopmatch/pkg/client"
)

func e2eClient(t *testing.T) *client.Client {
	t.Helper()
	url := os.Getenv("HOOPMATCH_E2E_URL")
	if url == "" {
		t.Skip("HOOPMATCH_E2E_URL not set, skipping e2e tests")
	}
	return client.New(client.Config{BaseURL: url, Timeout: 30 * time.Second})
}

func TestE2EHealth(t *testing.T) {
	c := e2eClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, c.Health(ctx))
}

func TestE2ESourcesFlow(t *testing.T) {
	c := e2eClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	results, err := c.MatchSources(ctx, []string{"Liverpool", "Dallas Cowboys"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.NotEmpty(t, r.Name)
		assert.Greater(t, r.MatchPercent, 0)
		assert.NotEmpty(t, r.Reasons)
	}
	assert.Equal(t, "Top recommendation", results[0].TitleLabel)

	// The narrative endpoint must answer even without an upstream key.
	text, err := c.Narrative(ctx, results, []string{"Liverpool", "Dallas Cowboys"})
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(text))
	assert.Contains(t, text, results[0].Name)
}

func TestE2EQuizFlow(t *testing.T) {
	c := e2eClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	answers := map[string]string{
		"location":   "Germany",
		"style":      "fast_paced",
		"philosophy": "win_now",
	}
	results, err := c.MatchQuiz(ctx, answers)
	require.NoError(t, err)
	require.Len(t, results, 3)

	text, err := c.QuizNarrative(ctx, results, answers)
	require.NoError(t, err)
	assert.Contains(t, text, results[0].Name)
}

func TestE2EPlayersFlow(t *testing.T) {
	c := e2eClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, err := c.MatchPlayers(ctx, []string{"Luka Dončić", "Stephen Curry"})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.GreaterOrEqual(t, results[0].MatchPercent, results[len(results)-1].MatchPercent)
}

func TestE2EValidationErrors(t *testing.T) {
	c := e2eClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := c.MatchSources(ctx, []string{})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
}
