// internal/narrative/config.go
package narrative

import "time"

// Config holds the upstream LLM connection settings. An empty APIKey
// disables the upstream entirely; callers fall back to the local
// synthesizer.
type Config struct {
	APIURL string
	APIKey string

	// Model and token budget for the three-paragraph team narratives.
	Model     string
	MaxTokens int

	// Quiz narratives reuse Model with a smaller budget.
	QuizMaxTokens int

	// Player hooks use a cheaper model and a tight budget per player.
	PlayerModel     string
	PlayerMaxTokens int

	Timeout    time.Duration
	MaxRetries int
}

// DefaultConfig returns the production synthesizer settings.
func DefaultConfig() Config {
	return Config{
		APIURL:          "https://api.openai.com/v1/chat/completions",
		Model:           "gpt-4.1-2025-04-14",
		MaxTokens:       1000,
		QuizMaxTokens:   900,
		PlayerModel:     "gpt-4o-mini",
		PlayerMaxTokens: 120,
		Timeout:         60 * time.Second,
		MaxRetries:      3,
	}
}
