// internal/match/legacy/legacy_test.go
package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/models"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}

func newTestScorer() *Scorer {
	return NewScorer(datasets.NewStore(), nopLogger{})
}

func TestQuizHistoricNarrative(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Quiz(models.LegacyAnswers{
		Location:  "uk",
		Narrative: "historic",
	})

	require.Len(t, results, 3)
	for idx, r := range results {
		assert.GreaterOrEqual(t, r.MatchPercent, 75)
		assert.LessOrEqual(t, r.MatchPercent, 99)
		if idx > 0 {
			assert.NotEqual(t, results[idx-1].Name, r.Name)
		}
	}
	// East-coast historic brands collect location, narrative and
	// watchability points; both should outrank the field.
	names := []string{results[0].Name, results[1].Name, results[2].Name}
	assert.Contains(t, names, "Boston Celtics")
	assert.Contains(t, names, "New York Knicks")
}

func TestQuizDealbreakersPushTeamsDown(t *testing.T) {
	scorer := newTestScorer()
	answers := models.LegacyAnswers{
		Timeline:    "underdog",
		Dealbreaker: []string{"losing", "injuries"},
	}

	results := scorer.Quiz(answers)

	require.Len(t, results, 3)
	store := datasets.NewStore()
	for _, r := range results {
		team, _ := store.Team(r.Name)
		assert.NotEqual(t, "rebuilding", team.StatusEnum,
			"losing dealbreaker should bury rebuilding teams despite the underdog timeline")
	}
}

func TestQuizIsDeterministic(t *testing.T) {
	scorer := newTestScorer()
	answers := models.LegacyAnswers{Location: "central-eu", Timeline: "now", LateGames: true}

	assert.Equal(t, scorer.Quiz(answers), scorer.Quiz(answers))
}

func TestFootballPrimaryMapping(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Football("Manchester United", "")

	require.Len(t, results, 3)
	assert.Equal(t, "Los Angeles Lakers", results[0].Name)
	assert.Equal(t, 95, results[0].MatchPercent)
	require.NotEmpty(t, results[0].Reasons)
	assert.Contains(t, results[0].Reasons[0], "Direct franchise/city link to Manchester United")
	assert.Contains(t, results[0].Reasons[0], "Identity:")

	// Non-primary picks are identity comparisons.
	assert.Contains(t, results[1].Reasons[0], "Similar identity to Manchester United")
	assert.Equal(t, 92, results[1].MatchPercent)
	assert.Equal(t, 89, results[2].MatchPercent)
}

func TestFootballRefinementOverrides(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Football("Liverpool", "rise")

	require.Len(t, results, 3)
	assert.Equal(t, "Oklahoma City Thunder", results[0].Name)
	assert.Equal(t, "Orlando Magic", results[1].Name)
	assert.Equal(t, "Cleveland Cavaliers", results[2].Name)
}

func TestFootballClubAlias(t *testing.T) {
	scorer := newTestScorer()

	byAlias := scorer.Football("Newcastle United", "")
	byKey := scorer.Football("Newcastle", "")

	require.NotEmpty(t, byAlias)
	assert.Equal(t, byKey[0].Name, byAlias[0].Name)
}

func TestFootballUnknownClub(t *testing.T) {
	scorer := newTestScorer()

	assert.Nil(t, scorer.Football("FC Nowhere", ""))
}

func TestPlayersSharedTeamLeads(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Players([]string{"Luka Dončić", "Kyrie Irving", "Ja Morant"})

	require.Len(t, results, 3)
	assert.Equal(t, "Dallas Mavericks", results[0].Name, "two Mavericks picks pin the team first")
	assert.Equal(t, 92, results[0].MatchPercent)
	assert.Equal(t, 88, results[1].MatchPercent)
	assert.Equal(t, 84, results[2].MatchPercent)
}

func TestPlayersDominantArchetype(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Players([]string{"Giannis Antetokounmpo", "Zion Williamson", "Trae Young"})

	require.Len(t, results, 3)
	assert.Equal(t, "Milwaukee Bucks", results[0].Name)
	assert.Equal(t, "Cleveland Cavaliers", results[1].Name)
	assert.Equal(t, "New York Knicks", results[2].Name)
}

func TestPlayersEmptySelection(t *testing.T) {
	scorer := newTestScorer()

	assert.Nil(t, scorer.Players(nil))
	assert.Nil(t, scorer.Players([]string{}))
}

func TestPlayersUnknownNamesIgnored(t *testing.T) {
	scorer := newTestScorer()

	results := scorer.Players([]string{"Nobody In Particular"})

	// No counts land, so the flashy default fills all three slots.
	require.Len(t, results, 3)
	assert.Equal(t, "Atlanta Hawks", results[0].Name)
}
