// internal/match/quiz/engine_test.go
package quiz

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

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), datasets.NewStore(), nopLogger{})
}

func TestMatchNationalityDrivesPick(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{
		Nationality:           "Slovenia",
		NationalityImportance: models.ImportanceHigh,
	})

	require.Len(t, results, 3)
	assert.Equal(t, "Dallas Mavericks", results[0].Name)
	assert.Contains(t, results[0].Reasons, "Players from Slovenia")
}

func TestMatchFullAlignment(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{
		TimezonePref: models.TzEastern,
		WatchMode:    models.WatchLiveGames,
		Style:        models.StyleThreePoint,
		Philosophy:   models.PhilosophyHistoric,
		TierPref:     models.TierContender,
	})

	require.Len(t, results, 3)
	assert.Equal(t, "Boston Celtics", results[0].Name)
	assert.GreaterOrEqual(t, results[0].MatchPercent, 90)
	assert.Equal(t, models.TierContender, results[0].TierLabel)
	assert.Contains(t, results[0].Reasons, "Matches your timezone for easier live viewing")
	assert.LessOrEqual(t, len(results[0].Reasons), 4)
}

func TestMatchFandomClub(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{
		HasFandom:  "yes",
		FandomClub: "Arsenal",
	})

	require.NotEmpty(t, results)
	assert.Equal(t, "Oklahoma City Thunder", results[0].Name)
	assert.Contains(t, results[0].Reasons, "Aligns with your existing club identity")
}

func TestMatchLiveModePrefersNearbyTimezone(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{
		TimezonePref: models.TzPacific,
		WatchMode:    models.WatchLiveGames,
	})

	require.Len(t, results, 3)
	store := datasets.NewStore()
	for _, r := range results {
		team, ok := store.Team(r.Name)
		require.True(t, ok)
		assert.Equal(t, "PT", team.Timezone, "%s should be a Pacific team", r.Name)
	}
}

func TestMatchNeutralAnswers(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{})

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 55, r.MatchPercent, "neutral answers floor at the minimum percent")
		assert.Equal(t, models.WatchHighlightsOnly, r.UserWatchMode)
	}
}

func TestMatchDisplayMetadata(t *testing.T) {
	engine := newTestEngine()

	results := engine.Match(models.QuizAnswers{Location: "Germany"})

	require.NotEmpty(t, results)
	first := results[0]
	// Neutral scoring keeps the canonical order, so an Eastern team leads;
	// a 7 PM ET tip-off is 1 AM in Germany.
	assert.Equal(t, "Atlanta Hawks", first.Name)
	assert.Equal(t, "\U0001F1E9\U0001F1EA", first.UserFlag)
	assert.Equal(t, "Typical local start for home games: 1 AM (01:00)", first.ViewingLocalTip)
	assert.Contains(t, first.ViewingSentence, "in Germany")
	assert.Contains(t, first.ViewingSentence, "replays/highlights may fit better")
	assert.Equal(t, "Germany", first.UserLocation)
}

func TestMatchIsDeterministic(t *testing.T) {
	engine := newTestEngine()
	answers := models.QuizAnswers{
		TimezonePref: models.TzCentral,
		Style:        models.StyleStarDominance,
		Philosophy:   models.PhilosophyContender,
	}

	assert.Equal(t, engine.Match(answers), engine.Match(answers))
}

func TestStyleMatchesPreference(t *testing.T) {
	tests := []struct {
		name  string
		style string
		pref  string
		want  bool
	}{
		{name: "fast paced", style: "Up-tempo transition attack", pref: models.StyleFastPaced, want: true},
		{name: "three point", style: "Five-out spacing and 3-point volume", pref: models.StyleThreePoint, want: true},
		{name: "defensive", style: "Grit and rim protection", pref: models.StyleDefensive, want: true},
		{name: "star dominance", style: "Everything runs through Luka", pref: models.StyleStarDominance, want: true},
		{name: "team first", style: "Ball movement and unselfish play", pref: models.StyleTeamFirst, want: true},
		{name: "no match", style: "Post-up offense", pref: models.StyleFastPaced, want: false},
		{name: "unknown pref", style: "Anything", pref: "zone_defense", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styleMatchesPreference(tt.style, tt.pref))
		})
	}
}

func TestPhilosophyMatches(t *testing.T) {
	contender := models.Team{Status: "Defending champions"}
	assert.True(t, philosophyMatches(contender, "Oklahoma City Thunder", models.PhilosophyContender))

	young := models.Team{Narrative: "A young core on the rise."}
	assert.True(t, philosophyMatches(young, "Orlando Magic", models.PhilosophyYoungTeam))

	assert.True(t, philosophyMatches(models.Team{}, "Chicago Bulls", models.PhilosophyHistoric),
		"historic brands match regardless of narrative")
	assert.False(t, philosophyMatches(models.Team{}, "Utah Jazz", models.PhilosophyHistoric))

	underdog := models.Team{Narrative: "Loyal fanbase through thin years."}
	assert.True(t, philosophyMatches(underdog, "Cleveland Cavaliers", models.PhilosophyUnderdog))
}
