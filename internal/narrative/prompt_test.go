// internal/narrative/prompt_test.go
package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/models"
)

var promptTopThree = []models.MatchResult{
	{Name: "Los Angeles Lakers", Headline: "Hollywood stakes every night", Reasons: []string{"Direct franchise/city link to your selected team(s)"}},
	{Name: "Boston Celtics", Headline: "Deepest two-way roster in the East"},
	{Name: "Cleveland Cavaliers", Headline: "Top-seed defense with backcourt firepower", Catch: "Expect growing pains"},
}

func TestBuildSourcesPrompt(t *testing.T) {
	store := datasets.NewStore()

	system, user := BuildSourcesPrompt(store, promptTopThree, []string{"Manchester United", "Cleveland Browns"})

	assert.Contains(t, system, "sports concierge")
	assert.Contains(t, user, "Source teams: Manchester United, Cleveland Browns")
	assert.Contains(t, user, "- Manchester United [Premier League] (Manchester)")
	assert.Contains(t, user, "primary_nba: Los Angeles Lakers")
	assert.Contains(t, user, "city_link_nba: Cleveland Cavaliers")
	assert.Contains(t, user, "Top recommendation -> Los Angeles Lakers")
	assert.Contains(t, user, "Second choice -> Boston Celtics")
	assert.Contains(t, user, "Dark horse -> Cleveland Cavaliers")
	assert.Contains(t, user, "source_identity_tags:")
	assert.Contains(t, user, "catch: Expect growing pains")
}

func TestBuildSourcesPromptUnknownClub(t *testing.T) {
	store := datasets.NewStore()

	_, user := BuildSourcesPrompt(store, promptTopThree, []string{"FC Nowhere"})

	assert.Contains(t, user, "- FC Nowhere")
}

func TestBuildQuizPrompt(t *testing.T) {
	store := datasets.NewStore()
	answers := models.QuizAnswers{Location: "Germany", Style: "three_point"}

	system, user := BuildQuizPrompt(store, promptTopThree, answers)

	assert.Contains(t, system, "location/timezone")
	assert.Contains(t, user, `"location":"Germany"`)
	assert.Contains(t, user, `"style":"three_point"`)
	assert.Contains(t, user, "1. Los Angeles Lakers")
	assert.Contains(t, user, "stars: LeBron James")
	assert.Contains(t, user, "Write EXACTLY three paragraphs")
	assert.NotContains(t, user, "source_identity_tags")
}

func TestBuildPlayerPrompt(t *testing.T) {
	system, user := BuildPlayerPrompt(
		models.TraitPlayer{Player: "Ja Morant", Team: "Memphis Grizzlies"},
		[]string{"off_dunking", "tempo_fast"},
	)

	assert.Contains(t, system, "friendly NBA guide")
	assert.Contains(t, user, "Traits picked: off_dunking, tempo_fast")
	assert.Contains(t, user, "Ja Morant of the Memphis Grizzlies")
	assert.Contains(t, user, "END THE HOOK WITH A PERIOD")
}

func TestBuildPlayerPromptDefaults(t *testing.T) {
	_, user := BuildPlayerPrompt(models.TraitPlayer{Player: "Someone New"}, nil)

	assert.Contains(t, user, "Traits picked: beginner preferences")
	assert.Contains(t, user, "why Someone New is fun to follow")
	assert.NotContains(t, user, "Someone New of the", "no team clause without a team")
}

func TestWatchabilityLabel(t *testing.T) {
	assert.Equal(t, "92/100 (elite)", watchabilityLabel(92))
	assert.Equal(t, "85/100 (high)", watchabilityLabel(85))
	assert.Equal(t, "70/100 (medium)", watchabilityLabel(70))
	assert.Equal(t, "50/100 (low)", watchabilityLabel(50))
	assert.Equal(t, "", watchabilityLabel(0))
}

func TestHumanizeStyles(t *testing.T) {
	require.Equal(t,
		"three-point shooting and spacing, team-first ball movement",
		humanizeStyles([]string{"three_point", "team_first"}),
	)
	assert.Equal(t, "mystery_style", humanizeStyles([]string{"mystery_style"}))
	assert.Equal(t, "", humanizeStyles(nil))
}
