// internal/match/narrative/enrich_test.go
package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/models"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}

func newTestEnricher() *Enricher {
	return NewEnricher(DefaultTemplates(), datasets.NewStore(), nopLogger{})
}

func TestEnrichTitleLabels(t *testing.T) {
	enricher := newTestEnricher()
	matches := []models.MatchResult{
		{Name: "Boston Celtics"},
		{Name: "Denver Nuggets"},
		{Name: "Cleveland Cavaliers"},
	}

	out := enricher.Enrich(matches, nil)

	require.Len(t, out, 3)
	assert.Equal(t, "Top recommendation", out[0].TitleLabel)
	assert.Equal(t, "Second choice", out[1].TitleLabel)
	assert.Equal(t, "Dark horse", out[2].TitleLabel)
}

func TestEnrichIdentityReason(t *testing.T) {
	enricher := newTestEnricher()
	matches := []models.MatchResult{{Name: "Boston Celtics"}}

	out := enricher.Enrich(matches, []string{"Liverpool"})

	require.Len(t, out, 1)
	var identityLine string
	for _, r := range out[0].Reasons {
		if len(r) > 0 && r[0] == 'S' {
			identityLine = r
		}
	}
	assert.Contains(t, identityLine, "Similar identity to Liverpool:")
	assert.Contains(t, identityLine, "deep history and tradition")
}

func TestEnrichWatchabilityAndStatus(t *testing.T) {
	enricher := newTestEnricher()

	out := enricher.Enrich([]models.MatchResult{{Name: "Oklahoma City Thunder"}}, nil)

	require.Len(t, out, 1)
	assert.Contains(t, out[0].Reasons, "High watchability - consistently entertaining games")
	assert.Contains(t, out[0].Reasons, "Competitive now (defending champions)")
}

func TestEnrichCatchPriority(t *testing.T) {
	enricher := newTestEnricher()

	tests := []struct {
		team string
		want string
	}{
		{team: "Washington Wizards", want: "Expect growing pains while the rebuild plays out"},
		{team: "New Orleans Pelicans", want: "Injury absences could derail stretches of the season"},
		{team: "Boston Celtics", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			out := enricher.Enrich([]models.MatchResult{{Name: tt.team}}, nil)
			require.Len(t, out, 1)
			assert.Equal(t, tt.want, out[0].Catch)
		})
	}
}

func TestEnrichKeepsExistingReasonsAndCaps(t *testing.T) {
	enricher := newTestEnricher()
	matches := []models.MatchResult{{
		Name:    "Boston Celtics",
		Reasons: []string{"Existing reason one", "Existing reason two", "Existing reason three"},
	}}

	out := enricher.Enrich(matches, []string{"Liverpool", "Manchester United"})

	require.Len(t, out, 1)
	assert.Equal(t, "Existing reason one", out[0].Reasons[0])
	assert.LessOrEqual(t, len(out[0].Reasons), 4)
}

func TestEnrichLeavesNarrativeSummaryEmpty(t *testing.T) {
	enricher := newTestEnricher()
	matches := []models.MatchResult{{Name: "Boston Celtics", NarrativeSummary: "stale"}}

	out := enricher.Enrich(matches, nil)

	assert.Empty(t, out[0].NarrativeSummary)
}

func TestEnrichDedupesSourceSelections(t *testing.T) {
	enricher := newTestEnricher()
	matches := []models.MatchResult{{Name: "Denver Nuggets"}}

	once := enricher.Enrich(matches, []string{"Liverpool"})
	twice := enricher.Enrich(matches, []string{"Liverpool", "Liverpool"})

	assert.Equal(t, once, twice)
}
