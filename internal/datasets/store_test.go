// internal/datasets/store_test.go
package datasets

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "hoopmatch/internal/common/errors"
	"hoopmatch/internal/match/alias"
	"hoopmatch/internal/models"
)

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore()

	assert.Len(t, store.TeamOrder(), 30)
	assert.Len(t, store.Teams(), 30)

	// Every ordered name resolves, and order carries no duplicates.
	seen := make(map[string]bool)
	for _, name := range store.TeamOrder() {
		_, ok := store.Team(name)
		require.True(t, ok, "ordered team %q missing from table", name)
		assert.False(t, seen[name], "duplicate ordered team %q", name)
		seen[name] = true
	}

	lakers, ok := store.Team("Los Angeles Lakers")
	require.True(t, ok)
	assert.Equal(t, "West", lakers.Conference)
	assert.Equal(t, "PT", lakers.Timezone)
	assert.Contains(t, lakers.Stars, "LeBron James")
}

func TestStoreSourceLookup(t *testing.T) {
	store := NewStore()

	tests := []struct {
		key     string
		league  string
		primary string
	}{
		{key: "Manchester United", league: "Premier League", primary: "Lakers"},
		{key: "Dallas Cowboys", league: "NFL", primary: "Mavericks"},
		{key: "New York Yankees", league: "MLB", primary: "Knicks"},
		{key: "Toronto Maple Leafs", league: "NHL", primary: "Raptors"},
		{key: "Ferrari", league: "F1", primary: ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			club, ok := store.SourceClub(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.league, club.League)
			assert.Equal(t, tt.primary, club.PrimaryTeam)
		})
	}

	_, ok := store.SourceClub("FC Nowhere")
	assert.False(t, ok)
	assert.Contains(t, store.SourceKeys(), "Liverpool")
}

func TestShorthandRoundTrip(t *testing.T) {
	store := NewStore()

	// Every curated primary-team link points at a canonical franchise.
	for _, key := range store.SourceKeys() {
		club, _ := store.SourceClub(key)
		if club.PrimaryTeam == "" {
			continue
		}
		_, ok := store.Team(alias.FullName(club.PrimaryTeam))
		assert.True(t, ok, "club %q primary %q resolves to no franchise", key, club.PrimaryTeam)
	}

	// Shorthand and full names round-trip over the whole team table.
	for _, name := range store.TeamOrder() {
		short := alias.ShortName(name)
		require.NotEqual(t, name, short, "franchise %q has no shorthand", name)
		assert.Equal(t, name, alias.FullName(short))
	}
}

func TestStoreNationalities(t *testing.T) {
	store := NewStore()

	assert.Contains(t, store.Nationalities("Mavericks"), "Slovenia")
	assert.Contains(t, store.Nationalities("Nuggets"), "Serbia")
	assert.Equal(t, []string{"USA"}, store.Nationalities("Celtics"))
	assert.Nil(t, store.Nationalities("Los Angeles Lakers"), "lookups use shorthand names only")
}

func TestStoreTraitPlayers(t *testing.T) {
	store := NewStore()

	shooters := store.TraitPlayers("off_three_point")
	require.NotEmpty(t, shooters)
	assert.Equal(t, "Stephen Curry", shooters[0].Player)
	assert.Equal(t, "Golden State Warriors", shooters[0].Team)

	assert.Empty(t, store.TraitPlayers("not_a_trait"))
	assert.Contains(t, store.TraitKeys(), "def_rim")
}

func TestStoreLegacyPlayers(t *testing.T) {
	store := NewStore()

	archetypes := make(map[string]int)
	for _, p := range store.LegacyPlayers() {
		archetypes[p.Archetype]++
		assert.NotEmpty(t, p.Team, "player %q missing team", p.Name)
	}
	assert.Equal(t, 6, archetypes["flashy"])
	assert.Equal(t, 6, archetypes["power"])
	assert.Equal(t, 6, archetypes["finesse"])
}

func TestNewStoreWithTeamsSortsOrder(t *testing.T) {
	store := NewStoreWithTeams(map[string]models.Team{
		"Zeta Team":  {Name: "Zeta Team"},
		"Alpha Team": {Name: "Alpha Team"},
	})

	assert.Equal(t, []string{"Alpha Team", "Zeta Team"}, store.TeamOrder())
}

func TestLoadTeams(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	columns := []string{
		"name", "conference", "division", "city", "timezone",
		"status", "status_enum", "style", "playing_styles", "philosophy",
		"narrative", "headline", "stars", "watchability_score", "viewing_times",
		"bandwagon_factor", "dysfunction_level", "injury_risk",
	}
	mock.ExpectQuery("SELECT name, conference").WillReturnRows(
		sqlmock.NewRows(columns).AddRow(
			"Boston Celtics", "East", "Atlantic", "Boston", "ET",
			"Contender", "contender", "Five-out spacing",
			"{three_point,team_first}", "{winning_tradition}",
			"Historic franchise.", "Deep roster", "{\"Jayson Tatum\"}",
			88, "7:30 PM ET most nights",
			"High", "Low", "Medium",
		),
	)

	teams, err := LoadTeams(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	celtics := teams["Boston Celtics"]
	assert.Equal(t, "contender", celtics.StatusEnum)
	assert.Equal(t, []string{"three_point", "team_first"}, celtics.PlayingStyles)
	assert.Equal(t, 88, celtics.Watchability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTeamsQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, conference").WillReturnError(assert.AnError)

	_, err = LoadTeams(context.Background(), db)
	require.Error(t, err)

	var stdErr *commonerrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, commonerrors.ErrCodeQueryExecutionFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}
