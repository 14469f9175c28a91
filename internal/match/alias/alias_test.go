// internal/match/alias/alias_test.go
package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hoopmatch/internal/datasets"
)

func TestFullAndShortNames(t *testing.T) {
	assert.Equal(t, "Los Angeles Lakers", FullName("Lakers"))
	assert.Equal(t, "Portland Trail Blazers", FullName("Trail Blazers"))
	assert.Equal(t, "Philadelphia 76ers", FullName("76ers"))
	assert.Equal(t, "Boston Celtics", FullName("Boston Celtics"), "full names pass through")
	assert.Equal(t, "FC Nowhere", FullName("FC Nowhere"))

	assert.Equal(t, "Lakers", ShortName("Los Angeles Lakers"))
	assert.Equal(t, "76ers", ShortName("Philadelphia 76ers"))
	assert.Equal(t, "Bulls", ShortName("Bulls"), "shorthand passes through")
}

func TestClubKey(t *testing.T) {
	assert.Equal(t, "Newcastle", ClubKey("Newcastle United"))
	assert.Equal(t, "Leicester", ClubKey("Leicester City"))
	assert.Equal(t, "Roma", ClubKey("AS Roma"))
	assert.Equal(t, "Liverpool", ClubKey("Liverpool"))
}

func TestCityMatch(t *testing.T) {
	assert.True(t, CityMatch("Los Angeles", "los angeles"))
	assert.True(t, CityMatch("Los Angeles", "East Los Angeles"))
	assert.True(t, CityMatch("Greater Manchester", "Manchester"))
	assert.False(t, CityMatch("Boston", "Chicago"))
	assert.False(t, CityMatch("", "Boston"))
	assert.False(t, CityMatch("Boston", ""))
}

func TestResolvePrimary(t *testing.T) {
	store := datasets.NewStore()
	teamCity := func(name string) string {
		team, _ := store.Team(name)
		return team.City
	}
	order := store.TeamOrder()

	tests := []struct {
		name    string
		primary string
		city    string
		want    string
	}{
		{name: "shorthand", primary: "Lakers", city: "Los Angeles", want: "Los Angeles Lakers"},
		{name: "full name", primary: "Boston Celtics", city: "", want: "Boston Celtics"},
		{name: "name containment", primary: "Thunder", city: "", want: "Oklahoma City Thunder"},
		{name: "city fallback", primary: "", city: "Cleveland", want: "Cleveland Cavaliers"},
		{name: "unknown primary with city", primary: "Some Club", city: "Memphis", want: "Memphis Grizzlies"},
		{name: "nothing links", primary: "Some Club", city: "Lisbon", want: ""},
		{name: "empty input", primary: "", city: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrimary(tt.primary, tt.city, order, teamCity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagsFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "historic glamour",
			text: "Fallen giant with historic glamour and global star power",
			want: []string{"historic", "cosmopolitan", "star_power"},
		},
		{
			name: "working class winners",
			text: "Working class tradition, relentless pressing, winning history",
			want: []string{"historic", "blue_collar", "underdog", "winning_tradition"},
		},
		{
			name: "technical youth",
			text: "Technical, youth-driven project chasing the title",
			want: []string{"technical", "possession", "young_team", "winning_tradition"},
		},
		{
			name: "no keywords",
			text: "A mid-table side with nothing notable",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagsFromText(tt.text))
		})
	}
}
