// internal/match/quiz/display_test.go
package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalOffsetFromET(t *testing.T) {
	tests := []struct {
		location string
		want     int
	}{
		{location: "", want: 0},
		{location: "London, UK", want: 5},
		{location: "Berlin, Germany", want: 6},
		{location: "Athens, Greece", want: 7},
		{location: "Dubai, UAE", want: 8},
		{location: "Mumbai, India", want: 10},
		{location: "Sydney, Australia", want: 14},
		{location: "Auckland, New Zealand", want: 16},
		{location: "Mexico City", want: -1},
		{location: "Sao Paulo, Brazil", want: 1},
		{location: "Vancouver", want: -3},
		{location: "Chicago", want: -1},
		{location: "Phoenix, Arizona", want: -2},
		{location: "Los Angeles", want: -3},
		{location: "New York", want: 0},
		{location: "Nowhere in particular", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, localOffsetFromET(tt.location))
		})
	}
}

func TestClockFormats(t *testing.T) {
	assert.Equal(t, "7 PM", to12(19))
	assert.Equal(t, "12 AM", to12(0))
	assert.Equal(t, "12 PM", to12(12))
	assert.Equal(t, "1 AM", to12(25))
	assert.Equal(t, "11 PM", to12(-1))

	assert.Equal(t, "19:00", to24(19))
	assert.Equal(t, "00:00", to24(24))
	assert.Equal(t, "01:00", to24(25))
	assert.Equal(t, "23:00", to24(-1))
}

func TestCountryFlagEmoji(t *testing.T) {
	assert.Equal(t, "\U0001F1EC\U0001F1E7", countryFlagEmoji("London, England"))
	assert.Equal(t, "\U0001F1FA\U0001F1F8", countryFlagEmoji("Boston, USA"))
	assert.Equal(t, "\U0001F1E8\U0001F1E6", countryFlagEmoji("Toronto, Canada"))
	assert.Equal(t, "", countryFlagEmoji(""))
	assert.Equal(t, "", countryFlagEmoji("Atlantis"))
}

func TestTierLabelFor(t *testing.T) {
	assert.Equal(t, "Title contender", tierLabelFor("contender", "", nil, 70))
	assert.Equal(t, "Title contender", tierLabelFor("defending_champion", "", nil, 70))
	assert.Equal(t, "Title contender", tierLabelFor("competing", "", nil, 90), "high watchability promotes")
	assert.Equal(t, "Rebuilding with young stars", tierLabelFor("rebuilding", "", nil, 50))
	assert.Equal(t, "Rebuilding with young stars", tierLabelFor("rising", "", nil, 60))
	assert.Equal(t, "Defense-first team", tierLabelFor("competing", "", []string{"defensive"}, 70))
	assert.Equal(t, "Bottom tier", tierLabelFor("", "Bottom of the standings, lottery focused", nil, 40))
	assert.Equal(t, "Playoff team", tierLabelFor("competing", "Solid seed", []string{"fast_paced"}, 75))
}
