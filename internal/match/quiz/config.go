// internal/match/quiz/config.go
package quiz

// Weights splits the quiz score across the five preference dimensions.
// They sum to 1.0 so each dimension contributes at most 100 raw points
// before synergy bonuses.
type Weights struct {
	Location    float64
	Nationality float64
	Fandom      float64
	Style       float64
	Philosophy  float64
}

// Config carries the quiz scoring constants.
type Config struct {
	Weights Weights

	// Timezone-distance payouts indexed by |user tz - team tz| (0..3).
	LiveBias       [4]float64
	HighlightsBias [4]float64

	// Flat credits when a dimension has no usable preference.
	FlexibleLocationCredit   float64
	NeutralNationalityCredit float64

	NationalityScaleHigh   float64
	NationalityScaleMedium float64

	SynergyBonus  float64
	HistoricBonus float64
	MarqueeBonus  float64
	TierBonus     float64

	MinPercent int
	MaxPercent int
}

// historicBrands are the franchises that carry historic brand appeal,
// keyed by full canonical name.
var historicBrands = map[string]bool{
	"Boston Celtics":     true,
	"Los Angeles Lakers": true,
	"New York Knicks":    true,
	"Chicago Bulls":      true,
}

// marqueeStars trigger the star-dominance synergy bonus; matching is a
// case-insensitive substring test against each roster entry.
var marqueeStars = []string{
	"LeBron", "LeBron James", "Anthony Davis", "Stephen Curry", "Kevin Durant",
	"Luka", "Luka Dončić", "Giannis", "Giannis Antetokounmpo", "Nikola Jokić",
	"Joel Embiid", "Kawhi Leonard", "Jayson Tatum", "Damian Lillard", "Devin Booker",
}

// DefaultConfig returns the production quiz scoring table. Style and
// identity carry the most weight; nationality scales with the user's
// stated importance.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Location:    0.20,
			Nationality: 0.15,
			Fandom:      0.20,
			Style:       0.25,
			Philosophy:  0.20,
		},
		LiveBias:       [4]float64{100, 65, 30, 5},
		HighlightsBias: [4]float64{85, 70, 55, 40},

		FlexibleLocationCredit:   50,
		NeutralNationalityCredit: 30,

		NationalityScaleHigh:   1.6,
		NationalityScaleMedium: 1.2,

		SynergyBonus:  8,
		HistoricBonus: 6,
		MarqueeBonus:  6,
		TierBonus:     12,

		MinPercent: 55,
		MaxPercent: 98,
	}
}
