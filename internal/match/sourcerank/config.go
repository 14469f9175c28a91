// internal/match/sourcerank/config.go
package sourcerank

// TagRule describes which NBA team attributes satisfy a source-league
// identity or style tag. A team matches when ANY listed attribute hits.
// Brands and Markets are shorthand team names ("Lakers").
type TagRule struct {
	StatusEnums   []string
	PlayingStyles []string
	Philosophy    []string
	Brands        []string
	Markets       []string
}

// Config carries the scoring constants for the source-team ranker. The
// defaults are tuned against the reference datasets; override individual
// fields only when re-tuning the whole table.
type Config struct {
	TagRules         map[string]TagRule
	TagWeights       map[string]int
	DefaultTagWeight int

	StyleOverlapWeight      int
	PhilosophyOverlapWeight int
	StatusAlignBonus        int
	WatchabilityMax         int
	DefaultWatchAvg         int
	PrimaryBoost            int
	CityLinkBoost           int
	BrandPenalty            int
	SinglePrimaryBoost      int

	CandidatePool        int
	SimilarityThresholds []float64

	BaselinePercent int
	MinPercent      int
	MaxPercent      int
}

// BigBrands are the franchises that attract default picks; the ranker
// penalizes them unless the user's taste justifies the choice.
var BigBrands = map[string]bool{
	"Los Angeles Lakers":    true,
	"New York Knicks":       true,
	"Golden State Warriors": true,
	"Boston Celtics":        true,
}

// brandJustifyingTags lift the big-brand penalty when matched.
var brandJustifyingTags = map[string]bool{
	"star_power":        true,
	"cosmopolitan":      true,
	"historic":          true,
	"winning_tradition": true,
}

// statusAffinity maps source-league status buckets to the NBA status
// substrings they align with.
var statusAffinity = map[string][]string{
	"elite_contender":               {"contender", "champion", "competing"},
	"dynasty_in_transition":         {"competing", "retooling", "retool", "uncertain"},
	"talented_but_volatile":         {"retooling", "uncertain"},
	"cursed_overachievers":          {"underdog", "retooling"},
	"fallen_giant_crisis":           {"rebuilding", "retooling", "underdog"},
	"crisis_rebuilding":             {"rebuilding", "underdog"},
	"mid_table_europa_chaos":        {"competing", "retooling"},
	"established_renaissance":       {"competing", "contender"},
	"domestic_dominance":            {"contender", "champion"},
	"continental_treble_holders":    {"contender", "champion"},
	"bundelisga_dominance_restored": {"contender", "champion"},
}

// DefaultConfig returns the production scoring table.
func DefaultConfig() Config {
	return Config{
		TagRules: map[string]TagRule{
			"historic": {
				Philosophy: []string{"historic"},
				Brands:     []string{"Celtics", "Lakers", "Knicks", "Bulls"},
			},
			"cosmopolitan": {
				Philosophy: []string{"cosmopolitan"},
				Markets:    []string{"Lakers", "Knicks", "Nets", "Clippers", "Heat", "Warriors"},
			},
			"star_power": {
				Philosophy:    []string{"star_power"},
				PlayingStyles: []string{"star_dominance"},
			},
			"technical": {
				Philosophy:    []string{"technical"},
				PlayingStyles: []string{"playmaking"},
			},
			"possession": {
				Philosophy:    []string{"possession"},
				PlayingStyles: []string{"team_first"},
			},
			"blue_collar": {
				Philosophy: []string{"blue_collar"},
			},
			"underdog": {
				Philosophy:  []string{"underdog"},
				StatusEnums: []string{"underdog"},
			},
			"young_team": {
				Philosophy:  []string{"young_team"},
				StatusEnums: []string{"rising"},
			},
			"winning_tradition": {
				Philosophy:  []string{"winning_tradition"},
				StatusEnums: []string{"defending_champion", "champion"},
			},
			"fast_paced":     {PlayingStyles: []string{"fast_paced"}},
			"three_point":    {PlayingStyles: []string{"three_point"}},
			"defensive":      {PlayingStyles: []string{"defensive"}},
			"star_dominance": {PlayingStyles: []string{"star_dominance"}},
			"team_first":     {PlayingStyles: []string{"team_first"}},
			"playmaking":     {PlayingStyles: []string{"playmaking"}},
		},
		TagWeights: map[string]int{
			"historic":          8,
			"star_power":        8,
			"winning_tradition": 8,
			"cosmopolitan":      7,
		},
		DefaultTagWeight: 6,

		StyleOverlapWeight:      18,
		PhilosophyOverlapWeight: 14,
		StatusAlignBonus:        10,
		WatchabilityMax:         12,
		DefaultWatchAvg:         75,
		PrimaryBoost:            40,
		CityLinkBoost:           32,
		BrandPenalty:            24,
		SinglePrimaryBoost:      500,

		CandidatePool:        12,
		SimilarityThresholds: []float64{0.6, 0.8, 1.1},

		BaselinePercent: 70,
		MinPercent:      55,
		MaxPercent:      98,
	}
}
