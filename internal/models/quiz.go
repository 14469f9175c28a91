// internal/models/quiz.go
package models

// Timezone preference codes, ordered west-to-east distance matters: the
// index gap between two codes is the scoring distance.
const (
	TzEastern  = "ET"
	TzCentral  = "CT"
	TzMountain = "MT"
	TzPacific  = "PT"
	TzAny      = "ANY"
)

// Style preference codes.
const (
	StyleFastPaced     = "fast_paced"
	StyleThreePoint    = "three_point"
	StyleDefensive     = "defensive"
	StyleStarDominance = "star_dominance"
	StyleTeamFirst     = "team_first"
)

// Philosophy preference codes.
const (
	PhilosophyContender = "contender"
	PhilosophyYoungTeam = "young_team"
	PhilosophyHistoric  = "historic"
	PhilosophyUnderdog  = "underdog"
)

// Watch mode codes.
const (
	WatchLiveGames      = "live_games"
	WatchHighlightsOnly = "highlights_only"
)

// Nationality importance levels.
const (
	ImportanceLow    = "low"
	ImportanceMedium = "medium"
	ImportanceHigh   = "high"
)

// Tier labels derived per team and matched against the user's preference.
const (
	TierContender  = "Title contender"
	TierPlayoff    = "Playoff team"
	TierRebuilding = "Rebuilding with young stars"
	TierDefense    = "Defense-first team"
	TierBottom     = "Bottom tier"
)

// QuizAnswers is the five-dimension quiz input. Every field is optional;
// absence degrades to a neutral contribution, never an error.
type QuizAnswers struct {
	Location              string `json:"location,omitempty"`
	TimezonePref          string `json:"timezonePref,omitempty"` // ET/CT/MT/PT/ANY
	HasFandom             string `json:"hasFandom,omitempty"`    // yes/no
	FandomClub            string `json:"fandomClub,omitempty"`
	Nationality           string `json:"nationality,omitempty"` // country or "No preference"
	NationalityImportance string `json:"nationalityImportance,omitempty"`
	TierPref              string `json:"tierPref,omitempty"`
	Style                 string `json:"style,omitempty"`
	Philosophy            string `json:"philosophy,omitempty"`
	WatchMode             string `json:"watchMode,omitempty"` // live_games/highlights_only
}

// LegacyAnswers is the loosely-typed answer bundle accepted by the first
// generation quiz scorer.
type LegacyAnswers struct {
	Location    string   `json:"location,omitempty"`
	Viewing     string   `json:"viewing,omitempty"`
	LateGames   bool     `json:"late_games,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`  // now/rising/underdog
	Narrative   string   `json:"narrative,omitempty"` // historic/young/superstar/culture/underdog
	Dealbreaker []string `json:"dealbreakers,omitempty"`
}
