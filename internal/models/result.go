// internal/models/result.go
package models

// MatchResult is one ranked recommendation. MatchPercent is always inside
// the display range [55,98]; Reasons is de-duplicated and capped at 4.
// NarrativeSummary stays empty until the streaming narrative collaborator
// fills it.
type MatchResult struct {
	Name         string   `json:"name"`
	MatchPercent int      `json:"matchPercent"`
	Reasons      []string `json:"reasons"`

	Stars        []string `json:"stars,omitempty"`
	ViewingTimes string   `json:"viewingTimes,omitempty"`
	Status       string   `json:"status,omitempty"`
	Style        string   `json:"style,omitempty"`
	Headline     string   `json:"headline,omitempty"`

	// Quiz display metadata.
	ViewingLocalTip string `json:"viewingLocalTip,omitempty"`
	ViewingSentence string `json:"viewingSentence,omitempty"`
	UserLocation    string `json:"userLocation,omitempty"`
	UserFlag        string `json:"userFlag,omitempty"`
	UserNationality string `json:"userNationality,omitempty"`
	UserStyle       string `json:"userStyle,omitempty"`
	UserPhilosophy  string `json:"userPhilosophy,omitempty"`
	UserWatchMode   string `json:"userWatchMode,omitempty"`
	TierLabel       string `json:"tierLabel,omitempty"`

	// Narrative enrichment fields.
	TitleLabel       string `json:"titleLabel,omitempty"`
	Catch            string `json:"catch,omitempty"`
	NarrativeSummary string `json:"narrativeSummary,omitempty"`
}

// TraitPlayer is one Player Explorer entry: a player plus the current team.
type TraitPlayer struct {
	Player string `json:"player"`
	Team   string `json:"team,omitempty"`
}
