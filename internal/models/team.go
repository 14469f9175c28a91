// internal/models/team.go
package models

// Team is a canonical NBA franchise record. The full franchise name is the
// stable identity; all scoring is keyed by it.
type Team struct {
	Name          string   `json:"name"`
	Conference    string   `json:"conference"`
	Division      string   `json:"division,omitempty"`
	City          string   `json:"city"`
	Timezone      string   `json:"timezone,omitempty"` // ET, CT, MT or PT
	Status        string   `json:"status,omitempty"`   // free text, e.g. "Defending champions"
	StatusEnum    string   `json:"statusEnum,omitempty"`
	Style         string   `json:"style,omitempty"` // free text style description
	PlayingStyles []string `json:"playingStyles,omitempty"`
	Philosophy    []string `json:"philosophy,omitempty"`
	Narrative     string   `json:"narrative,omitempty"`
	Headline      string   `json:"headline,omitempty"`
	Stars         []string `json:"stars,omitempty"`
	Watchability  int      `json:"watchabilityScore"` // 0-100
	ViewingTimes  string   `json:"viewingTimes,omitempty"`
	Bandwagon     string   `json:"bandwagon,omitempty"`   // None/Low/Medium/High/Very High
	Dysfunction   string   `json:"dysfunction,omitempty"` // Low/Medium/High
	Injuries      string   `json:"injuries,omitempty"`    // Low/Medium/High/Very High
}

// SourceClub is a fan affiliation in another league (football, NFL, MLB,
// NHL, F1). PrimaryTeam carries the curated shorthand link to one NBA
// franchise when such a link exists.
type SourceClub struct {
	Name             string   `json:"name"`
	League           string   `json:"league,omitempty"`
	City             string   `json:"city,omitempty"`
	Identity         string   `json:"identity,omitempty"`
	IdentityTags     []string `json:"identityTags,omitempty"`
	PlayingStyleTags []string `json:"playingStyleTags,omitempty"`
	Philosophy       []string `json:"philosophy,omitempty"`
	Status           string   `json:"status,omitempty"`
	StatusEnum       string   `json:"statusEnum,omitempty"`
	Watchability     int      `json:"watchabilityScore,omitempty"`
	PrimaryTeam      string   `json:"primaryTeam,omitempty"` // shorthand, e.g. "Lakers"
	CurrentRecord    string   `json:"currentRecord,omitempty"`
	Highlights       string   `json:"highlights,omitempty"`
}
