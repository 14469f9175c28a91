// internal/match/alias/alias.go

// Package alias resolves the different names the datasets use for the
// same franchise: shorthand vs full NBA names, club display aliases, and
// city-based links between source-league clubs and NBA teams.
package alias

import "strings"

// shortToFull maps shorthand NBA names to full canonical names.
var shortToFull = map[string]string{
	"Hawks":         "Atlanta Hawks",
	"Celtics":       "Boston Celtics",
	"Nets":          "Brooklyn Nets",
	"Hornets":       "Charlotte Hornets",
	"Bulls":         "Chicago Bulls",
	"Cavaliers":     "Cleveland Cavaliers",
	"Mavericks":     "Dallas Mavericks",
	"Nuggets":       "Denver Nuggets",
	"Pistons":       "Detroit Pistons",
	"Warriors":      "Golden State Warriors",
	"Rockets":       "Houston Rockets",
	"Pacers":        "Indiana Pacers",
	"Clippers":      "Los Angeles Clippers",
	"Lakers":        "Los Angeles Lakers",
	"Grizzlies":     "Memphis Grizzlies",
	"Heat":          "Miami Heat",
	"Bucks":         "Milwaukee Bucks",
	"Timberwolves":  "Minnesota Timberwolves",
	"Pelicans":      "New Orleans Pelicans",
	"Knicks":        "New York Knicks",
	"Thunder":       "Oklahoma City Thunder",
	"Magic":         "Orlando Magic",
	"76ers":         "Philadelphia 76ers",
	"Suns":          "Phoenix Suns",
	"Trail Blazers": "Portland Trail Blazers",
	"Kings":         "Sacramento Kings",
	"Spurs":         "San Antonio Spurs",
	"Raptors":       "Toronto Raptors",
	"Jazz":          "Utah Jazz",
	"Wizards":       "Washington Wizards",
}

var fullToShort = func() map[string]string {
	m := make(map[string]string, len(shortToFull))
	for short, full := range shortToFull {
		m[full] = short
	}
	return m
}()

// clubAliases maps display names back to the club data keys.
var clubAliases = map[string]string{
	"Newcastle United": "Newcastle",
	"Leicester City":   "Leicester",
	"AS Roma":          "Roma",
}

// FullName resolves a possibly-shorthand NBA name to its full canonical
// form. Unknown names come back unchanged.
func FullName(name string) string {
	if full, ok := shortToFull[name]; ok {
		return full
	}
	return name
}

// ShortName resolves a full NBA name to its shorthand ("Los Angeles
// Lakers" to "Lakers"). Unknown names come back unchanged.
func ShortName(name string) string {
	if short, ok := fullToShort[name]; ok {
		return short
	}
	return name
}

// ClubKey maps a club display alias to its data key; names without an
// alias pass through unchanged.
func ClubKey(name string) string {
	if key, ok := clubAliases[name]; ok {
		return key
	}
	return name
}

// CityMatch reports whether two city names refer to the same place, using
// case-insensitive bidirectional containment so "Los Angeles" matches
// "East Los Angeles".
func CityMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// ResolvePrimary finds the NBA team a source club points at. Resolution
// order: shorthand mapping, then name containment over the ordered team
// table, then city containment. Returns "" when nothing links.
func ResolvePrimary(primary, city string, teamOrder []string, teamCity func(string) string) string {
	if primary == "" && city == "" {
		return ""
	}
	if primary != "" {
		desired := FullName(primary)
		for _, name := range teamOrder {
			if name == desired {
				return name
			}
		}
		lowPrimary := strings.ToLower(primary)
		lowDesired := strings.ToLower(desired)
		for _, name := range teamOrder {
			low := strings.ToLower(name)
			if strings.Contains(low, lowPrimary) || strings.Contains(low, lowDesired) {
				return name
			}
		}
	}
	if city != "" {
		for _, name := range teamOrder {
			if CityMatch(teamCity(name), city) {
				return name
			}
		}
	}
	return ""
}

// tagRule is one ordered entry of the free-text tag table. First keyword
// hit wins per rule; rules stack.
type tagRule struct {
	keywords []string
	tags     []string
}

var tagRules = []tagRule{
	{keywords: []string{"historic", "tradition", "legacy"}, tags: []string{"historic"}},
	{keywords: []string{"cosmopolitan", "global brand", "glamour", "paris", "hollywood"}, tags: []string{"cosmopolitan", "star_power"}},
	{keywords: []string{"star", "superstar", "galactico", "mbapp", "messi", "neymar"}, tags: []string{"star_power"}},
	{keywords: []string{"technical", "tiki", "possession", "beautiful", "flowing"}, tags: []string{"technical", "possession"}},
	{keywords: []string{"working class", "blue collar", "loyal fanbase", "resilience", "underdog", "small market"}, tags: []string{"blue_collar", "underdog"}},
	{keywords: []string{"young", "youth", "develop", "academy"}, tags: []string{"young_team"}},
	{keywords: []string{"winning", "champion", "dynasty", "treble", "title"}, tags: []string{"winning_tradition"}},
}

// TagsFromText extracts identity tags from free-text club descriptions.
// The rule table is ordered so output order is stable; duplicates are
// dropped.
func TagsFromText(text string) []string {
	low := strings.ToLower(text)
	var out []string
	seen := make(map[string]bool)
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(low, kw) {
				for _, tag := range rule.tags {
					if !seen[tag] {
						seen[tag] = true
						out = append(out, tag)
					}
				}
				break
			}
		}
	}
	return out
}
