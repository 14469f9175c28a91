// internal/datasets/players.go
package datasets

import "hoopmatch/internal/models"

// playerTeams maps player name to current team for the Player Explorer.
var playerTeams = map[string]string{
	"Stephen Curry":           "Golden State Warriors",
	"Draymond Green":          "Golden State Warriors",
	"Jimmy Butler":            "Golden State Warriors",
	"Luka Dončić":             "Dallas Mavericks",
	"Kyrie Irving":            "Dallas Mavericks",
	"Klay Thompson":           "Dallas Mavericks",
	"Giannis Antetokounmpo":   "Milwaukee Bucks",
	"Damian Lillard":          "Milwaukee Bucks",
	"Kevin Durant":            "Houston Rockets",
	"Devin Booker":            "Phoenix Suns",
	"Nikola Jokić":            "Denver Nuggets",
	"Jamal Murray":            "Denver Nuggets",
	"Aaron Gordon":            "Denver Nuggets",
	"LeBron James":            "Los Angeles Lakers",
	"Anthony Davis":           "Los Angeles Lakers",
	"Austin Reaves":           "Los Angeles Lakers",
	"Jayson Tatum":            "Boston Celtics",
	"Jaylen Brown":            "Boston Celtics",
	"Derrick White":           "Boston Celtics",
	"Shai Gilgeous-Alexander": "Oklahoma City Thunder",
	"Chet Holmgren":           "Oklahoma City Thunder",
	"Jalen Williams":          "Oklahoma City Thunder",
	"Alex Caruso":             "Oklahoma City Thunder",
	"Victor Wembanyama":       "San Antonio Spurs",
	"De'Aaron Fox":            "San Antonio Spurs",
	"Joel Embiid":             "Philadelphia 76ers",
	"Tyrese Maxey":            "Philadelphia 76ers",
	"Jalen Brunson":           "New York Knicks",
	"Karl-Anthony Towns":      "New York Knicks",
	"OG Anunoby":              "New York Knicks",
	"Mikal Bridges":           "New York Knicks",
	"Donovan Mitchell":        "Cleveland Cavaliers",
	"Evan Mobley":             "Cleveland Cavaliers",
	"Darius Garland":          "Cleveland Cavaliers",
	"Jarrett Allen":           "Cleveland Cavaliers",
	"Bam Adebayo":             "Miami Heat",
	"Tyler Herro":             "Miami Heat",
	"Anthony Edwards":         "Minnesota Timberwolves",
	"Rudy Gobert":             "Minnesota Timberwolves",
	"Jaden McDaniels":         "Minnesota Timberwolves",
	"Ja Morant":               "Memphis Grizzlies",
	"Jaren Jackson Jr.":       "Memphis Grizzlies",
	"Desmond Bane":            "Memphis Grizzlies",
	"Zach Edey":               "Memphis Grizzlies",
	"Trae Young":              "Atlanta Hawks",
	"Jalen Johnson":           "Atlanta Hawks",
	"Tyrese Haliburton":       "Indiana Pacers",
	"Pascal Siakam":           "Indiana Pacers",
	"Cade Cunningham":         "Detroit Pistons",
	"Paolo Banchero":          "Orlando Magic",
	"Franz Wagner":            "Orlando Magic",
	"Zion Williamson":         "New Orleans Pelicans",
	"Alperen Şengün":          "Houston Rockets",
	"Amen Thompson":           "Houston Rockets",
	"Scottie Barnes":          "Toronto Raptors",
	"Lauri Markkanen":         "Utah Jazz",
	"LaMelo Ball":             "Charlotte Hornets",
	"Kawhi Leonard":           "Los Angeles Clippers",
	"James Harden":            "Los Angeles Clippers",
	"Domantas Sabonis":        "Sacramento Kings",
	"Zach LaVine":             "Sacramento Kings",
	"Scoot Henderson":         "Portland Trail Blazers",
	"Deni Avdija":             "Portland Trail Blazers",
	"Alex Sarr":               "Washington Wizards",
	"Cam Thomas":              "Brooklyn Nets",
	"Coby White":              "Chicago Bulls",
}

// playersByTrait powers the Player Explorer: each trait key lists the
// players best known for it.
var playersByTrait = map[string][]string{
	"off_three_point":   {"Stephen Curry", "Klay Thompson", "Damian Lillard", "Luka Dončić", "Desmond Bane", "Lauri Markkanen"},
	"off_dunking":       {"Ja Morant", "Zion Williamson", "Anthony Edwards", "Aaron Gordon", "Amen Thompson", "Giannis Antetokounmpo"},
	"off_midrange":      {"Devin Booker", "Kevin Durant", "DeMar DeRozan", "Kawhi Leonard", "Jalen Brunson"},
	"off_iso_handles":   {"Kyrie Irving", "Luka Dončić", "Shai Gilgeous-Alexander", "Trae Young", "LaMelo Ball", "Cade Cunningham"},
	"off_playmaking":    {"Nikola Jokić", "Tyrese Haliburton", "LeBron James", "Trae Young", "Darius Garland", "Domantas Sabonis"},
	"off_offball":       {"Stephen Curry", "Klay Thompson", "Desmond Bane", "Derrick White", "Tyler Herro"},
	"def_perimeter":     {"Jrue Holiday", "Alex Caruso", "OG Anunoby", "Jaden McDaniels", "Derrick White"},
	"def_rim":           {"Victor Wembanyama", "Rudy Gobert", "Chet Holmgren", "Jaren Jackson Jr.", "Evan Mobley", "Jarrett Allen"},
	"def_rebounding":    {"Domantas Sabonis", "Zach Edey", "Rudy Gobert", "Karl-Anthony Towns", "Anthony Davis"},
	"def_versatility":   {"Evan Mobley", "Bam Adebayo", "Anthony Davis", "Draymond Green", "OG Anunoby"},
	"phys_athletic":     {"Ja Morant", "Anthony Edwards", "Zion Williamson", "Amen Thompson", "Jalen Johnson"},
	"phys_physicality":  {"Giannis Antetokounmpo", "Zion Williamson", "Joel Embiid", "Bam Adebayo", "Pascal Siakam"},
	"phys_finesse":      {"Kyrie Irving", "Nikola Jokić", "Kevin Durant", "Tyrese Maxey", "Devin Booker"},
	"tempo_fast":        {"Tyrese Haliburton", "Ja Morant", "Trae Young", "Anthony Edwards", "Scoot Henderson"},
	"tempo_halfcourt":   {"Nikola Jokić", "Jalen Brunson", "Joel Embiid", "Kawhi Leonard", "James Harden"},
	"energy_high":       {"Anthony Edwards", "Ja Morant", "Jalen Williams", "Amen Thompson", "Franz Wagner"},
	"energy_efficient":  {"Shai Gilgeous-Alexander", "Nikola Jokić", "Kawhi Leonard", "Chet Holmgren", "Derrick White"},
}

// legacyPlayers backs the archetype-based player match. Archetype is one
// of flashy, power or finesse.
var legacyPlayers = []LegacyPlayer{
	{Name: "Ja Morant", Team: "Memphis Grizzlies", Archetype: "flashy"},
	{Name: "Trae Young", Team: "Atlanta Hawks", Archetype: "flashy"},
	{Name: "LaMelo Ball", Team: "Charlotte Hornets", Archetype: "flashy"},
	{Name: "Anthony Edwards", Team: "Minnesota Timberwolves", Archetype: "flashy"},
	{Name: "Tyrese Haliburton", Team: "Indiana Pacers", Archetype: "flashy"},
	{Name: "Zach LaVine", Team: "Sacramento Kings", Archetype: "flashy"},
	{Name: "Giannis Antetokounmpo", Team: "Milwaukee Bucks", Archetype: "power"},
	{Name: "Zion Williamson", Team: "New Orleans Pelicans", Archetype: "power"},
	{Name: "Joel Embiid", Team: "Philadelphia 76ers", Archetype: "power"},
	{Name: "Bam Adebayo", Team: "Miami Heat", Archetype: "power"},
	{Name: "Jalen Brunson", Team: "New York Knicks", Archetype: "power"},
	{Name: "Evan Mobley", Team: "Cleveland Cavaliers", Archetype: "power"},
	{Name: "Nikola Jokić", Team: "Denver Nuggets", Archetype: "finesse"},
	{Name: "Luka Dončić", Team: "Dallas Mavericks", Archetype: "finesse"},
	{Name: "Stephen Curry", Team: "Golden State Warriors", Archetype: "finesse"},
	{Name: "Kyrie Irving", Team: "Dallas Mavericks", Archetype: "finesse"},
	{Name: "Kevin Durant", Team: "Houston Rockets", Archetype: "finesse"},
	{Name: "Jayson Tatum", Team: "Boston Celtics", Archetype: "finesse"},
}

// LegacyPlayer is one entry of the archetype roster used by the
// player-based recommendation flow.
type LegacyPlayer struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	Archetype string `json:"archetype"`
}

// TraitPlayers returns the Player Explorer entries for a trait, with each
// player's current team attached when known.
func TraitPlayers(trait string) []models.TraitPlayer {
	names := playersByTrait[trait]
	out := make([]models.TraitPlayer, 0, len(names))
	for _, n := range names {
		out = append(out, models.TraitPlayer{Player: n, Team: playerTeams[n]})
	}
	return out
}
