// internal/datasets/nationalities.go
package datasets

// teamNationalities is keyed by the shorthand team name ("Lakers", not
// "Los Angeles Lakers"); lookups resolve through the alias tables first.
var teamNationalities = map[string][]string{
	"Celtics":        {"USA"},
	"Lakers":         {"USA"},
	"Warriors":       {"USA"},
	"Bucks":          {"Greece", "USA"},
	"Mavericks":      {"Slovenia", "Spain", "Germany", "USA"},
	"Nuggets":        {"Serbia", "USA"},
	"Thunder":        {"Canada", "Australia", "USA"},
	"Spurs":          {"France", "USA"},
	"76ers":          {"Cameroon", "USA"},
	"Pacers":         {"USA"},
	"Magic":          {"Germany", "USA", "Italy"},
	"Knicks":         {"USA"},
	"Suns":           {"USA"},
	"Clippers":       {"USA"},
	"Cavaliers":      {"USA"},
	"Grizzlies":      {"USA"},
	"Kings":          {"USA"},
	"Hawks":          {"USA"},
	"Timberwolves":   {"USA", "France"},
	"Pelicans":       {"USA"},
	"Nets":           {"USA"},
	"Bulls":          {"USA"},
	"Rockets":        {"Turkey", "USA"},
	"Hornets":        {"USA"},
	"Jazz":           {"Finland", "USA"},
	"Wizards":        {"USA"},
	"Raptors":        {"Canada", "USA"},
	"Pistons":        {"USA"},
	"Trail Blazers":  {"USA"},
	"Heat":           {"USA"},
}
