// internal/match/quiz/display.go
package quiz

import (
	"fmt"
	"strings"
)

// localOffsetFromET estimates the hour offset between the user's location
// text and Eastern Time. Display hints only; half-hour zones round to the
// nearest hour. The rule table is ordered, first hit wins.
func localOffsetFromET(location string) int {
	v := strings.ToLower(location)
	if v == "" {
		return 0
	}
	hit := func(keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(v, k) {
				return true
			}
		}
		return false
	}
	switch {
	case hit("uk", "united kingdom", "england", "scotland", "wales", "ireland", "dublin", "london", "portugal", "lisbon"):
		return 5
	case hit("france", "paris", "spain", "madrid", "germany", "berlin", "rome", "italy", "switzerland", "zurich", "geneva",
		"netherlands", "amsterdam", "belgium", "brussels", "austria", "vienna", "czech", "prague", "poland", "warsaw",
		"hungary", "budapest", "slovakia", "bratislava", "slovenia", "ljubljana", "croatia", "zagreb", "denmark", "copenhagen",
		"norway", "oslo", "sweden", "stockholm", "europe"):
		return 6
	case hit("greece", "athens", "turkey", "istanbul", "israel", "tel aviv", "bucharest", "romania", "bulgaria",
		"finland", "helsinki", "latvia", "lithuania", "estonia", "ukraine", "kyiv"):
		return 7
	case hit("uae", "dubai", "saudi", "riyadh", "qatar", "doha"):
		return 8
	case hit("india", "mumbai", "delhi", "bangalore"):
		return 10
	case hit("australia", "sydney", "melbourne"):
		return 14
	case hit("new zealand", "auckland", "wellington"):
		return 16
	case hit("mexico", "mexico city"):
		return -1
	case hit("brazil", "rio", "sao paulo"):
		return 1
	case hit("winnipeg"):
		return -1
	case hit("calgary", "edmonton"):
		return -2
	case hit("vancouver"):
		return -3
	case hit("chicago", "dallas", "houston", "nashville", "milwaukee", "minneapolis"):
		return -1
	case hit("denver", "phoenix", "salt lake", "utah", "arizona", "albuquerque"):
		return -2
	case hit("los angeles", "san francisco", "seattle", "portland", "las vegas", "san diego"):
		return -3
	}
	return 0
}

// to12 formats an hour-of-day as a 12-hour clock label ("7 PM").
func to12(h int) string {
	hh := ((h % 24) + 24) % 24
	ampm := "AM"
	if hh >= 12 {
		ampm = "PM"
	}
	hour := hh % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d %s", hour, ampm)
}

// to24 formats an hour-of-day on a 24-hour clock ("19:00").
func to24(h int) string {
	hh := ((h % 24) + 24) % 24
	return fmt.Sprintf("%02d:00", hh)
}

// flagRule pairs location keywords with an ISO 3166-1 alpha-2 code.
type flagRule struct {
	keywords []string
	iso2     string
}

var flagRules = []flagRule{
	{keywords: []string{"united kingdom", "uk", "england", "scotland", "wales", "northern ireland", "london"}, iso2: "gb"},
	{keywords: []string{"ireland", "dublin"}, iso2: "ie"},
	{keywords: []string{"france", "paris"}, iso2: "fr"},
	{keywords: []string{"spain", "madrid", "barcelona"}, iso2: "es"},
	{keywords: []string{"germany", "berlin", "munich"}, iso2: "de"},
	{keywords: []string{"italy", "rome", "milan", "naples"}, iso2: "it"},
	{keywords: []string{"portugal", "lisbon", "porto"}, iso2: "pt"},
	{keywords: []string{"greece", "athens"}, iso2: "gr"},
	{keywords: []string{"turkey", "istanbul"}, iso2: "tr"},
	{keywords: []string{"israel", "tel aviv", "jerusalem"}, iso2: "il"},
	{keywords: []string{"uae", "united arab emirates", "dubai", "abu dhabi"}, iso2: "ae"},
	{keywords: []string{"india", "mumbai", "delhi", "bangalore"}, iso2: "in"},
	{keywords: []string{"australia", "sydney", "melbourne"}, iso2: "au"},
	{keywords: []string{"new zealand", "auckland", "wellington"}, iso2: "nz"},
	{keywords: []string{"mexico", "mexico city"}, iso2: "mx"},
	{keywords: []string{"brazil", "rio", "sao paulo"}, iso2: "br"},
	{keywords: []string{"canada", "toronto", "montreal", "vancouver", "calgary", "edmonton", "winnipeg"}, iso2: "ca"},
	{keywords: []string{"united states", "usa", "new york", "boston", "miami", "chicago", "los angeles", "san francisco", "seattle", "dallas", "houston", "phoenix", "denver"}, iso2: "us"},
	{keywords: []string{"japan", "tokyo", "osaka", "kyoto"}, iso2: "jp"},
	{keywords: []string{"china", "shanghai", "beijing", "shenzhen", "hong kong"}, iso2: "cn"},
	{keywords: []string{"south korea", "seoul"}, iso2: "kr"},
	{keywords: []string{"singapore"}, iso2: "sg"},
	{keywords: []string{"south africa", "cape town", "johannesburg"}, iso2: "za"},
	{keywords: []string{"nigeria", "lagos"}, iso2: "ng"},
	{keywords: []string{"kenya", "nairobi"}, iso2: "ke"},
	{keywords: []string{"egypt", "cairo"}, iso2: "eg"},
	{keywords: []string{"morocco", "casablanca", "rabat"}, iso2: "ma"},
}

// countryFlagEmoji maps a free-text location to a flag emoji via regional
// indicator symbols. Unknown locations return "".
func countryFlagEmoji(location string) string {
	v := strings.ToLower(location)
	if v == "" {
		return ""
	}
	for _, rule := range flagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(v, kw) {
				return flagFromISO2(rule.iso2)
			}
		}
	}
	return ""
}

func flagFromISO2(iso2 string) string {
	up := strings.ToUpper(iso2)
	if len(up) != 2 {
		return ""
	}
	const base = 0x1F1E6 // regional indicator 'A'
	a := rune(up[0]) - 'A'
	b := rune(up[1]) - 'A'
	if a < 0 || a > 25 || b < 0 || b > 25 {
		return ""
	}
	return string(base+a) + string(base+b)
}

// normalizeTz folds EST/CST/MST/PST spellings into ET/CT/MT/PT.
func normalizeTz(tz string) string {
	r := strings.NewReplacer("EST", "ET", "CST", "CT", "MST", "MT", "PST", "PT")
	return r.Replace(tz)
}

var tzIndex = map[string]int{"ET": 0, "CT": 1, "MT": 2, "PT": 3}

// tierLabelFor buckets a team into the quiz's tier taxonomy.
func tierLabelFor(statusEnum, statusText string, playingStyles []string, watchability int) string {
	se := strings.ToLower(statusEnum)
	switch {
	case strings.Contains(se, "contender") || strings.Contains(se, "champion") || strings.Contains(se, "defending") || watchability >= 88:
		return "Title contender"
	case strings.Contains(se, "rebuilding") || strings.Contains(se, "young") || strings.Contains(se, "rising"):
		return "Rebuilding with young stars"
	}
	for _, s := range playingStyles {
		low := strings.ToLower(s)
		if strings.Contains(low, "defense") || strings.Contains(low, "defensive") || strings.Contains(low, "grit") || strings.Contains(low, "rim") {
			return "Defense-first team"
		}
	}
	low := strings.ToLower(statusText)
	if strings.Contains(low, "bottom") || strings.Contains(low, "lottery") || strings.Contains(low, "cellar") {
		return "Bottom tier"
	}
	return "Playoff team"
}

// viewingSentence explains the typical local tip-off for the user, built
// from a 7 PM start in the team's home timezone.
func viewingSentence(teamCity, tip12, tip24, userLocation string) string {
	if userLocation != "" {
		return fmt.Sprintf(
			"Most live home games in %s will air around %s (%s) in %s. If that's late for you, replays/highlights may fit better.",
			teamCity, tip12, tip24, userLocation,
		)
	}
	return fmt.Sprintf("Most live home games in %s will air around %s (%s).", teamCity, tip12, tip24)
}
