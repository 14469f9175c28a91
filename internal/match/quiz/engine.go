// internal/match/quiz/engine.go

// Package quiz scores every NBA team against a five-dimension preference
// quiz (location, nationality, fandom, playing style, philosophy) and
// decorates the top three with viewing-time display metadata.
package quiz

import (
	"math"
	"sort"
	"strings"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/alias"
	"hoopmatch/internal/models"
)

// Logger defines the logging interface for the quiz engine.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
}

// Engine runs the weighted quiz scoring.
type Engine struct {
	config Config
	store  *datasets.Store
	logger Logger
}

// NewEngine creates a quiz matching engine.
func NewEngine(config Config, store *datasets.Store, log Logger) *Engine {
	return &Engine{config: config, store: store, logger: log}
}

type quizScore struct {
	key     string
	raw     float64
	reasons []string
}

// Match returns the top three teams for the given quiz answers.
func (e *Engine) Match(answers models.QuizAnswers) []models.MatchResult {
	w := e.config.Weights

	var fandomTeam string
	if answers.HasFandom == "yes" && answers.FandomClub != "" {
		fandomTeam = e.clubPrimaryTeam(answers.FandomClub)
	}

	preferredTz := answers.TimezonePref
	if preferredTz == "" {
		preferredTz = models.TzAny
	}
	watchMode := answers.WatchMode
	if watchMode == "" {
		watchMode = models.WatchHighlightsOnly
	}

	natScale := 1.0
	switch answers.NationalityImportance {
	case models.ImportanceHigh:
		natScale = e.config.NationalityScaleHigh
	case models.ImportanceMedium:
		natScale = e.config.NationalityScaleMedium
	}

	scores := make([]quizScore, 0, len(e.store.TeamOrder()))
	for _, key := range e.store.TeamOrder() {
		team, _ := e.store.Team(key)
		s := quizScore{key: key}
		styleHit := false
		philosophyHit := false

		// Timezone distance, weighted by how the user watches.
		teamTz := normalizeTz(team.Timezone)
		if preferredTz == models.TzAny || teamTz == "" {
			s.raw += e.config.FlexibleLocationCredit * w.Location
		} else {
			distance := tzIndex[preferredTz] - tzIndex[teamTz]
			if distance < 0 {
				distance = -distance
			}
			bias := e.config.HighlightsBias
			if watchMode == models.WatchLiveGames {
				bias = e.config.LiveBias
			}
			if distance < len(bias) {
				s.raw += bias[distance] * w.Location
			}
			switch {
			case distance == 0:
				s.reasons = append(s.reasons, "Matches your timezone for easier live viewing")
			case distance == 1:
				s.reasons = append(s.reasons, "Reasonable viewing times most nights")
			case watchMode == models.WatchHighlightsOnly:
				s.reasons = append(s.reasons, "Good fit if you mainly watch replays/highlights")
			}
		}

		// Nationality connection, scaled by stated importance.
		if answers.Nationality != "" && answers.Nationality != "No preference" {
			nationals := e.store.Nationalities(alias.ShortName(key))
			if contains(nationals, answers.Nationality) {
				s.raw += 100 * w.Nationality * natScale
				s.reasons = append(s.reasons, "Players from "+answers.Nationality)
			}
		} else {
			s.raw += e.config.NeutralNationalityCredit * w.Nationality
		}

		if fandomTeam != "" && fandomTeam == key {
			s.raw += 100 * w.Fandom
			s.reasons = append(s.reasons, "Aligns with your existing club identity")
		}

		if answers.Style != "" && styleMatchesPreference(team.Style, answers.Style) {
			s.raw += 100 * w.Style
			styleHit = true
			s.reasons = append(s.reasons, "Fits your preferred playing style")
		}

		if answers.Philosophy != "" && philosophyMatches(team, key, answers.Philosophy) {
			s.raw += 100 * w.Philosophy
			philosophyHit = true
			s.reasons = append(s.reasons, "Matches your team philosophy")
		}

		if styleHit && philosophyHit {
			s.raw += e.config.SynergyBonus
		}

		if answers.Philosophy == models.PhilosophyHistoric && historicBrands[key] {
			s.raw += e.config.HistoricBonus
			s.reasons = append(s.reasons, "Historic brand appeal")
		}

		if answers.Style == models.StyleStarDominance && hasMarqueeStar(team.Stars) {
			s.raw += e.config.MarqueeBonus
			s.reasons = append(s.reasons, "Superstar-led roster matches star-dominance preference")
		}

		tierLabel := tierLabelFor(team.StatusEnum, team.Status, team.PlayingStyles, team.Watchability)
		if answers.TierPref != "" && answers.TierPref == tierLabel {
			s.raw += e.config.TierBonus
			s.reasons = append(s.reasons, "Matches your tier preference: "+tierLabel)
		}

		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].raw > scores[j].raw })
	if len(scores) > 3 {
		scores = scores[:3]
	}

	localOffset := localOffsetFromET(answers.Location)
	flag := countryFlagEmoji(answers.Location)

	results := make([]models.MatchResult, 0, len(scores))
	for _, s := range scores {
		team, _ := e.store.Team(s.key)

		percent := int(math.Round(s.raw))
		if percent < e.config.MinPercent {
			percent = e.config.MinPercent
		}
		if percent > e.config.MaxPercent {
			percent = e.config.MaxPercent
		}

		// Assume a 7 PM tip-off in the team's home timezone.
		etHour := 19 + tzIndex[normalizeTz(team.Timezone)]
		localHour := etHour + localOffset
		tip12 := to12(localHour)
		tip24 := to24(localHour)

		results = append(results, models.MatchResult{
			Name:            s.key,
			MatchPercent:    percent,
			Reasons:         firstN(s.reasons, 4),
			Stars:           team.Stars,
			ViewingTimes:    team.ViewingTimes,
			Status:          team.Status,
			Style:           team.Style,
			Headline:        team.Headline,
			ViewingLocalTip: "Typical local start for home games: " + tip12 + " (" + tip24 + ")",
			ViewingSentence: viewingSentence(team.City, tip12, tip24, answers.Location),
			UserLocation:    answers.Location,
			UserFlag:        flag,
			UserNationality: answers.Nationality,
			UserStyle:       answers.Style,
			UserPhilosophy:  answers.Philosophy,
			UserWatchMode:   watchMode,
			TierLabel:       tierLabelFor(team.StatusEnum, team.Status, team.PlayingStyles, team.Watchability),
		})
	}

	e.logger.Debug("scored quiz answers", map[string]interface{}{
		"top":       resultNames(results),
		"watchMode": watchMode,
	})
	return results
}

// clubPrimaryTeam resolves the user's existing club to its mapped NBA
// team's full name, or "" when the club is unknown or unmapped.
func (e *Engine) clubPrimaryTeam(clubName string) string {
	club, ok := e.store.SourceClub(alias.ClubKey(clubName))
	if !ok || club.PrimaryTeam == "" {
		return ""
	}
	full := alias.FullName(club.PrimaryTeam)
	if _, ok := e.store.Team(full); !ok {
		return ""
	}
	return full
}

// styleMatchesPreference tests the team's free-text style blurb against
// the user's style preference keywords.
func styleMatchesPreference(teamStyle, pref string) bool {
	s := strings.ToLower(teamStyle)
	has := func(keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
	switch pref {
	case models.StyleFastPaced:
		return has("fast", "pace", "transition")
	case models.StyleThreePoint:
		return has("3-point", "three", "spacing", "shoot")
	case models.StyleDefensive:
		return has("defense", "defensive", "grit")
	case models.StyleStarDominance:
		return has("star", "superstar", "lebron", "luka", "giannis", "jokic")
	case models.StyleTeamFirst:
		return has("team", "ball movement", "movement")
	}
	return false
}

// philosophyMatches tests the team's status and narrative text against
// the user's philosophy preference.
func philosophyMatches(team models.Team, key, pref string) bool {
	status := strings.ToLower(team.Status)
	narrative := strings.ToLower(team.Narrative)
	has := func(text string, keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
	switch pref {
	case models.PhilosophyContender:
		return has(status, "defending", "win-now", "contender") || strings.Contains(narrative, "champion")
	case models.PhilosophyYoungTeam:
		return has(status, "young", "rising") || has(narrative, "young", "rebuild")
	case models.PhilosophyHistoric:
		return strings.Contains(narrative, "historic") || historicBrands[key]
	case models.PhilosophyUnderdog:
		return has(narrative, "underdog", "loyal", "small") || strings.Contains(status, "rebuild")
	}
	return false
}

func hasMarqueeStar(stars []string) bool {
	for _, star := range stars {
		low := strings.ToLower(star)
		for _, m := range marqueeStars {
			if strings.Contains(low, strings.ToLower(m)) {
				return true
			}
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func resultNames(results []models.MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}
