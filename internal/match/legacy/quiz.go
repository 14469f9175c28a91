// internal/match/legacy/quiz.go

// Package legacy keeps the first-generation scorers alive for clients
// that still post the old quiz, football and player payloads. The
// heuristics are additive rule tables rather than weighted dimensions.
package legacy

import (
	"sort"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/models"
)

// Logger defines the logging interface for the legacy scorers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
}

// Scorer runs the legacy matching flows.
type Scorer struct {
	store  *datasets.Store
	logger Logger
}

// NewScorer creates a legacy scorer.
func NewScorer(store *datasets.Store, log Logger) *Scorer {
	return &Scorer{store: store, logger: log}
}

// narrativePicks are the fixed team lists per narrative answer.
var narrativePicks = map[string][]string{
	"historic":  {"Boston Celtics", "Los Angeles Lakers", "New York Knicks", "Chicago Bulls"},
	"young":     {"Oklahoma City Thunder", "Orlando Magic", "San Antonio Spurs", "Houston Rockets"},
	"superstar": {"Dallas Mavericks", "Milwaukee Bucks", "Denver Nuggets", "Los Angeles Lakers"},
	"culture":   {"Miami Heat", "San Antonio Spurs", "Indiana Pacers", "Golden State Warriors"},
	"underdog":  {"Cleveland Cavaliers", "Sacramento Kings", "Memphis Grizzlies", "Orlando Magic"},
}

// Quiz scores the legacy quiz answers and returns the top three teams.
func (s *Scorer) Quiz(answers models.LegacyAnswers) []models.MatchResult {
	scores := make(map[string]float64, len(s.store.TeamOrder()))
	for _, name := range s.store.TeamOrder() {
		scores[name] = 0
	}

	euViewer := answers.Location == "uk" || answers.Location == "west-eu" || answers.Location == "central-eu"
	if euViewer {
		s.each(func(name string, team models.Team) {
			if team.Conference == "East" {
				scores[name] += 3
			}
			if team.Timezone == "ET" {
				scores[name]++
			}
		})
	}

	if answers.Viewing == "late-games" || answers.LateGames {
		s.each(func(name string, team models.Team) {
			if team.Timezone == "PT" || team.Timezone == "MT" {
				scores[name] -= 5
			}
		})
	}

	switch answers.Timeline {
	case "now":
		s.each(func(name string, team models.Team) {
			switch team.StatusEnum {
			case "contender", "champion", "defending_champion", "competing":
				scores[name] += 4
			}
		})
	case "rising":
		s.each(func(name string, team models.Team) {
			if team.StatusEnum == "rising" {
				scores[name] += 5
			}
		})
	case "underdog":
		s.each(func(name string, team models.Team) {
			if team.StatusEnum == "rebuilding" {
				scores[name] += 3
			}
		})
	}

	for _, name := range narrativePicks[answers.Narrative] {
		if _, ok := scores[name]; ok {
			scores[name] += 4
		}
	}

	for _, dealbreaker := range answers.Dealbreaker {
		switch dealbreaker {
		case "losing":
			s.each(func(name string, team models.Team) {
				if team.StatusEnum == "rebuilding" {
					scores[name] -= 10
				}
			})
		case "bandwagon":
			s.each(func(name string, team models.Team) {
				if team.Bandwagon == "Very High" || team.Bandwagon == "High" {
					scores[name] -= 8
				}
			})
		case "injuries":
			s.each(func(name string, team models.Team) {
				if team.Injuries == "Very High" || team.Injuries == "High" {
					scores[name] -= 6
				}
			})
		case "dysfunction":
			s.each(func(name string, team models.Team) {
				switch team.Dysfunction {
				case "High":
					scores[name] -= 8
				case "Medium":
					scores[name] -= 3
				}
			})
		}
	}

	// Watchability tiebreaker on a halved 1-10 scale.
	s.each(func(name string, team models.Team) {
		scores[name] += float64(team.Watchability) * 0.05
	})

	order := append([]string{}, s.store.TeamOrder()...)
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	if len(order) > 3 {
		order = order[:3]
	}

	results := make([]models.MatchResult, 0, len(order))
	for idx, name := range order {
		team, _ := s.store.Team(name)
		percent := 75 + (3-idx)*8 + jitter(name)
		if percent > 99 {
			percent = 99
		}
		results = append(results, toResult(name, percent, nil, team))
	}
	s.logger.Debug("scored legacy quiz", map[string]interface{}{"top": order})
	return results
}

func (s *Scorer) each(fn func(name string, team models.Team)) {
	for _, name := range s.store.TeamOrder() {
		team, _ := s.store.Team(name)
		fn(name, team)
	}
}

// jitter replaces the original random tiebreak with a stable 0..4 value
// derived from the team name.
func jitter(name string) int {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*31 + uint32(name[i])
	}
	return int(h % 5)
}

func toResult(name string, percent int, reasons []string, team models.Team) models.MatchResult {
	return models.MatchResult{
		Name:         name,
		MatchPercent: percent,
		Reasons:      reasons,
		Stars:        team.Stars,
		ViewingTimes: team.ViewingTimes,
		Status:       team.Status,
		Style:        team.Style,
		Headline:     team.Headline,
	}
}
