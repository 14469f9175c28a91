// internal/match/legacy/football.go
package legacy

import (
	"fmt"
	"sort"
	"strings"

	"hoopmatch/internal/match/alias"
	"hoopmatch/internal/models"
)

// refinementPicks override the club mapping when the user refines by
// what they want out of a team.
var refinementPicks = map[string][]string{
	"history":   {"Boston Celtics", "Los Angeles Lakers", "New York Knicks"},
	"rise":      {"Oklahoma City Thunder", "Orlando Magic", "Cleveland Cavaliers"},
	"style":     {"Golden State Warriors", "Indiana Pacers", "San Antonio Spurs"},
	"underdogs": {"Sacramento Kings", "Memphis Grizzlies", "Cleveland Cavaliers"},
}

// Football maps a single football club (plus optional refinement) to
// three NBA teams. Unknown clubs return an empty slice.
func (s *Scorer) Football(selectedClub, refinement string) []models.MatchResult {
	club, ok := s.store.SourceClub(alias.ClubKey(selectedClub))
	if !ok {
		return nil
	}

	primarySet := make(map[string]bool)
	var recommended []string
	if club.PrimaryTeam != "" {
		full := alias.FullName(club.PrimaryTeam)
		if _, ok := s.store.Team(full); ok {
			recommended = []string{full}
			primarySet[full] = true
		}
	}

	if picks, ok := refinementPicks[refinement]; ok {
		recommended = picks
	}

	finalList := s.ensureThree(recommended)

	results := make([]models.MatchResult, 0, len(finalList))
	for idx, name := range finalList {
		team, _ := s.store.Team(name)
		reason := fmt.Sprintf("Similar identity to %s: %s", selectedClub, club.Identity)
		if primarySet[name] {
			reason = strings.TrimSpace(fmt.Sprintf("Direct franchise/city link to %s. %s", selectedClub, identitySuffix(club.Identity)))
		}
		results = append(results, toResult(name, 95-idx*3, []string{reason}, team))
	}
	s.logger.Debug("scored legacy football selection", map[string]interface{}{
		"club": selectedClub,
		"top":  finalList,
	})
	return results
}

func identitySuffix(identity string) string {
	if identity == "" {
		return ""
	}
	return "Identity: " + identity
}

// ensureThree pads a recommendation list to three teams using a simple
// watchability-and-status fallback ranking.
func (s *Scorer) ensureThree(list []string) []string {
	if len(list) >= 3 {
		return list[:3]
	}
	exclude := make(map[string]bool, len(list))
	for _, name := range list {
		exclude[name] = true
	}

	type fallback struct {
		name  string
		score int
	}
	var entries []fallback
	for _, name := range s.store.TeamOrder() {
		if exclude[name] {
			continue
		}
		team, _ := s.store.Team(name)
		score := 40
		switch {
		case team.Watchability >= 85:
			score = 90
		case team.Watchability >= 70:
			score = 75
		case team.Watchability >= 55:
			score = 55
		}
		status := strings.ToLower(team.Status)
		if strings.Contains(status, "defending") || strings.Contains(status, "contender") || strings.Contains(status, "competing") {
			score += 10
		}
		entries = append(entries, fallback{name: name, score: score})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })

	out := append([]string{}, list...)
	for _, e := range entries {
		if len(out) >= 3 {
			break
		}
		out = append(out, e.name)
	}
	return out
}
