// internal/match/legacy/player.go
package legacy

import "hoopmatch/internal/models"

// archetypePicks list the teams recommended per dominant archetype.
var archetypePicks = map[string][]string{
	"flashy":  {"Atlanta Hawks", "Indiana Pacers", "Minnesota Timberwolves"},
	"power":   {"Milwaukee Bucks", "Cleveland Cavaliers", "New York Knicks"},
	"finesse": {"Denver Nuggets", "Dallas Mavericks", "Boston Celtics"},
}

// archetypeOrder breaks ties: the earlier archetype wins an equal count.
var archetypeOrder = []string{"flashy", "power", "finesse"}

// Players maps a set of favorite players to three NBA teams. A team two
// or more picks share jumps to the front; the dominant archetype fills
// the rest. Empty selections return an empty slice.
func (s *Scorer) Players(selectedPlayers []string) []models.MatchResult {
	if len(selectedPlayers) == 0 {
		return nil
	}

	roster := s.store.LegacyPlayers()
	byName := make(map[string]int, len(roster))
	for i, p := range roster {
		byName[p.Name] = i
	}

	teamCounts := make(map[string]int)
	var teamFirstSeen []string
	archetypeCounts := map[string]int{"flashy": 0, "power": 0, "finesse": 0}
	for _, name := range selectedPlayers {
		idx, ok := byName[name]
		if !ok {
			continue
		}
		p := roster[idx]
		if teamCounts[p.Team] == 0 {
			teamFirstSeen = append(teamFirstSeen, p.Team)
		}
		teamCounts[p.Team]++
		archetypeCounts[p.Archetype]++
	}

	var recommended []string
	bestTeam, bestCount := "", 0
	for _, team := range teamFirstSeen {
		if teamCounts[team] > bestCount {
			bestTeam, bestCount = team, teamCounts[team]
		}
	}
	if bestCount >= 2 {
		recommended = append(recommended, bestTeam)
	}

	dominant := archetypeOrder[0]
	for _, a := range archetypeOrder[1:] {
		if archetypeCounts[a] > archetypeCounts[dominant] {
			dominant = a
		}
	}
	recommended = append(recommended, archetypePicks[dominant]...)

	seen := make(map[string]bool)
	var unique []string
	for _, name := range recommended {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
		if len(unique) == 3 {
			break
		}
	}

	results := make([]models.MatchResult, 0, len(unique))
	for idx, name := range unique {
		team, _ := s.store.Team(name)
		results = append(results, toResult(name, 92-idx*4, nil, team))
	}
	s.logger.Debug("scored legacy player selection", map[string]interface{}{
		"players": selectedPlayers,
		"top":     unique,
	})
	return results
}
