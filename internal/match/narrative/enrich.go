// internal/match/narrative/enrich.go

// Package narrative decorates ranked matches with presentation copy:
// title labels, identity-link reasons and the honest "catch" caveat.
// It never writes the long-form narrative paragraph; that arrives from
// the streaming synthesizer and the summary stays empty until then.
package narrative

import (
	"strings"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/alias"
	"hoopmatch/internal/models"
)

// Logger defines the logging interface for the enricher.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
}

// Templates holds every copy fragment the enricher can emit. The
// placeholders {sourceTeam}, {identitySnippet} and {statusSnippet} are
// substituted at render time.
type Templates struct {
	TitleTop    string
	TitleSecond string
	TitleThird  string

	IdentityMatch string
	Watchability  string
	WinningNow    string

	IdentitySnippets map[string]string
	StatusSnippets   map[string]string
	Catches          map[string]string

	WatchabilityThreshold int
}

// DefaultTemplates returns the production copy set.
func DefaultTemplates() Templates {
	return Templates{
		TitleTop:    "Top recommendation",
		TitleSecond: "Second choice",
		TitleThird:  "Dark horse",

		IdentityMatch: "Similar identity to {sourceTeam}: {identitySnippet}",
		Watchability:  "High watchability - consistently entertaining games",
		WinningNow:    "Competitive now ({statusSnippet})",

		IdentitySnippets: map[string]string{
			"historic":          "deep history and tradition",
			"cosmopolitan":      "big-market glamour",
			"star_power":        "superstar pull",
			"technical":         "skill-first basketball",
			"possession":        "control-the-game approach",
			"blue_collar":       "working-class grit",
			"underdog":          "underdog spirit",
			"young_team":        "young core on the way up",
			"winning_tradition": "winning pedigree",
		},
		StatusSnippets: map[string]string{
			"contender":          "title push in progress",
			"defending_champion": "defending champions",
			"competing":          "competitive every night",
			"rising":             "climbing fast",
		},
		Catches: map[string]string{
			"rebuilding":  "Expect growing pains while the rebuild plays out",
			"injuries":    "Injury absences could derail stretches of the season",
			"dysfunction": "Front-office drama flares up now and then",
		},

		WatchabilityThreshold: 75,
	}
}

// Enricher applies the templates to ranked matches.
type Enricher struct {
	templates Templates
	store     *datasets.Store
	logger    Logger
}

// NewEnricher creates a narrative enricher.
func NewEnricher(templates Templates, store *datasets.Store, log Logger) *Enricher {
	return &Enricher{templates: templates, store: store, logger: log}
}

// Enrich returns a copy of matches with title labels, expanded reasons
// and catches attached. The input order is the ranking order.
func (e *Enricher) Enrich(matches []models.MatchResult, selectedTeams []string) []models.MatchResult {
	sources := e.sourceMeta(selectedTeams)

	out := make([]models.MatchResult, len(matches))
	for idx, m := range matches {
		team, _ := e.store.Team(m.Name)
		var reasons []string

		for _, src := range sources {
			snippets := e.identitySnippets(src.identity)
			if len(snippets) == 0 {
				continue
			}
			line := strings.NewReplacer(
				"{sourceTeam}", src.name,
				"{identitySnippet}", strings.Join(snippets, ", "),
			).Replace(e.templates.IdentityMatch)
			reasons = append(reasons, line)
		}

		if team.Watchability >= e.templates.WatchabilityThreshold {
			reasons = append(reasons, e.templates.Watchability)
		}

		if snippet, ok := e.templates.StatusSnippets[team.StatusEnum]; ok {
			reasons = append(reasons, strings.ReplaceAll(e.templates.WinningNow, "{statusSnippet}", snippet))
		}

		enriched := m
		enriched.TitleLabel = e.titleFor(idx)
		enriched.Reasons = firstN(dedupe(append(append([]string{}, m.Reasons...), reasons...)), 4)
		enriched.Catch = e.catchFor(team)
		enriched.NarrativeSummary = ""
		out[idx] = enriched
	}

	e.logger.Debug("enriched matches", map[string]interface{}{
		"count":   len(out),
		"sources": len(sources),
	})
	return out
}

type sourceInfo struct {
	name     string
	identity string
}

func (e *Enricher) sourceMeta(selectedTeams []string) []sourceInfo {
	seen := make(map[string]bool)
	var out []sourceInfo
	for _, name := range selectedTeams {
		if seen[name] {
			continue
		}
		seen[name] = true
		club, ok := e.store.SourceClub(alias.ClubKey(name))
		if !ok {
			continue
		}
		out = append(out, sourceInfo{name: name, identity: club.Identity})
	}
	return out
}

// identitySnippets turns a club's free-text identity into at most two
// human-readable fragments.
func (e *Enricher) identitySnippets(identity string) []string {
	var out []string
	for _, tag := range alias.TagsFromText(identity) {
		if snippet, ok := e.templates.IdentitySnippets[tag]; ok {
			out = append(out, snippet)
		}
		if len(out) == 2 {
			break
		}
	}
	return out
}

func (e *Enricher) titleFor(idx int) string {
	switch idx {
	case 0:
		return e.templates.TitleTop
	case 1:
		return e.templates.TitleSecond
	default:
		return e.templates.TitleThird
	}
}

// catchFor picks the single most important caveat: rebuild status first,
// then injury risk, then dysfunction.
func (e *Enricher) catchFor(team models.Team) string {
	if strings.Contains(strings.ToLower(team.StatusEnum), "rebuild") {
		return e.templates.Catches["rebuilding"]
	}
	if strings.Contains(strings.ToLower(team.Injuries), "high") {
		return e.templates.Catches["injuries"]
	}
	if strings.Contains(strings.ToLower(team.Dysfunction), "high") {
		return e.templates.Catches["dysfunction"]
	}
	return ""
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
