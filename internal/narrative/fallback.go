// internal/narrative/fallback.go
package narrative

import (
	"regexp"
	"strings"

	"hoopmatch/internal/models"
)

// PlayerFallbackLine is streamed for a player when the upstream fails.
const PlayerFallbackLine = "dynamic scorer, fun watch factor."

var paragraphBreak = regexp.MustCompile(`\n\n+`)

// SplitParagraphs splits narrative text on blank lines and returns at
// most max non-empty paragraphs.
func SplitParagraphs(text string, max int) []string {
	var out []string
	for _, p := range paragraphBreak.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == max {
			break
		}
	}
	return out
}

// Synthesize builds the three-paragraph narrative locally from the
// ranked results. Output follows the same "{label}: {team} — {story}"
// shape the upstream is prompted for, so clients parse both the same
// way.
func Synthesize(results []models.MatchResult) string {
	var paragraphs []string
	for i, r := range results {
		if i >= len(rankLabels) {
			break
		}
		paragraphs = append(paragraphs, rankLabels[i]+": "+r.Name+" — "+storyFor(r))
	}
	return strings.Join(paragraphs, "\n\n")
}

func storyFor(r models.MatchResult) string {
	var sentences []string
	if r.Headline != "" {
		sentences = append(sentences, ensurePeriod(r.Headline))
	}
	if len(r.Reasons) > 0 {
		sentences = append(sentences, ensurePeriod("Why it fits: "+strings.Join(r.Reasons, "; ")))
	}
	if len(r.Stars) > 0 {
		sentences = append(sentences, ensurePeriod("Built around "+joinNames(r.Stars)))
	}
	if r.ViewingTimes != "" {
		sentences = append(sentences, ensurePeriod("Typical games air "+lowerFirst(r.ViewingTimes)))
	}
	if r.Catch != "" {
		sentences = append(sentences, ensurePeriod("The catch: "+lowerFirst(r.Catch)))
	}
	if len(sentences) == 0 {
		sentences = append(sentences, "A strong stylistic fit for what you already follow.")
	}
	return strings.Join(sentences, " ")
}

func joinNames(names []string) string {
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func ensurePeriod(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
