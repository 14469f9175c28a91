// internal/narrative/prompt.go
package narrative

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/alias"
	matchnarrative "hoopmatch/internal/match/narrative"
	"hoopmatch/internal/models"
)

var rankLabels = []string{"Top recommendation", "Second choice", "Dark horse"}

const sourcesSystemPrompt = `You are a sports concierge. Write persuasive, concrete, fan-friendly explanations for NBA team recommendations.
Rules:
- 3 paragraphs, one per team, in rank order: "Top recommendation:", "Second choice:", "Dark horse:".
- Each paragraph: 3-5 sentences. Be specific; reference the user's source teams, identity/style, current status, stars, and any caveats.
- Avoid generic phrasing. Prefer concrete details. Keep it positive but honest.`

const quizSystemPrompt = `You are a sports concierge. Write persuasive, concrete, fan-friendly explanations for NBA team recommendations.
Rules:
- 3 paragraphs, one per team, in rank order: "Top recommendation:", "Second choice:", "Dark horse:".
- Each paragraph: 3-5 sentences. Be specific; reference the user's location/timezone, nationality, preferred style/philosophy, and any caveats.
- Only use details that appear in the provided metadata for each team. Do NOT invent trades, signings or injuries.
- Mention player names only if included in the team's stars list; otherwise speak generically.
- Avoid generic phrasing. Prefer concrete details. Keep it positive but honest.`

const playersSystemPrompt = `You are a friendly NBA guide for beginners. Write vivid, punchy hooks that make each player compelling to follow fast.
Rules and tone:
- Plain text only (no markdown/emojis). Conversational, energetic, but professional.
- 1-2 sentences per item, ~25-45 words total; avoid filler.
- Be specific about role/archetype, signature skills/moves, typical usage (on-ball/off-ball), and why games featuring this player are fun to watch.
- Use current team names only. Do NOT invent trades, injuries, or precise stats. Prefer timeless descriptors over numbers.
- When traits are provided, weave 1-2 of them naturally into each hook.`

// humanStyles maps style codes to readable phrases for prompts.
var humanStyles = map[string]string{
	"fast_paced":      "fast-paced transition offense",
	"three_point":     "three-point shooting and spacing",
	"defensive":       "defensive intensity and physicality",
	"team_first":      "team-first ball movement",
	"star_dominance":  "superstar-driven attack",
	"playmaking":      "elite playmaking",
	"balanced":        "balanced two-way style",
	"big_man_focused": "frontcourt-focused attack",
	"clutch":          "late-game shotmaking",
}

func humanizeStyles(styles []string) string {
	if len(styles) == 0 {
		return ""
	}
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		if h, ok := humanStyles[s]; ok {
			out = append(out, h)
		} else {
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}

func humanizeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.ReplaceAll(t, "_", " "))
	}
	return strings.Join(out, ", ")
}

func watchabilityLabel(n int) string {
	if n <= 0 {
		return ""
	}
	switch {
	case n >= 90:
		return fmt.Sprintf("%d/100 (elite)", n)
	case n >= 80:
		return fmt.Sprintf("%d/100 (high)", n)
	case n >= 65:
		return fmt.Sprintf("%d/100 (medium)", n)
	}
	return fmt.Sprintf("%d/100 (low)", n)
}

func statusSnippet(statusEnum string) string {
	if statusEnum == "" {
		return ""
	}
	if s, ok := matchnarrative.DefaultTemplates().StatusSnippets[statusEnum]; ok {
		return s
	}
	return statusEnum
}

// BuildSourcesPrompt assembles the system and user messages for the
// source-team narrative: the user's clubs with full context plus the
// three candidates with metadata.
func BuildSourcesPrompt(store *datasets.Store, topThree []models.MatchResult, sources []string) (string, string) {
	var sourceTags []string
	var contextLines []string
	for _, name := range sources {
		club, ok := store.SourceClub(alias.ClubKey(name))
		if !ok {
			contextLines = append(contextLines, "- "+name)
			continue
		}
		sourceTags = append(sourceTags, club.IdentityTags...)
		sourceTags = append(sourceTags, club.PlayingStyleTags...)
		contextLines = append(contextLines, sourceContextLine(store, name, club))
	}

	uniqueTags := dedupe(sourceTags)
	if len(uniqueTags) > 6 {
		uniqueTags = uniqueTags[:6]
	}

	var candidates []string
	for i, t := range topThree {
		candidates = append(candidates, candidateLine(store, i, t, uniqueTags))
	}

	user := fmt.Sprintf(`Source teams: %s
Source context:
%s

Candidates (with metadata):
%s

Write EXACTLY three paragraphs in this order, and start each paragraph EXACTLY like this (including the team name and an em dash after the name):
%s
Format:
Top recommendation: {Team 1} — {paragraph}

Second choice: {Team 2} — {paragraph}

Dark horse: {Team 3} — {paragraph}

Hard constraints:
- Do not swap team names; each paragraph must be about the mapped team only.
- Do not add extra headings or lists; only the three paragraphs.
Preference guidance:
- If a source lists a primary_nba that matches one of the three candidates, explicitly connect that link in the rationale.
- If a source city maps to a city_link_nba matching a candidate, use it to explain the fit ("complete your {city} set").
- Avoid defaulting to the same 3-4 glamour teams; focus on the specific identity tags and context of the user's source teams to justify each recommendation.
Compose the three paragraphs now in plain text.`,
		strings.Join(sources, ", "),
		strings.Join(contextLines, "\n"),
		strings.Join(candidates, "\n"),
		rankMapping(topThree),
	)
	return sourcesSystemPrompt, user
}

// BuildQuizPrompt assembles the system and user messages for the quiz
// narrative: the raw answers as JSON plus the candidates with metadata.
func BuildQuizPrompt(store *datasets.Store, topThree []models.MatchResult, answers models.QuizAnswers) (string, string) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		answersJSON = []byte("{}")
	}

	var candidates []string
	for i, t := range topThree {
		candidates = append(candidates, candidateLine(store, i, t, nil))
	}

	user := fmt.Sprintf(`User inputs: %s

Candidates (with metadata):
%s

Write EXACTLY three paragraphs in this order, and start each paragraph EXACTLY like this (including the team name and an em dash after the name):
%s
Format:
Top recommendation: {Team 1} — {paragraph}

Second choice: {Team 2} — {paragraph}

Dark horse: {Team 3} — {paragraph}

Hard constraints:
- Do not swap team names; each paragraph must be about the mapped team only.
- Do not add extra headings or lists; only the three paragraphs.
Compose the three paragraphs now in plain text.`,
		answersJSON,
		strings.Join(candidates, "\n"),
		rankMapping(topThree),
	)
	return quizSystemPrompt, user
}

// BuildPlayerPrompt assembles the per-player hook request.
func BuildPlayerPrompt(player models.TraitPlayer, traits []string) (string, string) {
	traitText := "beginner preferences"
	if len(traits) > 0 {
		traitText = strings.Join(traits, ", ")
	}
	subject := player.Player
	if player.Team != "" {
		subject += " of the " + player.Team
	}
	user := fmt.Sprintf(
		"Traits picked: %s\n\nWrite a compelling 1-2 sentence hook (25-45 words) about why %s is fun to follow. Mention role/archetype and signature skills; tie to 1-2 of the traits. Plain text only. END THE HOOK WITH A PERIOD, no trailing tokens.",
		traitText, subject,
	)
	return playersSystemPrompt, user
}

func sourceContextLine(store *datasets.Store, name string, club models.SourceClub) string {
	var b strings.Builder
	b.WriteString("- " + name)
	if club.League != "" {
		b.WriteString(" [" + club.League + "]")
	}
	if club.City != "" {
		b.WriteString(" (" + club.City + ")")
	}
	if s := statusSnippet(club.StatusEnum); s != "" {
		b.WriteString(": " + s)
	} else if club.Status != "" {
		b.WriteString(": " + club.Status)
	}
	if club.CurrentRecord != "" {
		b.WriteString(" | record: " + club.CurrentRecord)
	}
	if s := humanizeTags(club.PlayingStyleTags); s != "" {
		b.WriteString(" | style: " + s)
	}
	if s := humanizeTags(club.IdentityTags); s != "" {
		b.WriteString(" | identity: " + s)
	}
	if s := watchabilityLabel(club.Watchability); s != "" {
		b.WriteString(" | watchability: " + s)
	}
	if club.PrimaryTeam != "" {
		b.WriteString(" | primary_nba: " + alias.FullName(club.PrimaryTeam))
	}
	if linked := cityLinkedTeam(store, club.City); linked != "" {
		b.WriteString(" | city_link_nba: " + linked)
	}
	if club.Highlights != "" {
		b.WriteString(" | highlights: " + club.Highlights)
	}
	return b.String()
}

func cityLinkedTeam(store *datasets.Store, city string) string {
	if city == "" {
		return ""
	}
	for _, name := range store.TeamOrder() {
		team, _ := store.Team(name)
		if alias.CityMatch(team.City, city) {
			return name
		}
	}
	return ""
}

func candidateLine(store *datasets.Store, idx int, t models.MatchResult, sourceTags []string) string {
	team, _ := store.Team(t.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s\n", idx+1, t.Name)
	fmt.Fprintf(&b, "headline: %s\n", t.Headline)
	writeIf := func(label, value string) {
		if value != "" {
			b.WriteString(label + ": " + value + "\n")
		}
	}
	writeIf("status", statusSnippet(team.StatusEnum))
	writeIf("style", humanizeStyles(team.PlayingStyles))
	writeIf("philosophy", strings.Join(team.Philosophy, ", "))
	writeIf("stars", strings.Join(team.Stars, ", "))
	writeIf("watchability", watchabilityLabel(team.Watchability))
	writeIf("timezone", team.Timezone)
	writeIf("viewing", team.ViewingTimes)
	risks := joinNonEmpty(" | ", team.Injuries, team.Dysfunction)
	writeIf("risks", risks)
	if len(sourceTags) > 0 {
		writeIf("source_identity_tags", strings.Join(sourceTags, ", "))
	}
	writeIf("reasons", strings.Join(t.Reasons, " | "))
	if t.Catch != "" {
		b.WriteString("catch: " + t.Catch + "\n")
	}
	return b.String()
}

func rankMapping(topThree []models.MatchResult) string {
	var lines []string
	for i, t := range topThree {
		if i >= len(rankLabels) {
			break
		}
		lines = append(lines, rankLabels[i]+" -> "+t.Name)
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(sep string, values ...string) string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
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
