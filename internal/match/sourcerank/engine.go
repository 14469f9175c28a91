// internal/match/sourcerank/engine.go

// Package sourcerank ranks NBA teams against the clubs a user already
// follows in other leagues. Scoring is fully deterministic: the only
// variance comes from a hash seeded by the selection itself.
package sourcerank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/alias"
	"hoopmatch/internal/models"
)

// Logger defines the logging interface for the ranker.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
}

// Engine scores every NBA team against the aggregated identity of the
// selected source clubs and returns a diversity-aware top 3.
type Engine struct {
	config Config
	store  *datasets.Store
	logger Logger
}

// NewEngine creates a source-team ranking engine.
func NewEngine(config Config, store *datasets.Store, log Logger) *Engine {
	return &Engine{config: config, store: store, logger: log}
}

// scored is one team's intermediate scoring state.
type scored struct {
	key        string
	score      int
	tags       []string
	reasons    []string
	styles     []string
	philosophy []string
	statusEnum string
	conference string
}

// sourceProfile aggregates tags and metadata across the selected clubs.
type sourceProfile struct {
	identityTags []string
	styleTags    []string
	philosophy   []string
	statusEnums  []string
	cities       []string
	watchAvg     int
	primaryHits  map[string]bool
	seed         uint32
	selection    []string
}

// Rank returns up to three recommendations for the selected source clubs.
// The same selection always produces the same output.
func (e *Engine) Rank(selected []string) []models.MatchResult {
	profile := e.collect(selected)
	allScored := e.scoreAll(profile)

	var top []scored
	if len(profile.selection) == 1 && len(profile.primaryHits) > 0 {
		top = e.placePrimaryFirst(allScored, profile)
		results := make([]models.MatchResult, 0, len(top))
		for _, s := range top {
			results = append(results, e.toResult(s, e.primaryReasons(s.key, profile)))
		}
		e.logger.Debug("ranked source selection with hard primary placement", map[string]interface{}{
			"selection": profile.selection,
			"top":       names(results),
		})
		return results
	}

	top = e.pickDiverse(allScored, profile)
	results := make([]models.MatchResult, 0, len(top))
	for _, s := range top {
		results = append(results, e.toResult(s, e.expandReasons(s)))
	}
	e.logger.Debug("ranked source selection", map[string]interface{}{
		"selection": profile.selection,
		"top":       names(results),
	})
	return results
}

func (e *Engine) collect(selected []string) sourceProfile {
	p := sourceProfile{primaryHits: make(map[string]bool)}
	seen := make(map[string]bool)
	for _, name := range selected {
		if !seen[name] {
			seen[name] = true
			p.selection = append(p.selection, name)
		}
	}
	p.seed = hashString(strings.Join(p.selection, "|"))

	order := e.store.TeamOrder()
	teamCity := func(name string) string {
		t, _ := e.store.Team(name)
		return t.City
	}

	var watchTotal, watchCount int
	for _, name := range p.selection {
		club, ok := e.store.SourceClub(alias.ClubKey(name))
		if !ok {
			continue
		}
		p.identityTags = append(p.identityTags, club.IdentityTags...)
		p.styleTags = append(p.styleTags, club.PlayingStyleTags...)
		p.philosophy = append(p.philosophy, club.Philosophy...)
		if club.StatusEnum != "" {
			p.statusEnums = append(p.statusEnums, club.StatusEnum)
		}
		if club.Watchability > 0 {
			watchTotal += club.Watchability
			watchCount++
		}
		if club.PrimaryTeam != "" {
			if resolved := alias.ResolvePrimary(club.PrimaryTeam, club.City, order, teamCity); resolved != "" {
				p.primaryHits[resolved] = true
			}
		}
		if club.City != "" {
			p.cities = append(p.cities, club.City)
		}
	}

	p.watchAvg = e.config.DefaultWatchAvg
	if watchCount > 0 {
		p.watchAvg = int(math.Round(float64(watchTotal) / float64(watchCount)))
	}
	return p
}

func (e *Engine) scoreAll(p sourceProfile) []scored {
	allTags := dedupe(append(append([]string{}, p.identityTags...), p.styleTags...))

	out := make([]scored, 0, len(e.store.TeamOrder()))
	for _, key := range e.store.TeamOrder() {
		team, _ := e.store.Team(key)
		s := scored{
			key:        key,
			styles:     team.PlayingStyles,
			philosophy: team.Philosophy,
			statusEnum: team.StatusEnum,
			conference: team.Conference,
		}

		for _, tag := range allTags {
			if e.teamMatchesTag(key, team, tag) {
				s.tags = append(s.tags, tag)
				if w, ok := e.config.TagWeights[tag]; ok {
					s.score += w
				} else {
					s.score += e.config.DefaultTagWeight
				}
			}
		}

		styleOverlap := jaccard(team.PlayingStyles, p.styleTags)
		philosophyOverlap := jaccard(team.Philosophy, p.philosophy)
		s.score += int(math.Round(styleOverlap * float64(e.config.StyleOverlapWeight)))
		s.score += int(math.Round(philosophyOverlap * float64(e.config.PhilosophyOverlapWeight)))

		if statusAligned(team.StatusEnum, p.statusEnums) {
			s.score += e.config.StatusAlignBonus
		}

		delta := team.Watchability - p.watchAvg
		if delta < 0 {
			delta = -delta
		}
		if bump := e.config.WatchabilityMax - int(math.Round(float64(delta)/5)); bump > 0 {
			s.score += bump
		}

		if p.primaryHits[key] {
			s.score += e.config.PrimaryBoost
		}

		cityLinked := false
		lowCity := strings.ToLower(team.City)
		for _, c := range p.cities {
			if alias.CityMatch(team.City, c) {
				cityLinked = true
				break
			}
		}
		if cityLinked {
			s.score += e.config.CityLinkBoost
		}

		if BigBrands[key] && !p.primaryHits[key] && !hasJustifyingTag(s.tags) {
			s.score -= e.config.BrandPenalty
		}

		if len(p.selection) == 1 && p.primaryHits[key] {
			s.score += e.config.SinglePrimaryBoost
		}

		// Deterministic tie-breaker derived from the selection itself.
		jitter := int(int32(p.seed^hashString(key)))%9 - 4
		s.score += jitter

		if p.primaryHits[key] {
			s.reasons = append(s.reasons, "Direct franchise/city link to your selected team(s)")
		}
		if len(s.tags) > 0 {
			s.reasons = append(s.reasons, "Aligns with your teams' identity: "+strings.Join(firstN(s.tags, 3), ", "))
		}
		if styleOverlap > 0.34 {
			s.reasons = append(s.reasons, "Style fit with your teams (playing style overlap)")
		}
		if philosophyOverlap > 0.34 {
			s.reasons = append(s.reasons, "Philosophy matches your teams (identity/approach)")
		}
		for _, c := range p.cities {
			if lowCity != "" && strings.ToLower(c) == lowCity {
				s.reasons = append(s.reasons, fmt.Sprintf("City link: complete your %s set", titleCity(team.City)))
				break
			}
		}
		if team.Watchability >= 85 {
			s.reasons = append(s.reasons, "High watchability")
		}

		out = append(out, s)
	}
	return out
}

// placePrimaryFirst handles the single-selection case: the mapped NBA
// primary is pinned to #1 and everything else follows by score.
func (e *Engine) placePrimaryFirst(allScored []scored, p sourceProfile) []scored {
	primaryKey := ""
	for _, key := range e.store.TeamOrder() {
		if p.primaryHits[key] {
			primaryKey = key
			break
		}
	}

	ordered := make([]scored, 0, len(allScored))
	var primary *scored
	for i := range allScored {
		if allScored[i].key == primaryKey {
			primary = &allScored[i]
		} else {
			ordered = append(ordered, allScored[i])
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].score > ordered[j].score })
	if primary != nil {
		ordered = append([]scored{*primary}, ordered...)
	}
	if len(ordered) > 3 {
		ordered = ordered[:3]
	}
	return ordered
}

func (e *Engine) primaryReasons(key string, p sourceProfile) []string {
	reasons := []string{"Direct franchise/city link to your selected team(s)"}
	team, _ := e.store.Team(key)
	for _, c := range p.cities {
		if alias.CityMatch(team.City, c) {
			reasons = append(reasons, fmt.Sprintf("City link: complete your %s set", titleCity(team.City)))
			break
		}
	}
	return reasons
}

// pickDiverse runs a greedy MMR-like pass over the top candidates,
// relaxing the similarity threshold and brand budget until three teams
// are chosen.
func (e *Engine) pickDiverse(allScored []scored, p sourceProfile) []scored {
	sorted := make([]scored, len(allScored))
	copy(sorted, allScored)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	pool := e.config.CandidatePool
	if pool > len(sorted) {
		pool = len(sorted)
	}
	candidates := sorted[:pool]

	var chosen []scored
	brandLimit := 1

	violatesBrandLimit := func(key string) bool {
		if !BigBrands[key] || p.primaryHits[key] {
			return false
		}
		brands := 0
		for _, c := range chosen {
			if BigBrands[c.key] {
				brands++
			}
		}
		return brands >= brandLimit
	}
	violatesConference := func(conf string) bool {
		if conf == "" {
			return false
		}
		count := 0
		for _, c := range chosen {
			if c.conference == conf {
				count++
			}
		}
		return count >= 2
	}

	for _, threshold := range e.config.SimilarityThresholds {
		for _, c := range candidates {
			if len(chosen) >= 3 {
				break
			}
			if violatesBrandLimit(c.key) || violatesConference(c.conference) {
				continue
			}
			similar := false
			for _, x := range chosen {
				if similarity(x, c) > threshold {
					similar = true
					break
				}
			}
			if !similar {
				chosen = append(chosen, c)
			}
		}
		if len(chosen) >= 3 {
			break
		}
		brandLimit = 2
	}

	for len(chosen) < 3 && len(chosen) < len(candidates) {
		chosen = append(chosen, candidates[len(chosen)])
	}

	// Multi-select still guarantees a primary-mapped team in the top 3.
	if len(p.primaryHits) > 0 {
		hasPrimary := false
		for _, c := range chosen {
			if p.primaryHits[c.key] {
				hasPrimary = true
				break
			}
		}
		if !hasPrimary {
			for _, c := range candidates {
				if p.primaryHits[c.key] {
					replaceIdx := -1
					for i, x := range chosen {
						if BigBrands[x.key] && !p.primaryHits[x.key] {
							replaceIdx = i
							break
						}
					}
					if replaceIdx == -1 {
						replaceIdx = len(chosen) - 1
					}
					if replaceIdx >= 0 {
						chosen[replaceIdx] = c
					}
					break
				}
			}
		}
	}

	if len(chosen) > 3 {
		chosen = chosen[:3]
	}
	return chosen
}

func (e *Engine) expandReasons(s scored) []string {
	team, _ := e.store.Team(s.key)
	reasons := append([]string{}, s.reasons...)
	if len(team.PlayingStyles) > 0 {
		reasons = append(reasons, "Style: "+strings.Join(firstN(team.PlayingStyles, 2), ", "))
	}
	if len(team.Philosophy) > 0 {
		reasons = append(reasons, "Philosophy: "+strings.Join(firstN(team.Philosophy, 2), ", "))
	}
	return reasons
}

func (e *Engine) toResult(s scored, reasons []string) models.MatchResult {
	team, _ := e.store.Team(s.key)
	percent := e.config.BaselinePercent + s.score
	if percent < e.config.MinPercent {
		percent = e.config.MinPercent
	}
	if percent > e.config.MaxPercent {
		percent = e.config.MaxPercent
	}
	return models.MatchResult{
		Name:         s.key,
		MatchPercent: percent,
		Reasons:      firstN(dedupe(reasons), 4),
		Stars:        team.Stars,
		ViewingTimes: team.ViewingTimes,
		Status:       team.Status,
		Style:        team.Style,
		Headline:     team.Headline,
	}
}

func (e *Engine) teamMatchesTag(key string, team models.Team, tag string) bool {
	rule, ok := e.config.TagRules[tag]
	if !ok {
		return false
	}
	for _, se := range rule.StatusEnums {
		if se == team.StatusEnum {
			return true
		}
	}
	for _, style := range rule.PlayingStyles {
		if contains(team.PlayingStyles, style) {
			return true
		}
	}
	for _, ph := range rule.Philosophy {
		if contains(team.Philosophy, ph) {
			return true
		}
	}
	for _, brand := range rule.Brands {
		if alias.FullName(brand) == key {
			return true
		}
	}
	short := alias.ShortName(key)
	for _, market := range rule.Markets {
		if market == short {
			return true
		}
	}
	return false
}

// similarity blends style overlap, philosophy overlap and shared status
// into a rough 0..1.5 scale for the diversity pass.
func similarity(a, b scored) float64 {
	sim := jaccard(a.styles, b.styles)*0.6 + jaccard(a.philosophy, b.philosophy)*0.4
	sa := strings.ToLower(a.statusEnum)
	sb := strings.ToLower(b.statusEnum)
	if sa != "" && sa == sb {
		sim += 0.5
	}
	return sim
}

func statusAligned(teamStatusEnum string, sourceStatusEnums []string) bool {
	if teamStatusEnum == "" {
		return false
	}
	lowered := strings.ToLower(teamStatusEnum)
	for _, s := range sourceStatusEnums {
		for _, x := range statusAffinity[s] {
			if strings.Contains(lowered, x) {
				return true
			}
		}
	}
	return false
}

func jaccard(a, b []string) float64 {
	union := make(map[string]bool)
	setA := make(map[string]bool)
	for _, v := range a {
		setA[v] = true
		union[v] = true
	}
	inter := 0
	counted := make(map[string]bool)
	for _, v := range b {
		union[v] = true
		if setA[v] && !counted[v] {
			counted[v] = true
			inter++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(inter) / float64(len(union))
}

func hashString(input string) uint32 {
	var h uint32
	for i := 0; i < len(input); i++ {
		h = h*31 + uint32(input[i])
	}
	return h
}

func hasJustifyingTag(tags []string) bool {
	for _, t := range tags {
		if brandJustifyingTags[t] {
			return true
		}
	}
	return false
}

func titleCity(city string) string {
	low := strings.ToLower(city)
	if low == "" {
		return ""
	}
	return strings.ToUpper(low[:1]) + low[1:]
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

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func names(results []models.MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}
