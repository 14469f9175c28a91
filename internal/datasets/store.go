// internal/datasets/store.go
package datasets

import (
	"sort"

	"hoopmatch/internal/models"
)

// Store exposes the reference datasets behind read-only accessors. The
// zero value is not usable; construct one with NewStore. A Store is
// immutable after construction and safe for concurrent readers.
type Store struct {
	teams map[string]models.Team
	order []string

	footballClubs map[string]models.SourceClub
	nflTeams      map[string]models.SourceClub
	mlbTeams      map[string]models.SourceClub
	nhlTeams      map[string]models.SourceClub
	f1Teams       map[string]models.SourceClub

	// merged lookup across every source league, built once at construction
	sourceLookup map[string]models.SourceClub
	sourceOrder  []string
}

// NewStore builds a Store from the embedded default datasets.
func NewStore() *Store {
	return newStoreWith(defaultTeams, teamOrder)
}

// NewStoreWithTeams builds a Store whose NBA table comes from an external
// loader (e.g. Postgres) instead of the embedded defaults. The iteration
// order is the sorted key set so external data stays reproducible too.
func NewStoreWithTeams(teams map[string]models.Team) *Store {
	order := make([]string, 0, len(teams))
	for name := range teams {
		order = append(order, name)
	}
	sort.Strings(order)
	return newStoreWith(teams, order)
}

func newStoreWith(teams map[string]models.Team, order []string) *Store {
	s := &Store{
		teams:         teams,
		order:         order,
		footballClubs: defaultFootballClubs,
		nflTeams:      defaultNFLTeams,
		mlbTeams:      defaultMLBTeams,
		nhlTeams:      defaultNHLTeams,
		f1Teams:       defaultF1Teams,
	}
	s.sourceLookup = make(map[string]models.SourceClub)
	for _, league := range []map[string]models.SourceClub{
		s.footballClubs, s.nflTeams, s.mlbTeams, s.nhlTeams, s.f1Teams,
	} {
		for key, club := range league {
			s.sourceLookup[key] = club
			s.sourceOrder = append(s.sourceOrder, key)
		}
	}
	sort.Strings(s.sourceOrder)
	return s
}

// TeamOrder returns the canonical iteration order over the NBA table.
// Callers must not mutate the returned slice.
func (s *Store) TeamOrder() []string {
	return s.order
}

// Team looks up an NBA team by its full canonical name.
func (s *Store) Team(name string) (models.Team, bool) {
	t, ok := s.teams[name]
	return t, ok
}

// Teams returns the full NBA table keyed by canonical name. Callers must
// treat the map as read-only.
func (s *Store) Teams() map[string]models.Team {
	return s.teams
}

// SourceClub looks up a source-league club by its data key, searching
// every league.
func (s *Store) SourceClub(key string) (models.SourceClub, bool) {
	c, ok := s.sourceLookup[key]
	return c, ok
}

// SourceKeys returns every source-league club key in sorted order.
func (s *Store) SourceKeys() []string {
	return s.sourceOrder
}

// FootballClubs returns the football club table keyed by short data key.
func (s *Store) FootballClubs() map[string]models.SourceClub {
	return s.footballClubs
}

// Nationalities returns the player nationalities for a team, addressed by
// its shorthand name ("Mavericks"). Unknown teams return nil.
func (s *Store) Nationalities(shortName string) []string {
	return teamNationalities[shortName]
}

// TraitPlayers returns the Player Explorer entries for a trait key.
func (s *Store) TraitPlayers(trait string) []models.TraitPlayer {
	return TraitPlayers(trait)
}

// TraitKeys returns every Player Explorer trait key in sorted order.
func (s *Store) TraitKeys() []string {
	keys := make([]string, 0, len(playersByTrait))
	for k := range playersByTrait {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LegacyPlayers returns the archetype roster for the player-based flow.
func (s *Store) LegacyPlayers() []LegacyPlayer {
	return legacyPlayers
}
