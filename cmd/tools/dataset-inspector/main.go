// cmd/tools/dataset-inspector/main.go

// dataset-inspector dumps and checks the built-in reference tables.
// Handy when editing the datasets package: "check" catches dangling
// primary-team links and clubs without identity tags before a deploy.
package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"hoopmatch/internal/datasets"
	"hoopmatch/internal/match/alias"
)

func main() {
	teamsCmd := flag.NewFlagSet("teams", flag.ExitOnError)
	teamsJSON := teamsCmd.Bool("json", false, "Emit the full team table as JSON")

	sourcesCmd := flag.NewFlagSet("sources", flag.ExitOnError)
	sourcesLeague := sourcesCmd.String("league", "", "Only list clubs from this league")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	store := datasets.NewStore()

	switch os.Args[1] {
	case "teams":
		teamsCmd.Parse(os.Args[2:])
		listTeams(store, *teamsJSON)
	case "sources":
		sourcesCmd.Parse(os.Args[2:])
		listSources(store, *sourcesLeague)
	case "traits":
		listTraits(store)
	case "check":
		checkCmd.Parse(os.Args[2:])
		if !check(store) {
			os.Exit(1)
		}
	default:
		help()
		os.Exit(1)
	}
}

func listTeams(store *datasets.Store, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(store.Teams()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	for _, name := range store.TeamOrder() {
		team, _ := store.Team(name)
		fmt.Printf("%-28s %-4s %-2s watchability=%d\n",
			team.Name, team.Conference, team.Timezone, team.Watchability)
	}
}

func listSources(store *datasets.Store, league string) {
	for _, key := range store.SourceKeys() {
		club, _ := store.SourceClub(key)
		if league != "" && club.League != league {
			continue
		}
		fmt.Printf("%-28s %-10s primary=%s\n", club.Name, club.League, club.PrimaryTeam)
	}
}

func listTraits(store *datasets.Store) {
	for _, trait := range store.TraitKeys() {
		players := store.TraitPlayers(trait)
		fmt.Printf("%-24s %d players\n", trait, len(players))
	}
}

// check verifies cross-table consistency of the built-in data.
func check(store *datasets.Store) bool {
	ok := true

	for _, name := range store.TeamOrder() {
		team, _ := store.Team(name)
		if team.Watchability < 0 || team.Watchability > 100 {
			fmt.Printf("❌ %s: watchability %d out of range\n", team.Name, team.Watchability)
			ok = false
		}
	}

	for _, key := range store.SourceKeys() {
		club, _ := store.SourceClub(key)
		if club.PrimaryTeam != "" {
			if _, found := store.Team(alias.FullName(club.PrimaryTeam)); !found {
				fmt.Printf("❌ %s: primary team %q matches no franchise\n", club.Name, club.PrimaryTeam)
				ok = false
			}
		}
		if len(club.IdentityTags) == 0 && len(club.PlayingStyleTags) == 0 {
			fmt.Printf("⚠️  %s: no identity or style tags, ranking falls back to overlap only\n", club.Name)
		}
	}

	if ok {
		fmt.Println("✅ Reference tables are consistent")
	}
	return ok
}

func help() {
	fmt.Println("Usage: dataset-inspector <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  teams    List NBA franchises (-json for the full table)")
	fmt.Println("  sources  List source clubs (-league to filter)")
	fmt.Println("  traits   List player trait pools")
	fmt.Println("  check    Verify cross-table consistency")
}
