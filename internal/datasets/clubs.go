// internal/datasets/clubs.go
package datasets

import "hoopmatch/internal/models"

// Football clubs are keyed by their short data key; display aliases such as
// "Newcastle United" resolve through the alias package before lookup.
var defaultFootballClubs = map[string]models.SourceClub{
	"Manchester United": {
		Name: "Manchester United", League: "Premier League", City: "Manchester",
		Identity:         "Fallen giant with historic glamour and global star power",
		IdentityTags:     []string{"historic", "winning_tradition", "star_power"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"historic", "star_power"},
		StatusEnum:       "fallen_giant_crisis", Watchability: 70,
		PrimaryTeam: "Lakers",
	},
	"Liverpool": {
		Name: "Liverpool", League: "Premier League", City: "Liverpool",
		Identity:         "Working class tradition, relentless pressing, winning history",
		IdentityTags:     []string{"historic", "winning_tradition", "blue_collar"},
		PlayingStyleTags: []string{"fast_paced", "team_first"},
		Philosophy:       []string{"winning_tradition", "blue_collar"},
		StatusEnum:       "domestic_dominance", Watchability: 88,
		PrimaryTeam: "Celtics",
	},
	"Arsenal": {
		Name: "Arsenal", League: "Premier League", City: "London",
		Identity:         "Technical, youth-driven project chasing the title",
		IdentityTags:     []string{"young_team", "technical"},
		PlayingStyleTags: []string{"team_first", "three_point"},
		Philosophy:       []string{"young_team", "technical"},
		StatusEnum:       "elite_contender", Watchability: 85,
		PrimaryTeam: "Thunder",
	},
	"Chelsea": {
		Name: "Chelsea", League: "Premier League", City: "London",
		Identity:         "Cosmopolitan superclub, expensive and unpredictable",
		IdentityTags:     []string{"cosmopolitan", "star_power"},
		PlayingStyleTags: []string{"balanced"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "talented_but_volatile", Watchability: 72,
		PrimaryTeam: "76ers",
	},
	"Manchester City": {
		Name: "Manchester City", League: "Premier League", City: "Manchester",
		Identity:         "Possession perfection and a modern winning machine",
		IdentityTags:     []string{"winning_tradition", "technical", "possession"},
		PlayingStyleTags: []string{"team_first", "playmaking"},
		Philosophy:       []string{"winning_tradition", "technical"},
		StatusEnum:       "continental_treble_holders", Watchability: 90,
		PrimaryTeam: "Warriors",
	},
	"Tottenham": {
		Name: "Tottenham", League: "Premier League", City: "London",
		Identity:         "Attacking underdogs forever chasing the breakthrough",
		IdentityTags:     []string{"underdog"},
		PlayingStyleTags: []string{"fast_paced", "three_point"},
		Philosophy:       []string{"underdog"},
		StatusEnum:       "cursed_overachievers", Watchability: 74,
		PrimaryTeam: "Suns",
	},
	"Newcastle": {
		Name: "Newcastle", League: "Premier League", City: "Newcastle",
		Identity:         "Blue collar resilience and a loyal fanbase reborn",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"defensive", "fast_paced"},
		Philosophy:       []string{"blue_collar", "underdog"},
		StatusEnum:       "established_renaissance", Watchability: 76,
		PrimaryTeam: "Grizzlies",
	},
	"Leicester": {
		Name: "Leicester", League: "Premier League", City: "Leicester",
		Identity:         "Small market miracle fallen on hard times",
		IdentityTags:     []string{"underdog", "blue_collar"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"underdog"},
		StatusEnum:       "crisis_rebuilding", Watchability: 55,
		PrimaryTeam: "Kings",
	},
	"West Ham": {
		Name: "West Ham", League: "Premier League", City: "London",
		Identity:         "Working class east London loyalty through mid-table chaos",
		IdentityTags:     []string{"blue_collar"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar"},
		StatusEnum:       "mid_table_europa_chaos", Watchability: 60,
		PrimaryTeam: "Pistons",
	},
	"Everton": {
		Name: "Everton", League: "Premier League", City: "Liverpool",
		Identity:         "Proud working class club grinding through crisis",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar", "underdog"},
		StatusEnum:       "crisis_rebuilding", Watchability: 50,
		PrimaryTeam: "Wizards",
	},
	"Aston Villa": {
		Name: "Aston Villa", League: "Premier League", City: "Birmingham",
		Identity:         "Historic underdog enjoying a renaissance",
		IdentityTags:     []string{"underdog", "historic"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"underdog"},
		StatusEnum:       "established_renaissance", Watchability: 72,
		PrimaryTeam: "Pacers",
	},
	"Real Madrid": {
		Name: "Real Madrid", League: "La Liga", City: "Madrid",
		Identity:         "Galactico glamour, champions of Europe, pure star power",
		IdentityTags:     []string{"star_power", "winning_tradition", "cosmopolitan"},
		PlayingStyleTags: []string{"star_dominance", "clutch"},
		Philosophy:       []string{"star_power", "winning_tradition"},
		StatusEnum:       "continental_treble_holders", Watchability: 92,
		PrimaryTeam: "Lakers",
	},
	"Barcelona": {
		Name: "Barcelona", League: "La Liga", City: "Barcelona",
		Identity:         "Tiki-taka academy beauty in a dynasty rebuilt by youth",
		IdentityTags:     []string{"technical", "possession", "young_team"},
		PlayingStyleTags: []string{"team_first", "playmaking"},
		Philosophy:       []string{"technical", "young_team"},
		StatusEnum:       "dynasty_in_transition", Watchability: 84,
		PrimaryTeam: "Spurs",
	},
	"Atletico Madrid": {
		Name: "Atletico Madrid", League: "La Liga", City: "Madrid",
		Identity:         "Defensive resilience and working class grit",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar"},
		StatusEnum:       "elite_contender", Watchability: 75,
		PrimaryTeam: "Heat",
	},
	"Bayern Munich": {
		Name: "Bayern Munich", League: "Bundesliga", City: "Munich",
		Identity:         "Relentless domestic dominance and winning tradition",
		IdentityTags:     []string{"winning_tradition"},
		PlayingStyleTags: []string{"balanced", "team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "domestic_dominance", Watchability: 83,
		PrimaryTeam: "Nuggets",
	},
	"Borussia Dortmund": {
		Name: "Borussia Dortmund", League: "Bundesliga", City: "Dortmund",
		Identity:         "Youth development, yellow wall loyalty, heavy metal football",
		IdentityTags:     []string{"young_team", "blue_collar"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"young_team", "blue_collar"},
		StatusEnum:       "dynasty_in_transition", Watchability: 80,
		PrimaryTeam: "Rockets",
	},
	"Paris Saint-Germain": {
		Name: "Paris Saint-Germain", League: "Ligue 1", City: "Paris",
		Identity:         "Paris glamour and superstar spectacle, champions of Europe at last",
		IdentityTags:     []string{"cosmopolitan", "star_power"},
		PlayingStyleTags: []string{"star_dominance", "fast_paced"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "continental_treble_holders", Watchability: 86,
		PrimaryTeam: "Knicks",
	},
	"Juventus": {
		Name: "Juventus", League: "Serie A", City: "Turin",
		Identity:         "Historic Italian giant clawing back from crisis",
		IdentityTags:     []string{"historic", "winning_tradition"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"historic"},
		StatusEnum:       "fallen_giant_crisis", Watchability: 66,
		PrimaryTeam: "Bulls",
	},
	"Milan": {
		Name: "Milan", League: "Serie A", City: "Milan",
		Identity:         "Historic cosmopolitan brand in renaissance",
		IdentityTags:     []string{"historic", "cosmopolitan"},
		PlayingStyleTags: []string{"balanced"},
		Philosophy:       []string{"historic"},
		StatusEnum:       "established_renaissance", Watchability: 71,
		PrimaryTeam: "Clippers",
	},
	"Inter": {
		Name: "Inter", League: "Serie A", City: "Milan",
		Identity:         "Winning tradition built on organized, ruthless team play",
		IdentityTags:     []string{"winning_tradition"},
		PlayingStyleTags: []string{"defensive", "team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "elite_contender", Watchability: 78,
		PrimaryTeam: "Cavaliers",
	},
	"Roma": {
		Name: "Roma", League: "Serie A", City: "Rome",
		Identity:         "Passionate loyal fanbase, forever the cursed romantic underdog",
		IdentityTags:     []string{"blue_collar", "historic"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"underdog"},
		StatusEnum:       "cursed_overachievers", Watchability: 65,
		PrimaryTeam: "Pelicans",
	},
	"Celtic": {
		Name: "Celtic", League: "Scottish Premiership", City: "Glasgow",
		Identity:         "Historic working class institution dominating domestically",
		IdentityTags:     []string{"historic", "blue_collar"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"historic", "blue_collar"},
		StatusEnum:       "domestic_dominance", Watchability: 64,
		PrimaryTeam: "Celtics",
	},
	"Ajax": {
		Name: "Ajax", League: "Eredivisie", City: "Amsterdam",
		Identity:         "Academy youth and technical ideals rebuilding from crisis",
		IdentityTags:     []string{"young_team", "technical"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"young_team", "technical"},
		StatusEnum:       "crisis_rebuilding", Watchability: 58,
		PrimaryTeam: "Jazz",
	},
	"Benfica": {
		Name: "Benfica", League: "Primeira Liga", City: "Lisbon",
		Identity:         "Talent factory with a winning domestic tradition",
		IdentityTags:     []string{"young_team", "winning_tradition"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"young_team"},
		StatusEnum:       "domestic_dominance", Watchability: 70,
		PrimaryTeam: "Magic",
	},
}

var defaultNFLTeams = map[string]models.SourceClub{
	"Cleveland Browns": {
		Name: "Cleveland Browns", League: "NFL", City: "Cleveland",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar", "underdog"},
		StatusEnum:       "crisis_rebuilding", Watchability: 52,
	},
	"Dallas Cowboys": {
		Name: "Dallas Cowboys", League: "NFL", City: "Dallas",
		IdentityTags:     []string{"star_power", "cosmopolitan", "historic"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "cursed_overachievers", Watchability: 80,
		PrimaryTeam: "Mavericks",
	},
	"Green Bay Packers": {
		Name: "Green Bay Packers", League: "NFL", City: "Green Bay",
		IdentityTags:     []string{"blue_collar", "winning_tradition", "historic"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"blue_collar", "winning_tradition"},
		StatusEnum:       "established_renaissance", Watchability: 78,
		PrimaryTeam: "Bucks",
	},
	"Pittsburgh Steelers": {
		Name: "Pittsburgh Steelers", League: "NFL", City: "Pittsburgh",
		IdentityTags:     []string{"blue_collar", "winning_tradition"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar"},
		StatusEnum:       "mid_table_europa_chaos", Watchability: 70,
	},
	"Kansas City Chiefs": {
		Name: "Kansas City Chiefs", League: "NFL", City: "Kansas City",
		IdentityTags:     []string{"star_power", "winning_tradition"},
		PlayingStyleTags: []string{"star_dominance", "clutch"},
		Philosophy:       []string{"star_power", "winning_tradition"},
		StatusEnum:       "continental_treble_holders", Watchability: 90,
	},
	"Buffalo Bills": {
		Name: "Buffalo Bills", League: "NFL", City: "Buffalo",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"blue_collar", "underdog"},
		StatusEnum:       "cursed_overachievers", Watchability: 82,
	},
	"Detroit Lions": {
		Name: "Detroit Lions", League: "NFL", City: "Detroit",
		IdentityTags:     []string{"blue_collar", "underdog"},
		PlayingStyleTags: []string{"fast_paced", "defensive"},
		Philosophy:       []string{"blue_collar"},
		StatusEnum:       "established_renaissance", Watchability: 84,
		PrimaryTeam: "Pistons",
	},
	"New York Giants": {
		Name: "New York Giants", League: "NFL", City: "New York",
		IdentityTags:     []string{"historic"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"historic"},
		StatusEnum:       "crisis_rebuilding", Watchability: 55,
		PrimaryTeam: "Knicks",
	},
	"San Francisco 49ers": {
		Name: "San Francisco 49ers", League: "NFL", City: "San Francisco",
		IdentityTags:     []string{"winning_tradition", "technical"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "elite_contender", Watchability: 83,
		PrimaryTeam: "Warriors",
	},
	"Philadelphia Eagles": {
		Name: "Philadelphia Eagles", League: "NFL", City: "Philadelphia",
		IdentityTags:     []string{"blue_collar", "winning_tradition"},
		PlayingStyleTags: []string{"defensive", "fast_paced"},
		Philosophy:       []string{"blue_collar"},
		StatusEnum:       "elite_contender", Watchability: 86,
		PrimaryTeam: "76ers",
	},
}

var defaultMLBTeams = map[string]models.SourceClub{
	"New York Yankees": {
		Name: "New York Yankees", League: "MLB", City: "New York",
		IdentityTags:     []string{"historic", "winning_tradition", "star_power"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"winning_tradition", "star_power"},
		StatusEnum:       "elite_contender", Watchability: 82,
		PrimaryTeam: "Knicks",
	},
	"Boston Red Sox": {
		Name: "Boston Red Sox", League: "MLB", City: "Boston",
		IdentityTags:     []string{"historic", "blue_collar"},
		PlayingStyleTags: []string{"balanced"},
		Philosophy:       []string{"historic"},
		StatusEnum:       "established_renaissance", Watchability: 72,
		PrimaryTeam: "Celtics",
	},
	"Los Angeles Dodgers": {
		Name: "Los Angeles Dodgers", League: "MLB", City: "Los Angeles",
		IdentityTags:     []string{"star_power", "cosmopolitan", "winning_tradition"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"star_power", "winning_tradition"},
		StatusEnum:       "continental_treble_holders", Watchability: 91,
		PrimaryTeam: "Lakers",
	},
	"Chicago Cubs": {
		Name: "Chicago Cubs", League: "MLB", City: "Chicago",
		IdentityTags:     []string{"historic", "underdog"},
		PlayingStyleTags: []string{"balanced"},
		Philosophy:       []string{"historic", "underdog"},
		StatusEnum:       "cursed_overachievers", Watchability: 68,
		PrimaryTeam: "Bulls",
	},
	"Atlanta Braves": {
		Name: "Atlanta Braves", League: "MLB", City: "Atlanta",
		IdentityTags:     []string{"winning_tradition", "young_team"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "elite_contender", Watchability: 79,
		PrimaryTeam: "Hawks",
	},
	"Seattle Mariners": {
		Name: "Seattle Mariners", League: "MLB", City: "Seattle",
		IdentityTags:     []string{"underdog", "blue_collar"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"underdog"},
		StatusEnum:       "cursed_overachievers", Watchability: 64,
	},
}

var defaultNHLTeams = map[string]models.SourceClub{
	"Toronto Maple Leafs": {
		Name: "Toronto Maple Leafs", League: "NHL", City: "Toronto",
		IdentityTags:     []string{"historic", "star_power"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"historic"},
		StatusEnum:       "cursed_overachievers", Watchability: 78,
		PrimaryTeam: "Raptors",
	},
	"Detroit Red Wings": {
		Name: "Detroit Red Wings", League: "NHL", City: "Detroit",
		IdentityTags:     []string{"historic", "winning_tradition", "blue_collar"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "fallen_giant_crisis", Watchability: 60,
		PrimaryTeam: "Pistons",
	},
	"Boston Bruins": {
		Name: "Boston Bruins", League: "NHL", City: "Boston",
		IdentityTags:     []string{"blue_collar", "historic"},
		PlayingStyleTags: []string{"defensive"},
		Philosophy:       []string{"blue_collar", "historic"},
		StatusEnum:       "dynasty_in_transition", Watchability: 70,
		PrimaryTeam: "Celtics",
	},
	"Vegas Golden Knights": {
		Name: "Vegas Golden Knights", League: "NHL", City: "Las Vegas",
		IdentityTags:     []string{"star_power"},
		PlayingStyleTags: []string{"fast_paced"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "elite_contender", Watchability: 80,
	},
	"Edmonton Oilers": {
		Name: "Edmonton Oilers", League: "NHL", City: "Edmonton",
		IdentityTags:     []string{"star_power"},
		PlayingStyleTags: []string{"star_dominance", "fast_paced"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "elite_contender", Watchability: 85,
	},
	"Colorado Avalanche": {
		Name: "Colorado Avalanche", League: "NHL", City: "Denver",
		IdentityTags:     []string{"winning_tradition"},
		PlayingStyleTags: []string{"fast_paced", "team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "elite_contender", Watchability: 81,
		PrimaryTeam: "Nuggets",
	},
}

var defaultF1Teams = map[string]models.SourceClub{
	"Ferrari": {
		Name: "Ferrari", League: "F1", City: "Maranello",
		IdentityTags:     []string{"historic", "star_power", "cosmopolitan"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"historic", "star_power"},
		StatusEnum:       "fallen_giant_crisis", Watchability: 82,
	},
	"McLaren": {
		Name: "McLaren", League: "F1", City: "Woking",
		IdentityTags:     []string{"technical", "young_team", "winning_tradition"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"technical", "young_team"},
		StatusEnum:       "elite_contender", Watchability: 86,
	},
	"Mercedes": {
		Name: "Mercedes", League: "F1", City: "Brackley",
		IdentityTags:     []string{"winning_tradition", "technical"},
		PlayingStyleTags: []string{"team_first"},
		Philosophy:       []string{"winning_tradition"},
		StatusEnum:       "dynasty_in_transition", Watchability: 75,
	},
	"Red Bull Racing": {
		Name: "Red Bull Racing", League: "F1", City: "Milton Keynes",
		IdentityTags:     []string{"star_power", "winning_tradition"},
		PlayingStyleTags: []string{"star_dominance"},
		Philosophy:       []string{"star_power"},
		StatusEnum:       "dynasty_in_transition", Watchability: 79,
	},
	"Williams": {
		Name: "Williams", League: "F1", City: "Grove",
		IdentityTags:     []string{"historic", "underdog"},
		PlayingStyleTags: []string{"balanced"},
		Philosophy:       []string{"historic", "underdog"},
		StatusEnum:       "crisis_rebuilding", Watchability: 58,
	},
}
