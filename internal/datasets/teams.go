// internal/datasets/teams.go
package datasets

import "hoopmatch/internal/models"

// teamOrder fixes the canonical iteration order for every scoring pass.
// Rankers walk this slice, never the map, so results are reproducible.
var teamOrder = []string{
	"Atlanta Hawks",
	"Boston Celtics",
	"Brooklyn Nets",
	"Charlotte Hornets",
	"Chicago Bulls",
	"Cleveland Cavaliers",
	"Dallas Mavericks",
	"Denver Nuggets",
	"Detroit Pistons",
	"Golden State Warriors",
	"Houston Rockets",
	"Indiana Pacers",
	"Los Angeles Clippers",
	"Los Angeles Lakers",
	"Memphis Grizzlies",
	"Miami Heat",
	"Milwaukee Bucks",
	"Minnesota Timberwolves",
	"New Orleans Pelicans",
	"New York Knicks",
	"Oklahoma City Thunder",
	"Orlando Magic",
	"Philadelphia 76ers",
	"Phoenix Suns",
	"Portland Trail Blazers",
	"Sacramento Kings",
	"San Antonio Spurs",
	"Toronto Raptors",
	"Utah Jazz",
	"Washington Wizards",
}

var defaultTeams = map[string]models.Team{
	"Atlanta Hawks": {
		Name: "Atlanta Hawks", Conference: "East", Division: "Southeast", City: "Atlanta", Timezone: "ET",
		Status: "Rising playoff team", StatusEnum: "competing",
		Style:         "Up-tempo offense built around elite shot creation",
		PlayingStyles: []string{"fast_paced", "playmaking"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A young core learning to win behind one of the league's best passers.",
		Headline:      "League-leading pace and highlight passing",
		Stars:         []string{"Trae Young", "Jalen Johnson"},
		Watchability:  78, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Boston Celtics": {
		Name: "Boston Celtics", Conference: "East", Division: "Atlantic", City: "Boston", Timezone: "ET",
		Status: "Contender, win-now core", StatusEnum: "contender",
		Style:         "Five-out spacing, relentless 3-point volume, switchable defense",
		PlayingStyles: []string{"three_point", "team_first"},
		Philosophy:    []string{"winning_tradition", "historic"},
		Narrative:     "Historic franchise with champion pedigree and 18 banners.",
		Headline:      "Deepest two-way roster in the East",
		Stars:         []string{"Jayson Tatum", "Jaylen Brown"},
		Watchability:  88, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "High", Dysfunction: "Low", Injuries: "Medium",
	},
	"Brooklyn Nets": {
		Name: "Brooklyn Nets", Conference: "East", Division: "Atlantic", City: "Brooklyn", Timezone: "ET",
		Status: "Rebuilding, lottery bound", StatusEnum: "rebuilding",
		Style:         "Developmental minutes and experimentation",
		PlayingStyles: []string{"balanced"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A full rebuild with draft capital stockpiled for the future.",
		Headline:      "Blank-slate rebuild in the biggest market",
		Stars:         []string{"Cam Thomas"},
		Watchability:  55, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"Charlotte Hornets": {
		Name: "Charlotte Hornets", Conference: "East", Division: "Southeast", City: "Charlotte", Timezone: "ET",
		Status: "Rebuilding around young guards", StatusEnum: "rebuilding",
		Style:         "Open-floor creativity when healthy",
		PlayingStyles: []string{"fast_paced"},
		Philosophy:    []string{"young_team", "underdog"},
		Narrative:     "Small-market rebuild waiting on its young backcourt to stay on the floor.",
		Headline:      "LaMelo's show, when available",
		Stars:         []string{"LaMelo Ball", "Brandon Miller"},
		Watchability:  58, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "High",
	},
	"Chicago Bulls": {
		Name: "Chicago Bulls", Conference: "East", Division: "Central", City: "Chicago", Timezone: "CT",
		Status: "Retooling without a clear direction", StatusEnum: "retooling",
		Style:         "Middling pace, guard-driven offense",
		PlayingStyles: []string{"balanced"},
		Philosophy:    []string{"historic"},
		Narrative:     "Historic Jordan-era legacy carrying a franchise stuck in the middle.",
		Headline:      "Six banners, searching for the next era",
		Stars:         []string{"Coby White", "Josh Giddey"},
		Watchability:  60, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Medium", Injuries: "Low",
	},
	"Cleveland Cavaliers": {
		Name: "Cleveland Cavaliers", Conference: "East", Division: "Central", City: "Cleveland", Timezone: "ET",
		Status: "Competing at the top of the East", StatusEnum: "competing",
		Style:         "Elite rim protection with a dynamic guard duo",
		PlayingStyles: []string{"defensive", "three_point"},
		Philosophy:    []string{"blue_collar", "underdog"},
		Narrative:     "Blue-collar city, loyal fanbase, built through the draft.",
		Headline:      "Top-seed defense with backcourt firepower",
		Stars:         []string{"Donovan Mitchell", "Evan Mobley", "Darius Garland"},
		Watchability:  82, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Dallas Mavericks": {
		Name: "Dallas Mavericks", Conference: "West", Division: "Southwest", City: "Dallas", Timezone: "CT",
		Status: "Star-led contender", StatusEnum: "contender",
		Style:         "Heliocentric offense around elite shot-making",
		PlayingStyles: []string{"star_dominance", "three_point"},
		Philosophy:    []string{"star_power"},
		Narrative:     "An international superstar running one of the most watchable offenses alive.",
		Headline:      "Luka magic every single night",
		Stars:         []string{"Luka Dončić", "Kyrie Irving"},
		Watchability:  87, ViewingTimes: "8:30 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Low", Injuries: "Medium",
	},
	"Denver Nuggets": {
		Name: "Denver Nuggets", Conference: "West", Division: "Northwest", City: "Denver", Timezone: "MT",
		Status: "Contender built on continuity", StatusEnum: "contender",
		Style:         "Read-and-react offense through the best passing big ever",
		PlayingStyles: []string{"big_man_focused", "team_first", "playmaking"},
		Philosophy:    []string{"technical", "possession"},
		Narrative:     "Champion core intact, beautiful basketball orchestrated from the post.",
		Headline:      "Jokić runs the most elegant offense in the sport",
		Stars:         []string{"Nikola Jokić", "Jamal Murray"},
		Watchability:  89, ViewingTimes: "9:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"Detroit Pistons": {
		Name: "Detroit Pistons", Conference: "East", Division: "Central", City: "Detroit", Timezone: "ET",
		Status: "Young team on the rise", StatusEnum: "rising",
		Style:         "Physical defense and downhill rim pressure",
		PlayingStyles: []string{"defensive", "fast_paced"},
		Philosophy:    []string{"blue_collar", "young_team"},
		Narrative:     "Bad Boys lineage, a young roster rebuilding its identity around toughness.",
		Headline:      "Cade's breakout has Detroit relevant again",
		Stars:         []string{"Cade Cunningham", "Jalen Duren"},
		Watchability:  74, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"Golden State Warriors": {
		Name: "Golden State Warriors", Conference: "West", Division: "Pacific", City: "San Francisco", Timezone: "PT",
		Status: "Aging dynasty still competing", StatusEnum: "competing",
		Style:         "Motion offense, relentless off-ball movement and shooting",
		PlayingStyles: []string{"three_point", "team_first"},
		Philosophy:    []string{"winning_tradition", "star_power"},
		Narrative:     "The dynasty that changed basketball, champion DNA in its final act.",
		Headline:      "Curry's gravity still bends every defense",
		Stars:         []string{"Stephen Curry", "Jimmy Butler", "Draymond Green"},
		Watchability:  84, ViewingTimes: "10:00 PM ET most nights",
		Bandwagon: "Very High", Dysfunction: "Low", Injuries: "Medium",
	},
	"Houston Rockets": {
		Name: "Houston Rockets", Conference: "West", Division: "Southwest", City: "Houston", Timezone: "CT",
		Status: "Young and rising fast", StatusEnum: "rising",
		Style:         "Swarming defense, offensive rebounding, raw athleticism",
		PlayingStyles: []string{"defensive", "fast_paced"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A young roster that jumped the rebuild queue with defense and physicality.",
		Headline:      "The West's most athletic young core",
		Stars:         []string{"Alperen Şengün", "Amen Thompson"},
		Watchability:  77, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"Indiana Pacers": {
		Name: "Indiana Pacers", Conference: "East", Division: "Central", City: "Indianapolis", Timezone: "ET",
		Status: "Competing with the fastest offense", StatusEnum: "competing",
		Style:         "Fastest pace in the league, constant ball movement",
		PlayingStyles: []string{"fast_paced", "team_first"},
		Philosophy:    []string{"underdog", "blue_collar"},
		Narrative:     "Small-market underdog that runs every opponent off the floor.",
		Headline:      "Basketball at warp speed",
		Stars:         []string{"Tyrese Haliburton", "Pascal Siakam"},
		Watchability:  84, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Los Angeles Clippers": {
		Name: "Los Angeles Clippers", Conference: "West", Division: "Pacific", City: "Los Angeles", Timezone: "PT",
		Status: "Veteran playoff team", StatusEnum: "competing",
		Style:         "Switch-heavy defense, methodical halfcourt offense",
		PlayingStyles: []string{"defensive", "balanced"},
		Philosophy:    []string{"star_power"},
		Narrative:     "Star veterans chasing the franchise's first title in a brand-new arena.",
		Headline:      "Health is the only question",
		Stars:         []string{"Kawhi Leonard", "James Harden"},
		Watchability:  70, ViewingTimes: "10:30 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Medium", Injuries: "High",
	},
	"Los Angeles Lakers": {
		Name: "Los Angeles Lakers", Conference: "West", Division: "Pacific", City: "Los Angeles", Timezone: "PT",
		Status: "Star-led playoff team", StatusEnum: "competing",
		Style:         "Superstar shot creation with size at every position",
		PlayingStyles: []string{"star_dominance", "clutch"},
		Philosophy:    []string{"historic", "star_power", "cosmopolitan"},
		Narrative:     "Hollywood's historic glamour franchise, 17 championships of legacy.",
		Headline:      "LeBron's final chapters under the brightest lights",
		Stars:         []string{"LeBron James", "Anthony Davis", "Austin Reaves"},
		Watchability:  85, ViewingTimes: "10:30 PM ET most nights",
		Bandwagon: "Very High", Dysfunction: "Medium", Injuries: "Medium",
	},
	"Memphis Grizzlies": {
		Name: "Memphis Grizzlies", Conference: "West", Division: "Southwest", City: "Memphis", Timezone: "CT",
		Status: "Gritty underdog core", StatusEnum: "underdog",
		Style:         "Grit-and-grind reborn with athletic rim attacks",
		PlayingStyles: []string{"defensive", "fast_paced"},
		Philosophy:    []string{"blue_collar", "underdog"},
		Narrative:     "Small-market underdog identity, loyal fanbase, all heart.",
		Headline:      "Ja Morant turns gravity into offense",
		Stars:         []string{"Ja Morant", "Jaren Jackson Jr."},
		Watchability:  79, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Medium", Injuries: "High",
	},
	"Miami Heat": {
		Name: "Miami Heat", Conference: "East", Division: "Southeast", City: "Miami", Timezone: "ET",
		Status: "Perennially competitive culture", StatusEnum: "competing",
		Style:         "Zone looks, physicality, and late-game execution",
		PlayingStyles: []string{"defensive", "clutch"},
		Philosophy:    []string{"blue_collar", "winning_tradition"},
		Narrative:     "Heat Culture: undrafted grinders and champion standards.",
		Headline:      "Culture beats talent in Miami",
		Stars:         []string{"Bam Adebayo", "Tyler Herro"},
		Watchability:  76, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Low", Injuries: "Medium",
	},
	"Milwaukee Bucks": {
		Name: "Milwaukee Bucks", Conference: "East", Division: "Central", City: "Milwaukee", Timezone: "CT",
		Status: "Win-now contender", StatusEnum: "contender",
		Style:         "Giannis downhill force plus elite pull-up shooting",
		PlayingStyles: []string{"star_dominance", "big_man_focused"},
		Philosophy:    []string{"star_power"},
		Narrative:     "A two-time MVP carrying champion expectations in a small market.",
		Headline:      "Giannis remains an unstoppable force",
		Stars:         []string{"Giannis Antetokounmpo", "Damian Lillard"},
		Watchability:  85, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Low", Injuries: "Medium",
	},
	"Minnesota Timberwolves": {
		Name: "Minnesota Timberwolves", Conference: "West", Division: "Northwest", City: "Minneapolis", Timezone: "CT",
		Status: "Competing behind elite defense", StatusEnum: "competing",
		Style:         "Twin-tower rim protection with a rising alpha scorer",
		PlayingStyles: []string{"defensive", "star_dominance"},
		Philosophy:    []string{"blue_collar"},
		Narrative:     "A franchise finally contending behind the league's next superstar face.",
		Headline:      "Ant-Man has arrived",
		Stars:         []string{"Anthony Edwards", "Rudy Gobert"},
		Watchability:  81, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"New Orleans Pelicans": {
		Name: "New Orleans Pelicans", Conference: "West", Division: "Southwest", City: "New Orleans", Timezone: "CT",
		Status: "Talented but volatile", StatusEnum: "uncertain",
		Style:         "Transition forays around Zion's downhill power",
		PlayingStyles: []string{"fast_paced", "balanced"},
		Philosophy:    []string{"underdog"},
		Narrative:     "Immense talent, small market, forever one healthy season away.",
		Headline:      "When Zion plays, nobody can stop him",
		Stars:         []string{"Zion Williamson", "Trey Murphy III"},
		Watchability:  68, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Medium", Injuries: "Very High",
	},
	"New York Knicks": {
		Name: "New York Knicks", Conference: "East", Division: "Atlantic", City: "New York", Timezone: "ET",
		Status: "Contender in the biggest market", StatusEnum: "contender",
		Style:         "Physical halfcourt grind, clutch guard play",
		PlayingStyles: []string{"defensive", "clutch"},
		Philosophy:    []string{"historic", "blue_collar"},
		Narrative:     "Historic Madison Square Garden franchise, blue-collar identity restored.",
		Headline:      "The Garden is loud again",
		Stars:         []string{"Jalen Brunson", "Karl-Anthony Towns"},
		Watchability:  86, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "High", Dysfunction: "Low", Injuries: "Medium",
	},
	"Oklahoma City Thunder": {
		Name: "Oklahoma City Thunder", Conference: "West", Division: "Northwest", City: "Oklahoma City", Timezone: "CT",
		Status: "Defending champions", StatusEnum: "defending_champion",
		Style:         "Turnover-forcing defense fueling young-legs transition",
		PlayingStyles: []string{"fast_paced", "defensive", "team_first"},
		Philosophy:    []string{"young_team", "winning_tradition"},
		Narrative:     "The youngest champion core in decades, built patiently through the draft.",
		Headline:      "SGA leads the league's model franchise",
		Stars:         []string{"Shai Gilgeous-Alexander", "Chet Holmgren", "Jalen Williams"},
		Watchability:  92, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Low", Injuries: "Low",
	},
	"Orlando Magic": {
		Name: "Orlando Magic", Conference: "East", Division: "Southeast", City: "Orlando", Timezone: "ET",
		Status: "Young defensive riser", StatusEnum: "rising",
		Style:         "Long, switchable defense with jumbo creators",
		PlayingStyles: []string{"defensive"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A young, oversized roster growing into a contender together.",
		Headline:      "Banchero and Wagner are just getting started",
		Stars:         []string{"Paolo Banchero", "Franz Wagner"},
		Watchability:  75, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Philadelphia 76ers": {
		Name: "Philadelphia 76ers", Conference: "East", Division: "Atlantic", City: "Philadelphia", Timezone: "ET",
		Status: "Uncertain, star-led", StatusEnum: "uncertain",
		Style:         "MVP-level post hub surrounded by shooting",
		PlayingStyles: []string{"star_dominance", "big_man_focused"},
		Philosophy:    []string{"star_power"},
		Narrative:     "The Process produced stars; health keeps deferring the payoff.",
		Headline:      "Embiid and Maxey, if the bodies hold",
		Stars:         []string{"Joel Embiid", "Tyrese Maxey"},
		Watchability:  72, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Medium", Injuries: "Very High",
	},
	"Phoenix Suns": {
		Name: "Phoenix Suns", Conference: "West", Division: "Pacific", City: "Phoenix", Timezone: "MT",
		Status: "Retooling around Booker", StatusEnum: "retooling",
		Style:         "Midrange artistry and three-level scoring",
		PlayingStyles: []string{"three_point", "star_dominance"},
		Philosophy:    []string{"star_power"},
		Narrative:     "Reset around a loyal franchise star after an all-in era fizzled.",
		Headline:      "Booker keeps the Valley believing",
		Stars:         []string{"Devin Booker"},
		Watchability:  71, ViewingTimes: "9:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Medium", Injuries: "Medium",
	},
	"Portland Trail Blazers": {
		Name: "Portland Trail Blazers", Conference: "West", Division: "Northwest", City: "Portland", Timezone: "PT",
		Status: "Rebuilding with a defensive identity", StatusEnum: "rebuilding",
		Style:         "Young guards learning behind hustle and rim protection",
		PlayingStyles: []string{"defensive"},
		Philosophy:    []string{"young_team", "blue_collar"},
		Narrative:     "Loyal small-market fanbase riding out a patient rebuild.",
		Headline:      "Rip City bets on youth",
		Stars:         []string{"Scoot Henderson", "Deni Avdija"},
		Watchability:  61, ViewingTimes: "10:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Sacramento Kings": {
		Name: "Sacramento Kings", Conference: "West", Division: "Pacific", City: "Sacramento", Timezone: "PT",
		Status: "Retooling, loyal fanbase", StatusEnum: "retooling",
		Style:         "Fast pace and hub passing from the elbow",
		PlayingStyles: []string{"fast_paced"},
		Philosophy:    []string{"underdog", "blue_collar"},
		Narrative:     "Small-market underdog with the most loyal, long-suffering fanbase around.",
		Headline:      "Light the beam",
		Stars:         []string{"Domantas Sabonis", "Zach LaVine"},
		Watchability:  69, ViewingTimes: "10:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Medium", Injuries: "Low",
	},
	"San Antonio Spurs": {
		Name: "San Antonio Spurs", Conference: "West", Division: "Southwest", City: "San Antonio", Timezone: "CT",
		Status: "Young team rising behind Wembanyama", StatusEnum: "rising",
		Style:         "Generational unicorn anchoring structured team basketball",
		PlayingStyles: []string{"big_man_focused", "team_first"},
		Philosophy:    []string{"young_team", "technical"},
		Narrative:     "The league's model organization developing a young once-a-generation talent.",
		Headline:      "Wemby changes what's possible",
		Stars:         []string{"Victor Wembanyama", "De'Aaron Fox", "Stephon Castle"},
		Watchability:  86, ViewingTimes: "8:00 PM ET most nights",
		Bandwagon: "Medium", Dysfunction: "Low", Injuries: "Medium",
	},
	"Toronto Raptors": {
		Name: "Toronto Raptors", Conference: "East", Division: "Atlantic", City: "Toronto", Timezone: "ET",
		Status: "Retooling around versatile forwards", StatusEnum: "retooling",
		Style:         "Positionless length and transition offense",
		PlayingStyles: []string{"team_first"},
		Philosophy:    []string{"young_team"},
		Narrative:     "Canada's team retooling around young, versatile wings.",
		Headline:      "Barnes leads the next Raptors era",
		Stars:         []string{"Scottie Barnes", "RJ Barrett"},
		Watchability:  62, ViewingTimes: "7:30 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
	"Utah Jazz": {
		Name: "Utah Jazz", Conference: "West", Division: "Northwest", City: "Salt Lake City", Timezone: "MT",
		Status: "Rebuilding, lottery focused", StatusEnum: "rebuilding",
		Style:         "Shooting-first youth development",
		PlayingStyles: []string{"three_point"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A patient rebuild accumulating picks and young shooters.",
		Headline:      "Markkanen headlines the rebuild",
		Stars:         []string{"Lauri Markkanen", "Keyonte George"},
		Watchability:  54, ViewingTimes: "9:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Low",
	},
	"Washington Wizards": {
		Name: "Washington Wizards", Conference: "East", Division: "Southeast", City: "Washington", Timezone: "ET",
		Status: "Bottom of the standings, lottery focused", StatusEnum: "rebuilding",
		Style:         "Run-and-experiment youth minutes",
		PlayingStyles: []string{"fast_paced"},
		Philosophy:    []string{"young_team"},
		Narrative:     "A ground-floor rebuild playing the long game.",
		Headline:      "Watch the kids grow",
		Stars:         []string{"Alex Sarr", "Bilal Coulibaly"},
		Watchability:  50, ViewingTimes: "7:00 PM ET most nights",
		Bandwagon: "Low", Dysfunction: "Low", Injuries: "Medium",
	},
}
