package verify

// The syllabus is the fixed, process-wide table of coaching principles per
// game. It is built once at init and never mutated; verifiers hold a
// reference to their game's slice. Principle order matters: the first
// invalid-pattern match across the list wins, so more specific topics come
// before broader ones.

var syllabus = map[Game][]Principle{
	GameMOBA: {
		{
			Category:      "positioning",
			Keywords:      []string{"position", "spacing", "frontline"},
			ValidPatterns: []string{"stay behind minions", "respect the enemy threat range"},
			InvalidPatterns: []string{
				"facecheck the bush",
				"dive the tower alone",
			},
			Corrections: []Correction{
				{Pattern: "facecheck", Replacement: "Use a ward instead of walking in blind"},
				{Pattern: "dive the tower", Replacement: "Only dive with minions tanking and backup nearby"},
			},
		},
		{
			Category:      "farming",
			Keywords:      []string{"farm", "wave", "last hit"},
			ValidPatterns: []string{"freeze the wave", "catch the side waves"},
			InvalidPatterns: []string{
				"skip the minions",
				"afk farm all game",
			},
			Corrections: []Correction{
				{Pattern: "afk farm", Replacement: "Farm between objectives, not instead of them"},
			},
		},
		{
			Category:      "vision",
			Keywords:      []string{"ward", "vision", "sweep"},
			ValidPatterns: []string{"ward the river", "sweep enemy wards"},
			InvalidPatterns: []string{
				"engage without vision",
				"wards are a waste",
			},
			Corrections: []Correction{
				{Pattern: "engage without vision", Replacement: "Ward before engaging"},
				{Pattern: "wards are a waste of gold", Replacement: "Wards win fights before they start"},
			},
		},
		{
			Category:      "itemization",
			Keywords:      []string{"item", "build", "buy"},
			ValidPatterns: []string{"build armor against heavy ad", "adapt your build"},
			InvalidPatterns: []string{
				"same items every game",
				"sell your boots",
			},
			Corrections: []Correction{
				{Pattern: "same items", Replacement: "Adapt your build order to the lobby"},
			},
		},
	},

	GameFPS: {
		{
			Category:      "aim",
			Keywords:      []string{"crosshair", "aim", "flick"},
			ValidPatterns: []string{"crosshair at head level", "pre-aim common angles"},
			InvalidPatterns: []string{
				"spray from across the map",
			},
			Corrections: []Correction{
				{Pattern: "spray", Replacement: "Burst or tap at range, spray only up close"},
			},
		},
		{
			Category:      "positioning",
			Keywords:      []string{"angle", "cover", "peek"},
			ValidPatterns: []string{"peek with purpose", "play close to cover"},
			InvalidPatterns: []string{
				"push through the smoke blind",
				"wide swing every angle",
			},
			Corrections: []Correction{
				{Pattern: "push through the smoke", Replacement: "Wait the smoke out or clear it with utility"},
			},
		},
		{
			Category:      "utility",
			Keywords:      []string{"flash", "smoke", "grenade"},
			ValidPatterns: []string{"flash before you entry", "smoke the crossing"},
			InvalidPatterns: []string{
				"save your util until",
			},
			Corrections: []Correction{
				{Pattern: "save your util", Replacement: "Spend utility to take space while it matters"},
			},
		},
		{
			Category:      "economy",
			Keywords:      []string{"buy", "eco", "save"},
			ValidPatterns: []string{"full save this round", "match buys with your team"},
			InvalidPatterns: []string{
				"force buy every round",
			},
			Corrections: []Correction{
				{Pattern: "force buy", Replacement: "Sync your buy rounds with the team economy"},
			},
		},
	},

	GameStrategy: {
		{
			Category:      "economy",
			Keywords:      []string{"worker", "income", "mine"},
			ValidPatterns: []string{"keep worker production constant", "expand before you float"},
			InvalidPatterns: []string{
				"stop making workers",
			},
			Corrections: []Correction{
				{Pattern: "stop making workers", Replacement: "Keep worker production running unless you are all-in"},
			},
		},
		{
			Category:      "scouting",
			Keywords:      []string{"scout", "information", "watchtower"},
			ValidPatterns: []string{"scout the enemy base", "keep a unit on the watchtower"},
			InvalidPatterns: []string{
				"no need to scout",
			},
			Corrections: []Correction{
				{Pattern: "scout", Replacement: "Scout on a timer so you are never surprised"},
			},
		},
		{
			Category:      "macro",
			Keywords:      []string{"expand", "supply", "upgrade"},
			ValidPatterns: []string{"expand when you are ahead", "stay ahead on upgrades"},
			InvalidPatterns: []string{
				"skip upgrades",
			},
			Corrections: []Correction{
				{Pattern: "skip upgrades", Replacement: "Keep upgrades ticking alongside unit production"},
			},
		},
	},
}

// genericAdvice is the canned fallback sentence per known category, used
// when an invalid pattern is detected but no correction entry matches.
var genericAdvice = map[string]string{
	"positioning": "Hold safer positions until your team can follow up",
	"farming":     "Keep your resource income steady between fights",
	"itemization": "Adapt your purchases to what the enemy is building",
	"vision":      "Keep the key areas of the map scouted",
	"aim":         "Slow down and place your shots deliberately",
	"utility":     "Use your utility to set up fights, not to escape them",
	"economy":     "Spend with your team, not on impulse",
	"macro":       "Play for map control before forcing fights",
}

// fallbackAdvice covers categories missing from genericAdvice.
const fallbackAdvice = "Focus on fundamentals"

// Syllabus returns the principle list for a game. Unknown games get an
// empty list, which routes every piece of advice through the generic
// heuristic.
func Syllabus(game Game) []Principle {
	return syllabus[game]
}
