package mlb

import (
	"fmt"
	"sort"
)

// SportID is the MLB sport identifier in the stats API.
const SportID = 1

// League identifiers used by the standings endpoint.
const (
	AmericanLeagueID = 103
	NationalLeagueID = 104
)

var teamAbbreviations = map[string]string{
	"Arizona Diamondbacks":  "ARI",
	"Atlanta Braves":        "ATL",
	"Athletics":             "ATH",
	"Baltimore Orioles":     "BAL",
	"Boston Red Sox":        "BOS",
	"Chicago Cubs":          "CHC",
	"Chicago White Sox":     "CWS",
	"Cincinnati Reds":       "CIN",
	"Cleveland Guardians":   "CLE",
	"Colorado Rockies":      "COL",
	"Detroit Tigers":        "DET",
	"Houston Astros":        "HOU",
	"Kansas City Royals":    "KC",
	"Los Angeles Angels":    "LAA",
	"Los Angeles Dodgers":   "LAD",
	"Miami Marlins":         "MIA",
	"Milwaukee Brewers":     "MIL",
	"Minnesota Twins":       "MIN",
	"New York Mets":         "NYM",
	"New York Yankees":      "NYY",
	"Philadelphia Phillies": "PHI",
	"Pittsburgh Pirates":    "PIT",
	"San Diego Padres":      "SD",
	"San Francisco Giants":  "SF",
	"Seattle Mariners":      "SEA",
	"St. Louis Cardinals":   "STL",
	"Tampa Bay Rays":        "TB",
	"Texas Rangers":         "TEX",
	"Toronto Blue Jays":     "TOR",
	"Washington Nationals":  "WSH",
}

var teamIDs = map[string]int64{
	"Arizona Diamondbacks":  109,
	"Atlanta Braves":        144,
	"Athletics":             133,
	"Baltimore Orioles":     110,
	"Boston Red Sox":        111,
	"Chicago Cubs":          112,
	"Chicago White Sox":     145,
	"Cincinnati Reds":       113,
	"Cleveland Guardians":   114,
	"Colorado Rockies":      115,
	"Detroit Tigers":        116,
	"Houston Astros":        117,
	"Kansas City Royals":    118,
	"Los Angeles Angels":    108,
	"Los Angeles Dodgers":   119,
	"Miami Marlins":         146,
	"Milwaukee Brewers":     158,
	"Minnesota Twins":       142,
	"New York Mets":         121,
	"New York Yankees":      147,
	"Philadelphia Phillies": 143,
	"Pittsburgh Pirates":    134,
	"San Diego Padres":      135,
	"San Francisco Giants":  137,
	"Seattle Mariners":      136,
	"St. Louis Cardinals":   138,
	"Tampa Bay Rays":        139,
	"Texas Rangers":         140,
	"Toronto Blue Jays":     141,
	"Washington Nationals":  120,
}

// The standings endpoint returns divisions by id only unless the caller asks
// for hydration, so the names are kept locally.
var divisionNames = map[int64]string{
	200: "American League West",
	201: "American League East",
	202: "American League Central",
	203: "National League West",
	204: "National League East",
	205: "National League Central",
}

// Abbreviation maps a full team name to its three-letter code. Unmapped
// names pass through unchanged, which also makes the lookup idempotent.
func Abbreviation(teamName string) string {
	if abbr, ok := teamAbbreviations[teamName]; ok {
		return abbr
	}
	return teamName
}

// TeamName resolves a team id to its full name, falling back to "Team <id>".
func TeamName(teamID int64) string {
	for name, id := range teamIDs {
		if id == teamID {
			return name
		}
	}
	return fmt.Sprintf("Team %d", teamID)
}

// DivisionName resolves a division id, falling back to "Division <id>".
func DivisionName(divisionID int64) string {
	if name, ok := divisionNames[divisionID]; ok {
		return name
	}
	return fmt.Sprintf("Division %d", divisionID)
}

// TeamNames returns the reference team names in alphabetical order together
// with their ids, for building the team picker keyboards.
func TeamNames() []TeamRef {
	refs := make([]TeamRef, 0, len(teamIDs))
	for name, id := range teamIDs {
		refs = append(refs, TeamRef{Name: name, ID: id})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs
}

// TeamRef is one entry of the static team table.
type TeamRef struct {
	Name string
	ID   int64
}
