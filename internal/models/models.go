package models

import (
	"errors"
	"time"
)

// ErrUpstream indicates the stats API rejected a request (transport failure
// or non-2xx). An empty result is never an error.
var ErrUpstream = errors.New("stats api failure")

type GameStatus string

const (
	GameStatusScheduled  GameStatus = "Scheduled"
	GameStatusPreGame    GameStatus = "Pre-Game"
	GameStatusInProgress GameStatus = "In Progress"
	GameStatusFinal      GameStatus = "Final"
	GameStatusGameOver   GameStatus = "Game Over"
)

// Game is one scheduled or played game on a date. Instances live only for
// the duration of a single interaction.
type Game struct {
	HomeTeamName string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
	Status       GameStatus
	StartTime    time.Time
}

// Live reports whether the game line carries scores.
func (g Game) Live() bool {
	switch g.Status {
	case GameStatusFinal, GameStatusInProgress, GameStatusGameOver:
		return true
	default:
		return false
	}
}

// StandingsRecord holds one division's table.
type StandingsRecord struct {
	DivisionName string
	TeamRecords  []TeamRecord
}

// SplitRecord is a win-loss record restricted to a condition ("home",
// "away", "lastTen").
type SplitRecord struct {
	Type   string
	Wins   int
	Losses int
}

// TeamRecord is one team's row in the standings. Textual fields keep the
// upstream's form ("-", "2.5", ".613"); an empty string means the upstream
// omitted the field.
type TeamRecord struct {
	TeamID            int64
	TeamName          string
	Wins              *int
	Losses            *int
	WinningPercentage string
	GamesBack         string
	WildCardGamesBack string
	StreakCode        string
	DivisionRank      string
	LeagueRank        string
	RunDifferential   *int
	SplitRecords      []SplitRecord
}

// Split searches the nested split records for the given type.
func (r TeamRecord) Split(splitType string) (SplitRecord, bool) {
	for _, s := range r.SplitRecords {
		if s.Type == splitType {
			return s, true
		}
	}
	return SplitRecord{}, false
}

// TeamDetails is one team's standings row together with the league and
// division it was found under.
type TeamDetails struct {
	Record       TeamRecord
	LeagueName   string
	DivisionName string
}

// RosterEntry is one player's row on a team's active roster.
type RosterEntry struct {
	JerseyNumber         string
	PlayerFullName       string
	PositionAbbreviation string
	PositionType         string
}

// Player is a person record returned by the people search.
type Player struct {
	ID              int64
	FullName        string
	PrimaryNumber   string
	PositionName    string
	BatSide         string
	PitchHand       string
	CurrentTeamName string
}
