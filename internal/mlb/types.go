package mlb

// Wire types for the statsapi.mlb.com v1 endpoints. Only the fields this bot
// renders are declared; everything else in the payloads is ignored.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk    int64          `json:"gamePk"`
	GameDate  string         `json:"gameDate"`
	Status    gameStatus     `json:"status"`
	Teams     scheduleTeams  `json:"teams"`
	Linescore *gameLinescore `json:"linescore,omitempty"`
}

type gameStatus struct {
	DetailedState string `json:"detailedState"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Score *int    `json:"score,omitempty"`
	Team  teamRef `json:"team"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type gameLinescore struct {
	Teams linescoreTeams `json:"teams"`
}

type linescoreTeams struct {
	Away linescoreSide `json:"away"`
	Home linescoreSide `json:"home"`
}

type linescoreSide struct {
	Runs *int `json:"runs,omitempty"`
}

type standingsResponse struct {
	Records []divisionRecord `json:"records"`
}

type divisionRecord struct {
	Division    divisionRef      `json:"division"`
	TeamRecords []teamRecordWire `json:"teamRecords"`
}

type divisionRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type teamRecordWire struct {
	Team              teamRef     `json:"team"`
	Wins              *int        `json:"wins,omitempty"`
	Losses            *int        `json:"losses,omitempty"`
	WinningPercentage string      `json:"winningPercentage"`
	GamesBack         string      `json:"gamesBack"`
	WildCardGamesBack string      `json:"wildCardGamesBack"`
	Streak            *streakWire `json:"streak,omitempty"`
	DivisionRank      string      `json:"divisionRank"`
	LeagueRank        string      `json:"leagueRank"`
	RunDifferential   *int        `json:"runDifferential,omitempty"`
	Records           recordsWire `json:"records"`
}

type streakWire struct {
	StreakCode string `json:"streakCode"`
}

type recordsWire struct {
	SplitRecords []splitRecordWire `json:"splitRecords"`
}

type splitRecordWire struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Type   string `json:"type"`
}

type rosterResponse struct {
	Roster []rosterEntryWire `json:"roster"`
}

type rosterEntryWire struct {
	Person       personRef    `json:"person"`
	JerseyNumber string       `json:"jerseyNumber"`
	Position     positionWire `json:"position"`
}

type personRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type positionWire struct {
	Abbreviation string `json:"abbreviation"`
	Type         string `json:"type"`
}

type peopleResponse struct {
	People []personWire `json:"people"`
}

type personWire struct {
	ID            int64        `json:"id"`
	FullName      string       `json:"fullName"`
	PrimaryNumber string       `json:"primaryNumber"`
	Position      positionFull `json:"primaryPosition"`
	BatSide       codedDesc    `json:"batSide"`
	PitchHand     codedDesc    `json:"pitchHand"`
	CurrentTeam   teamRef      `json:"currentTeam"`
}

type positionFull struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type codedDesc struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
