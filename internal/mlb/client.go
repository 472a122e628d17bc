package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

const defaultBaseURL = "https://statsapi.mlb.com/api/v1"

// StatsAPI is the boundary to the MLB stats service. Every result may be
// empty; an empty result is never an error.
type StatsAPI interface {
	GetSchedule(ctx context.Context, date time.Time) (string, []models.Game, error)
	GetStandings(ctx context.Context, leagueID int, date *time.Time) ([]models.StandingsRecord, error)
	FindTeamRecord(ctx context.Context, teamID int64) (*models.TeamDetails, error)
	GetTeamRoster(ctx context.Context, teamID int64) ([]models.RosterEntry, error)
	SearchPeople(ctx context.Context, name string) ([]models.Player, error)
}

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client is the HTTP implementation of StatsAPI.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// GetSchedule returns the games for a calendar date along with the date
// string the upstream reports for them.
func (c *Client) GetSchedule(ctx context.Context, date time.Time) (string, []models.Game, error) {
	dateStr := date.Format("2006-01-02")
	var payload scheduleResponse
	query := fmt.Sprintf("sportId=%d&date=%s", SportID, dateStr)
	if err := c.getJSON(ctx, "/schedule?"+query, &payload); err != nil {
		return "", nil, err
	}
	if len(payload.Dates) == 0 {
		return dateStr, nil, nil
	}
	day := payload.Dates[0]
	games := make([]models.Game, 0, len(day.Games))
	for _, g := range day.Games {
		game, err := mapGame(g)
		if err != nil {
			return "", nil, err
		}
		games = append(games, game)
	}
	return day.Date, games, nil
}

// GetStandings returns the division records for one league, optionally as of
// a date.
func (c *Client) GetStandings(ctx context.Context, leagueID int, date *time.Time) ([]models.StandingsRecord, error) {
	query := "leagueId=" + strconv.Itoa(leagueID)
	if date != nil {
		query += "&date=" + date.Format("2006-01-02")
	}
	var payload standingsResponse
	if err := c.getJSON(ctx, "/standings?"+query, &payload); err != nil {
		return nil, err
	}
	records := make([]models.StandingsRecord, 0, len(payload.Records))
	for _, rec := range payload.Records {
		records = append(records, mapStandingsRecord(rec))
	}
	return records, nil
}

// FindTeamRecord fetches both leagues concurrently and scans their division
// records for the team. A missing team yields (nil, nil).
func (c *Client) FindTeamRecord(ctx context.Context, teamID int64) (*models.TeamDetails, error) {
	var al, nl []models.StandingsRecord
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		al, err = c.GetStandings(gctx, AmericanLeagueID, nil)
		return err
	})
	group.Go(func() error {
		var err error
		nl, err = c.GetStandings(gctx, NationalLeagueID, nil)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if details := findInLeague(al, "American League", teamID); details != nil {
		return details, nil
	}
	return findInLeague(nl, "National League", teamID), nil
}

func findInLeague(records []models.StandingsRecord, leagueName string, teamID int64) *models.TeamDetails {
	for _, division := range records {
		for _, record := range division.TeamRecords {
			if record.TeamID == teamID {
				return &models.TeamDetails{
					Record:       record,
					LeagueName:   leagueName,
					DivisionName: division.DivisionName,
				}
			}
		}
	}
	return nil
}

// GetTeamRoster returns the team's active roster.
func (c *Client) GetTeamRoster(ctx context.Context, teamID int64) ([]models.RosterEntry, error) {
	var payload rosterResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/teams/%d/roster", teamID), &payload); err != nil {
		return nil, err
	}
	entries := make([]models.RosterEntry, 0, len(payload.Roster))
	for _, e := range payload.Roster {
		entries = append(entries, models.RosterEntry{
			JerseyNumber:         e.JerseyNumber,
			PlayerFullName:       e.Person.FullName,
			PositionAbbreviation: e.Position.Abbreviation,
			PositionType:         e.Position.Type,
		})
	}
	return entries, nil
}

// SearchPeople looks up player records by name.
func (c *Client) SearchPeople(ctx context.Context, name string) ([]models.Player, error) {
	var payload peopleResponse
	query := "names=" + url.QueryEscape(strings.TrimSpace(name))
	if err := c.getJSON(ctx, "/people/search?"+query, &payload); err != nil {
		return nil, err
	}
	players := make([]models.Player, 0, len(payload.People))
	for _, p := range payload.People {
		players = append(players, models.Player{
			ID:              p.ID,
			FullName:        p.FullName,
			PrimaryNumber:   p.PrimaryNumber,
			PositionName:    p.Position.Name,
			BatSide:         p.BatSide.Description,
			PitchHand:       p.PitchHand.Description,
			CurrentTeamName: p.CurrentTeam.Name,
		})
	}
	return players, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", models.ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", models.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", models.ErrUpstream, path, err)
	}
	return nil
}

func mapGame(g scheduleGame) (models.Game, error) {
	start, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		return models.Game{}, fmt.Errorf("parse gameDate %q: %w", g.GameDate, err)
	}
	return models.Game{
		HomeTeamName: g.Teams.Home.Team.Name,
		AwayTeamName: g.Teams.Away.Team.Name,
		HomeScore:    sideScore(g.Teams.Home, g.Linescore, false),
		AwayScore:    sideScore(g.Teams.Away, g.Linescore, true),
		Status:       models.GameStatus(g.Status.DetailedState),
		StartTime:    start,
	}, nil
}

// sideScore prefers the top-level score, then the linescore runs, then 0.
func sideScore(side scheduleSide, linescore *gameLinescore, away bool) int {
	if side.Score != nil {
		return *side.Score
	}
	if linescore == nil {
		return 0
	}
	runs := linescore.Teams.Home.Runs
	if away {
		runs = linescore.Teams.Away.Runs
	}
	if runs != nil {
		return *runs
	}
	return 0
}

func mapStandingsRecord(rec divisionRecord) models.StandingsRecord {
	name := rec.Division.Name
	if name == "" {
		name = DivisionName(rec.Division.ID)
	}
	teams := make([]models.TeamRecord, 0, len(rec.TeamRecords))
	for _, tr := range rec.TeamRecords {
		teams = append(teams, mapTeamRecord(tr))
	}
	return models.StandingsRecord{DivisionName: name, TeamRecords: teams}
}

func mapTeamRecord(tr teamRecordWire) models.TeamRecord {
	record := models.TeamRecord{
		TeamID:            tr.Team.ID,
		TeamName:          tr.Team.Name,
		Wins:              tr.Wins,
		Losses:            tr.Losses,
		WinningPercentage: tr.WinningPercentage,
		GamesBack:         tr.GamesBack,
		WildCardGamesBack: tr.WildCardGamesBack,
		DivisionRank:      tr.DivisionRank,
		LeagueRank:        tr.LeagueRank,
		RunDifferential:   tr.RunDifferential,
	}
	if tr.Streak != nil {
		record.StreakCode = tr.Streak.StreakCode
	}
	for _, split := range tr.Records.SplitRecords {
		record.SplitRecords = append(record.SplitRecords, models.SplitRecord{
			Type:   split.Type,
			Wins:   split.Wins,
			Losses: split.Losses,
		})
	}
	return record
}
