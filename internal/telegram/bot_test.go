package telegram

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

// fakeStats is an in-memory StatsAPI.
type fakeStats struct {
	scheduleDate string
	games        []models.Game
	scheduleErr  error
	standings    map[int][]models.StandingsRecord
	standingsErr error
	details      *models.TeamDetails
	roster       []models.RosterEntry
	players      []models.Player

	requestedDates   []time.Time
	requestedLeagues []int
}

func (f *fakeStats) GetSchedule(_ context.Context, date time.Time) (string, []models.Game, error) {
	f.requestedDates = append(f.requestedDates, date)
	if f.scheduleErr != nil {
		return "", nil, f.scheduleErr
	}
	return f.scheduleDate, f.games, nil
}

func (f *fakeStats) GetStandings(_ context.Context, leagueID int, _ *time.Time) ([]models.StandingsRecord, error) {
	f.requestedLeagues = append(f.requestedLeagues, leagueID)
	if f.standingsErr != nil {
		return nil, f.standingsErr
	}
	return f.standings[leagueID], nil
}

func (f *fakeStats) FindTeamRecord(_ context.Context, _ int64) (*models.TeamDetails, error) {
	return f.details, nil
}

func (f *fakeStats) GetTeamRoster(_ context.Context, _ int64) ([]models.RosterEntry, error) {
	return f.roster, nil
}

func (f *fakeStats) SearchPeople(_ context.Context, _ string) ([]models.Player, error) {
	return f.players, nil
}

// fakeRenderer records the views the router produces.
type fakeRenderer struct {
	sent   []View
	edited []View
	acks   []string
}

func (f *fakeRenderer) Send(view View) error { f.sent = append(f.sent, view); return nil }
func (f *fakeRenderer) Edit(view View) error { f.edited = append(f.edited, view); return nil }
func (f *fakeRenderer) Ack(callbackID, _ string) {
	f.acks = append(f.acks, callbackID)
}

type nopLogger struct{}

func (nopLogger) Info(string, string, int64)         {}
func (nopLogger) Error(error, string, string, int64) {}

func newTestBot(t *testing.T, stats *fakeStats) (*Bot, *fakeRenderer) {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	render := &fakeRenderer{}
	bot := &Bot{
		render:  render,
		stats:   stats,
		logger:  nopLogger{},
		loc:     loc,
		timeNow: func() time.Time { return time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC) },
	}
	return bot, render
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		Data:    data,
		Message: &tgbotapi.Message{MessageID: 7, Chat: &tgbotapi.Chat{ID: 42}},
	}
}

func keyboardTokens(markup *tgbotapi.InlineKeyboardMarkup) []string {
	var tokens []string
	if markup == nil {
		return tokens
	}
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData != nil {
				tokens = append(tokens, *button.CallbackData)
			}
		}
	}
	return tokens
}

func TestHandleCallback_Scores(t *testing.T) {
	stats := &fakeStats{
		scheduleDate: "2024-05-01",
		games: []models.Game{{
			AwayTeamName: "Chicago Cubs",
			HomeTeamName: "New York Mets",
			Status:       models.GameStatusScheduled,
			StartTime:    time.Date(2024, 5, 2, 0, 5, 0, 0, time.UTC),
		}},
	}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("scores"))
	require.NoError(t, err)

	require.Len(t, render.edited, 1)
	view := render.edited[0]
	assert.Equal(t, int64(42), view.ChatID)
	assert.Equal(t, 7, view.MessageID)
	assert.Contains(t, view.Text, "⚾ MLB Games for 2024-05-01")
	assert.Contains(t, view.Text, "CHC @ NYM — 7:05 PM")

	tokens := keyboardTokens(view.Keyboard)
	assert.Contains(t, tokens, "games:2024-04-30")
	assert.Contains(t, tokens, "games:2024-05-02")
	assert.Contains(t, tokens, "refresh:2024-05-01")
	assert.Contains(t, tokens, "back:start")

	assert.Equal(t, []string{"cb-1"}, render.acks)
}

func TestHandleCallback_GamesNavigation(t *testing.T) {
	stats := &fakeStats{scheduleDate: "2024-04-30"}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("games:2024-04-30"))
	require.NoError(t, err)

	require.Len(t, stats.requestedDates, 1)
	assert.Equal(t, "2024-04-30", stats.requestedDates[0].Format("2006-01-02"))

	require.Len(t, render.edited, 1)
	assert.Equal(t, "No MLB games scheduled for 2024-04-30.", render.edited[0].Text)
}

func TestHandleCallback_BadDateIsNoOp(t *testing.T) {
	stats := &fakeStats{}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("games:not-a-date"))
	require.NoError(t, err)

	assert.Empty(t, stats.requestedDates)
	assert.Empty(t, render.edited)
	assert.Equal(t, []string{"cb-1"}, render.acks)
}

func TestHandleCallback_UnknownTokenIsNoOp(t *testing.T) {
	bot, render := newTestBot(t, &fakeStats{})

	err := bot.handleCallback(context.Background(), callback("selfdestruct:now"))
	require.NoError(t, err)

	assert.Empty(t, render.edited)
	assert.Empty(t, render.sent)
	assert.Equal(t, []string{"cb-1"}, render.acks)
}

func TestHandleCallback_StandingsBothLeagues(t *testing.T) {
	stats := &fakeStats{
		standings: map[int][]models.StandingsRecord{
			mlb.AmericanLeagueID: {{DivisionName: "American League East"}},
			mlb.NationalLeagueID: {{DivisionName: "National League East"}},
		},
	}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("standings"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{mlb.AmericanLeagueID, mlb.NationalLeagueID}, stats.requestedLeagues)

	require.Len(t, render.edited, 1)
	text := render.edited[0].Text
	al := strings.Index(text, "American League East")
	nl := strings.Index(text, "National League East")
	require.True(t, al >= 0 && nl >= 0, text)
	assert.Less(t, al, nl)

	tokens := keyboardTokens(render.edited[0].Keyboard)
	assert.Contains(t, tokens, "standings:103")
	assert.Contains(t, tokens, "standings:104")
}

func TestHandleCallback_SingleLeagueStandings(t *testing.T) {
	stats := &fakeStats{
		standings: map[int][]models.StandingsRecord{
			mlb.NationalLeagueID: {{DivisionName: "National League West"}},
		},
	}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("standings:104"))
	require.NoError(t, err)

	assert.Equal(t, []int{mlb.NationalLeagueID}, stats.requestedLeagues)
	require.Len(t, render.edited, 1)
	assert.Contains(t, render.edited[0].Text, "National League West")
}

func TestHandleCallback_TeamDetail(t *testing.T) {
	stats := &fakeStats{
		details: &models.TeamDetails{
			LeagueName:   "American League",
			DivisionName: "American League East",
			Record:       models.TeamRecord{TeamName: "New York Yankees"},
		},
	}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("team:147"))
	require.NoError(t, err)

	require.Len(t, render.edited, 1)
	assert.Contains(t, render.edited[0].Text, "📊 New York Yankees Stats")
	assert.Contains(t, keyboardTokens(render.edited[0].Keyboard), "back:teams")
}

func TestHandleCallback_TeamNotFound(t *testing.T) {
	bot, render := newTestBot(t, &fakeStats{})

	err := bot.handleCallback(context.Background(), callback("team:9999"))
	require.NoError(t, err)

	require.Len(t, render.edited, 1)
	assert.Equal(t, "No data available for this team.", render.edited[0].Text)
}

func TestHandleCallback_Roster(t *testing.T) {
	stats := &fakeStats{
		roster: []models.RosterEntry{{
			JerseyNumber: "99", PlayerFullName: "Aaron Judge",
			PositionAbbreviation: "RF", PositionType: "Outfielder",
		}},
	}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("roster:147"))
	require.NoError(t, err)

	require.Len(t, render.edited, 1)
	assert.Contains(t, render.edited[0].Text, "New York Yankees — Active Roster")
	assert.Contains(t, keyboardTokens(render.edited[0].Keyboard), "back:rosters")
}

func TestHandleCallback_BackTargets(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"back:start", welcomeText},
		{"back:teams", teamsText},
		{"back:rosters", rostersText},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			bot, render := newTestBot(t, &fakeStats{})

			err := bot.handleCallback(context.Background(), callback(tt.token))
			require.NoError(t, err)
			require.Len(t, render.edited, 1)
			assert.Equal(t, tt.expected, render.edited[0].Text)
		})
	}

	t.Run("unknown target is a no-op", func(t *testing.T) {
		bot, render := newTestBot(t, &fakeStats{})

		err := bot.handleCallback(context.Background(), callback("back:nowhere"))
		require.NoError(t, err)
		assert.Empty(t, render.edited)
	})
}

func TestHandleCallback_UpstreamFailureRendersApology(t *testing.T) {
	stats := &fakeStats{scheduleErr: models.ErrUpstream}
	bot, render := newTestBot(t, stats)

	err := bot.handleCallback(context.Background(), callback("scores"))
	assert.ErrorIs(t, err, models.ErrUpstream)

	require.Len(t, render.edited, 1)
	assert.Equal(t, apologyText, render.edited[0].Text)
	assert.Equal(t, []string{"cb-1"}, render.acks)
}

func TestHandleMessage_Start(t *testing.T) {
	bot, render := newTestBot(t, &fakeStats{})

	msg := &tgbotapi.Message{
		Text:     "/start",
		Chat:     &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}},
	}
	err := bot.handleMessage(context.Background(), msg)
	require.NoError(t, err)

	require.Len(t, render.sent, 1)
	assert.Equal(t, welcomeText, render.sent[0].Text)

	tokens := keyboardTokens(render.sent[0].Keyboard)
	assert.Contains(t, tokens, "scores")
	assert.Contains(t, tokens, "standings")
	assert.Contains(t, tokens, "teams")
	assert.Contains(t, tokens, "rosters")
}

func TestHandleMessage_PlayerSearch(t *testing.T) {
	stats := &fakeStats{players: []models.Player{{FullName: "Aaron Judge"}}}
	bot, render := newTestBot(t, stats)

	msg := &tgbotapi.Message{
		Text:     "/player aaron judge",
		Chat:     &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 7}},
	}
	err := bot.handleMessage(context.Background(), msg)
	require.NoError(t, err)

	require.Len(t, render.sent, 1)
	assert.Contains(t, render.sent[0].Text, "Aaron Judge")
}

func TestHandleMessage_PlainTextIgnored(t *testing.T) {
	bot, render := newTestBot(t, &fakeStats{})

	msg := &tgbotapi.Message{Text: "hello there", Chat: &tgbotapi.Chat{ID: 42}}
	err := bot.handleMessage(context.Background(), msg)
	require.NoError(t, err)
	assert.Empty(t, render.sent)
}
