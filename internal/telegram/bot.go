package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/format"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

const (
	welcomeText = "Welcome to the MLB Statistics Bot! Choose an option to get started:"
	teamsText   = "Select a team to view detailed stats:"
	rostersText = "Select a team to view detailed roster information:"
	apologyText = "Something went wrong fetching MLB data. Please try again."
	unknownText = "Unknown command. Send /start to begin."
)

type Logger interface {
	Info(action string, detail string, chatID int64)
	Error(err error, action string, detail string, chatID int64)
}

type Bot struct {
	api     *tgbotapi.BotAPI
	render  Renderer
	stats   mlb.StatsAPI
	logger  Logger
	loc     *time.Location
	timeNow func() time.Time
}

func NewBot(api *tgbotapi.BotAPI, stats mlb.StatsAPI, loc *time.Location, logger Logger) *Bot {
	return &Bot{
		api:     api,
		render:  NewRenderer(api),
		stats:   stats,
		logger:  logger,
		loc:     loc,
		timeNow: time.Now,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if err := b.handleUpdate(ctx, update); err != nil {
				b.logger.Error(err, "handle_update", "", updateChatID(update))
			}
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message != nil {
		return b.handleMessage(ctx, update.Message)
	}
	if update.CallbackQuery != nil {
		return b.handleCallback(ctx, update.CallbackQuery)
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if !msg.IsCommand() {
		return nil
	}
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		b.logger.Info("start", "", chatID)
		keyboard := startKeyboard()
		return b.render.Send(View{ChatID: chatID, Text: welcomeText, Keyboard: &keyboard})
	case "player":
		query := strings.TrimSpace(msg.CommandArguments())
		if query == "" {
			return b.render.Send(View{ChatID: chatID, Text: "Usage: /player <name>"})
		}
		players, err := b.stats.SearchPeople(ctx, query)
		if err != nil {
			_ = b.render.Send(View{ChatID: chatID, Text: apologyText})
			return err
		}
		return b.render.Send(View{ChatID: chatID, Text: format.PlayerMessage(query, players)})
	default:
		return b.render.Send(View{ChatID: chatID, Text: unknownText})
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil {
		b.render.Ack(cb.ID, "")
		return nil
	}
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	token := ParseToken(cb.Data)

	var err error
	switch token.Action {
	case ActionScores:
		err = b.showSchedule(ctx, chatID, messageID, b.today())
	case ActionGames, ActionRefresh:
		date, parseErr := time.Parse(dateLayout, token.Arg)
		if parseErr != nil {
			b.render.Ack(cb.ID, "")
			return nil
		}
		err = b.showSchedule(ctx, chatID, messageID, date)
	case ActionStandings:
		err = b.showStandings(ctx, chatID, messageID, token.Arg)
	case ActionTeams:
		keyboard := franchiseKeyboard(ActionTeam)
		err = b.render.Edit(View{ChatID: chatID, MessageID: messageID, Text: teamsText, Keyboard: &keyboard})
	case ActionTeam:
		teamID, parseErr := strconv.ParseInt(token.Arg, 10, 64)
		if parseErr != nil {
			b.render.Ack(cb.ID, "")
			return nil
		}
		err = b.showTeam(ctx, chatID, messageID, teamID)
	case ActionRosters:
		keyboard := franchiseKeyboard(ActionRoster)
		err = b.render.Edit(View{ChatID: chatID, MessageID: messageID, Text: rostersText, Keyboard: &keyboard})
	case ActionRoster:
		teamID, parseErr := strconv.ParseInt(token.Arg, 10, 64)
		if parseErr != nil {
			b.render.Ack(cb.ID, "")
			return nil
		}
		err = b.showRoster(ctx, chatID, messageID, teamID)
	case ActionBack:
		err = b.showBackTarget(chatID, messageID, token.Arg)
	case ActionUnknown:
		b.render.Ack(cb.ID, "")
		return nil
	}

	if err != nil {
		keyboard := backKeyboard("start")
		_ = b.render.Edit(View{ChatID: chatID, MessageID: messageID, Text: apologyText, Keyboard: &keyboard})
	}
	b.render.Ack(cb.ID, "")
	return err
}

// ----------------------------------------------------------------------------
// Screens

func (b *Bot) showSchedule(ctx context.Context, chatID int64, messageID int, date time.Time) error {
	dateStr, games, err := b.stats.GetSchedule(ctx, date)
	if err != nil {
		return err
	}
	keyboard := scheduleKeyboard(date, b.today())
	return b.render.Edit(View{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      format.ScheduleMessage(dateStr, games, b.loc),
		Keyboard:  &keyboard,
	})
}

// showStandings renders one league's table, or both leagues (AL before NL,
// fetched concurrently) when no league filter is given.
func (b *Bot) showStandings(ctx context.Context, chatID int64, messageID int, leagueArg string) error {
	var records []models.StandingsRecord
	if leagueArg == "" {
		var al, nl []models.StandingsRecord
		group, gctx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			al, err = b.stats.GetStandings(gctx, mlb.AmericanLeagueID, nil)
			return err
		})
		group.Go(func() error {
			var err error
			nl, err = b.stats.GetStandings(gctx, mlb.NationalLeagueID, nil)
			return err
		})
		if err := group.Wait(); err != nil {
			return err
		}
		records = append(al, nl...)
	} else {
		leagueID, parseErr := strconv.Atoi(leagueArg)
		if parseErr != nil {
			return nil
		}
		var err error
		records, err = b.stats.GetStandings(ctx, leagueID, nil)
		if err != nil {
			return err
		}
	}

	now := b.today()
	keyboard := standingsKeyboard()
	return b.render.Edit(View{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      format.StandingsMessage(records, &now),
		Keyboard:  &keyboard,
	})
}

func (b *Bot) showTeam(ctx context.Context, chatID int64, messageID int, teamID int64) error {
	details, err := b.stats.FindTeamRecord(ctx, teamID)
	if err != nil {
		return err
	}
	keyboard := backKeyboard("teams")
	return b.render.Edit(View{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      format.TeamDetailsMessage(details),
		Keyboard:  &keyboard,
	})
}

func (b *Bot) showRoster(ctx context.Context, chatID int64, messageID int, teamID int64) error {
	entries, err := b.stats.GetTeamRoster(ctx, teamID)
	if err != nil {
		return err
	}
	keyboard := backKeyboard("rosters")
	return b.render.Edit(View{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      format.RosterMessage(teamID, entries),
		Keyboard:  &keyboard,
	})
}

func (b *Bot) showBackTarget(chatID int64, messageID int, target string) error {
	var text string
	var keyboard tgbotapi.InlineKeyboardMarkup
	switch target {
	case "start":
		text, keyboard = welcomeText, startKeyboard()
	case "teams":
		text, keyboard = teamsText, franchiseKeyboard(ActionTeam)
	case "rosters":
		text, keyboard = rostersText, franchiseKeyboard(ActionRoster)
	default:
		return nil
	}
	return b.render.Edit(View{ChatID: chatID, MessageID: messageID, Text: text, Keyboard: &keyboard})
}

func (b *Bot) today() time.Time {
	return b.timeNow().In(b.loc)
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}
