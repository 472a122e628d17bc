package telegram

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
)

const dateLayout = "2006-01-02"

func tokenButton(label string, token Token) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, token.String())
}

func startKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{tokenButton("Get Today's Schedule", Token{Action: ActionScores})},
		[]tgbotapi.InlineKeyboardButton{tokenButton("Get Latest Standings", Token{Action: ActionStandings})},
		[]tgbotapi.InlineKeyboardButton{tokenButton("Get Team Details", Token{Action: ActionTeams})},
		[]tgbotapi.InlineKeyboardButton{tokenButton("Get Team Rosters", Token{Action: ActionRosters})},
	)
}

// scheduleKeyboard offers day navigation around the shown date plus a
// refresh of the same date.
func scheduleKeyboard(date, today time.Time) tgbotapi.InlineKeyboardMarkup {
	yesterday := date.AddDate(0, 0, -1).Format(dateLayout)
	tomorrow := date.AddDate(0, 0, 1).Format(dateLayout)
	return tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("⬅ Yesterday", Token{Action: ActionGames, Arg: yesterday}),
			tokenButton("Today", Token{Action: ActionGames, Arg: today.Format(dateLayout)}),
			tokenButton("Tomorrow ➡", Token{Action: ActionGames, Arg: tomorrow}),
		},
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("🔄 Refresh", Token{Action: ActionRefresh, Arg: date.Format(dateLayout)}),
		},
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("⬅ Back", Token{Action: ActionBack, Arg: "start"}),
		},
	)
}

func standingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("American League", Token{Action: ActionStandings, Arg: strconv.Itoa(mlb.AmericanLeagueID)}),
			tokenButton("National League", Token{Action: ActionStandings, Arg: strconv.Itoa(mlb.NationalLeagueID)}),
		},
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("⬅ Back", Token{Action: ActionBack, Arg: "start"}),
		},
	)
}

// franchiseKeyboard lists all thirty clubs two per row. The action decides
// whether a pick opens the stat card or the roster.
func franchiseKeyboard(action Action) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, team := range mlb.TeamNames() {
		row = append(row, tokenButton(team.Name, Token{Action: action, Arg: fmt.Sprintf("%d", team.ID)}))
		if len(row) == 2 {
			keyboard = append(keyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		keyboard = append(keyboard, row)
	}
	keyboard = append(keyboard, []tgbotapi.InlineKeyboardButton{
		tokenButton("⬅ Back", Token{Action: ActionBack, Arg: "start"}),
	})
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

func backKeyboard(target string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tokenButton("⬅ Back", Token{Action: ActionBack, Arg: target}),
		},
	)
}
