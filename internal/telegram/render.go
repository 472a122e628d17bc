package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// View is one rendered screen: the text shown in a chat together with its
// navigation buttons.
type View struct {
	ChatID    int64
	MessageID int
	Text      string
	Keyboard  *tgbotapi.InlineKeyboardMarkup
}

// Renderer abstracts the two Telegram effects the router needs, so handlers
// can be exercised without the transport.
type Renderer interface {
	// Send posts the view as a new message.
	Send(view View) error
	// Edit replaces the currently displayed message in place.
	Edit(view View) error
	// Ack acknowledges receipt of a callback interaction.
	Ack(callbackID, notice string)
}

type apiRenderer struct {
	api *tgbotapi.BotAPI
}

// NewRenderer wraps the bot API as a Renderer.
func NewRenderer(api *tgbotapi.BotAPI) Renderer {
	return &apiRenderer{api: api}
}

func (r *apiRenderer) Send(view View) error {
	msg := tgbotapi.NewMessage(view.ChatID, view.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if view.Keyboard != nil {
		msg.ReplyMarkup = *view.Keyboard
	}
	_, err := r.api.Send(msg)
	return err
}

func (r *apiRenderer) Edit(view View) error {
	msg := tgbotapi.NewEditMessageText(view.ChatID, view.MessageID, view.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = view.Keyboard
	_, err := r.api.Send(msg)
	return err
}

func (r *apiRenderer) Ack(callbackID, notice string) {
	_, _ = r.api.Request(tgbotapi.NewCallback(callbackID, notice))
}
