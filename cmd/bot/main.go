package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/config"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/telegram"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := config.NewLogger()
	stats := mlb.NewClient(mlb.Config{})

	botAPI, err := tgbotapi.NewBotAPI(settings.BotToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	botAPI.Debug = os.Getenv("DEBUG") == "1"

	bot := telegram.NewBot(botAPI, stats, settings.Location, logger)

	if err := bot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("bot stopped: %v", err)
	}
}
