package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTimeZone = "America/Chicago"

type Settings struct {
	BotToken string
	Location *time.Location
}

// Load reads process settings from the environment, honoring a local .env
// file when present. A missing bot token is fatal to the caller.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	set := &Settings{}
	set.BotToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_AUTH_TOKEN"))
	if set.BotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_AUTH_TOKEN is required")
	}

	tz := strings.TrimSpace(os.Getenv("BOT_TZ"))
	if tz == "" {
		tz = defaultTimeZone
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load BOT_TZ: %w", err)
	}
	set.Location = location

	return set, nil
}
