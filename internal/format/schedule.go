package format

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

// ScheduleMessage renders the games of one date grouped by starting hour in
// the given location. Buckets appear in chronological order; within a bucket
// games keep their input order. An empty slate renders the fixed "no games"
// sentence instead of the bucketed layout.
func ScheduleMessage(dateStr string, games []models.Game, loc *time.Location) string {
	if len(games) == 0 {
		return fmt.Sprintf("No MLB games scheduled for %s.", dateStr)
	}

	buckets := map[string][]string{}
	var order []string
	for _, game := range games {
		bucket := HourBucket(game.StartTime, loc)
		if _, seen := buckets[bucket]; !seen {
			order = append(order, bucket)
		}
		buckets[bucket] = append(buckets[bucket], gameLine(game, loc))
	}
	sort.SliceStable(order, func(i, j int) bool {
		return bucketHour(order[i]) < bucketHour(order[j])
	})

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("⚾ MLB Games for %s\n\n", dateStr))
	for _, bucket := range order {
		builder.WriteString(fmt.Sprintf("🕒 %s CT\n", bucket))
		builder.WriteString(strings.Join(buckets[bucket], "\n"))
		builder.WriteString("\n\n")
	}
	return strings.TrimSpace(builder.String())
}

func gameLine(game models.Game, loc *time.Location) string {
	away := mlb.Abbreviation(game.AwayTeamName)
	home := mlb.Abbreviation(game.HomeTeamName)

	switch {
	case game.Live():
		return fmt.Sprintf("`%s %d @ %s %d — %s`", away, game.AwayScore, home, game.HomeScore, game.Status)
	case game.Status == models.GameStatusScheduled || game.Status == models.GameStatusPreGame:
		return fmt.Sprintf("`%s @ %s — %s`", away, home, ExactTime(game.StartTime, loc))
	default:
		return fmt.Sprintf("`%s @ %s — %s`", away, home, game.Status)
	}
}
