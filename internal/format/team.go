package format

import (
	"fmt"
	"strings"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

// TeamDetailsMessage renders one team's stat card. A nil details value is a
// valid terminal rendering, not an error.
func TeamDetailsMessage(details *models.TeamDetails) string {
	if details == nil {
		return "No data available for this team."
	}
	record := details.Record

	teamName := record.TeamName
	if teamName == "" {
		teamName = "Unknown Team"
	}

	lines := []string{
		fmt.Sprintf("📊 %s Stats", teamName),
		fmt.Sprintf("🏆 League: %s", stringOrNA(details.LeagueName)),
		fmt.Sprintf("📍 Division: %s", stringOrNA(details.DivisionName)),
		"",
		fmt.Sprintf("💪 Record: %s-%s (%s)", intOrNA(record.Wins), intOrNA(record.Losses), stringOrNA(record.WinningPercentage)),
		fmt.Sprintf("📊 Games Back: %s | Wild Card GB: %s", stringOrNA(record.GamesBack), stringOrNA(record.WildCardGamesBack)),
		fmt.Sprintf("🔥 Streak: %s", stringOrNA(record.StreakCode)),
		fmt.Sprintf("🏠 Home: %s", splitOrNA(record, "home")),
		fmt.Sprintf("✈️ Away: %s", splitOrNA(record, "away")),
		fmt.Sprintf("🏅 Division Rank: %s", stringOrNA(record.DivisionRank)),
		fmt.Sprintf("🏆 League Rank: %s", stringOrNA(record.LeagueRank)),
		fmt.Sprintf("⚡ Run Differential: %s", intOrNA(record.RunDifferential)),
		fmt.Sprintf("📅 Last 10: %s", splitOrNA(record, "lastTen")),
	}
	return strings.Join(lines, "\n")
}

func splitOrNA(record models.TeamRecord, splitType string) string {
	split, ok := record.Split(splitType)
	if !ok {
		return missingValue
	}
	return fmt.Sprintf("%d-%d", split.Wins, split.Losses)
}
