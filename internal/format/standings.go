package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

const missingValue = "N/A"

// StandingsMessage renders division tables in input order. Missing numeric
// fields render as N/A rather than dropping the row.
func StandingsMessage(records []models.StandingsRecord, date *time.Time) string {
	if len(records) == 0 {
		if date != nil {
			return fmt.Sprintf("No standings data available for %s.", date.Format("2006-01-02"))
		}
		return "No standings data available."
	}

	var builder strings.Builder
	if date != nil {
		builder.WriteString(fmt.Sprintf("📊 Standings (%s)\n\n", date.Format("2006-01-02")))
	} else {
		builder.WriteString("📊 Standings\n\n")
	}
	for _, record := range records {
		builder.WriteString(fmt.Sprintf("🏆 %s\n", record.DivisionName))
		for _, team := range record.TeamRecords {
			builder.WriteString(fmt.Sprintf("   • %s: %s-%s (%s)\n",
				team.TeamName,
				intOrNA(team.Wins),
				intOrNA(team.Losses),
				stringOrNA(team.WinningPercentage)))
		}
		builder.WriteString("\n")
	}
	return strings.TrimSpace(builder.String())
}

func intOrNA(v *int) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%d", *v)
}

func stringOrNA(v string) string {
	if v == "" {
		return missingValue
	}
	return v
}
