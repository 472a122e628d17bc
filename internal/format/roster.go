package format

import (
	"fmt"
	"strings"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/mlb"
	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

// RosterMessage renders a team's active roster grouped by position type.
// Groups appear in first-seen order; entries sharing a type collate together
// regardless of input order.
func RosterMessage(teamID int64, entries []models.RosterEntry) string {
	teamName := mlb.TeamName(teamID)
	if len(entries) == 0 {
		return fmt.Sprintf("No active roster available for %s.", teamName)
	}

	groups := map[string][]string{}
	var order []string
	for _, entry := range entries {
		category := entry.PositionType
		if category == "" {
			category = "Other"
		}
		if _, seen := groups[category]; !seen {
			order = append(order, category)
		}
		jersey := entry.JerseyNumber
		if jersey == "" {
			jersey = "??"
		}
		groups[category] = append(groups[category],
			fmt.Sprintf("#%s %s (%s)", jersey, entry.PlayerFullName, stringOrNA(entry.PositionAbbreviation)))
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("⚾ %s — Active Roster\n\n", teamName))
	for _, category := range order {
		builder.WriteString(fmt.Sprintf("🧢 %s\n", category))
		builder.WriteString(strings.Join(groups[category], "\n"))
		builder.WriteString("\n\n")
	}
	return strings.TrimSpace(builder.String())
}
