package format

import (
	"fmt"
	"strings"

	"github.com/ryanhgonzalez/MLB-Statistics-Bot/internal/models"
)

// PlayerMessage renders a short card for each player matching a search.
func PlayerMessage(query string, players []models.Player) string {
	if len(players) == 0 {
		return fmt.Sprintf("No player found matching %q.", query)
	}

	var builder strings.Builder
	for i, player := range players {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(fmt.Sprintf("⚾ %s", player.FullName))
		builder.WriteString(fmt.Sprintf("\n#️⃣ Number: %s", stringOrNA(player.PrimaryNumber)))
		builder.WriteString(fmt.Sprintf("\n🧢 Position: %s", stringOrNA(player.PositionName)))
		builder.WriteString(fmt.Sprintf("\n🏟 Team: %s", stringOrNA(player.CurrentTeamName)))
		builder.WriteString(fmt.Sprintf("\n🦾 Bats: %s | Throws: %s", stringOrNA(player.BatSide), stringOrNA(player.PitchHand)))
	}
	return builder.String()
}
