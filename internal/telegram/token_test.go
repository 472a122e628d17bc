package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw      string
		expected Token
	}{
		{"scores", Token{Action: ActionScores}},
		{"games:2024-05-01", Token{Action: ActionGames, Arg: "2024-05-01"}},
		{"refresh:2024-05-01", Token{Action: ActionRefresh, Arg: "2024-05-01"}},
		{"standings", Token{Action: ActionStandings}},
		{"standings:103", Token{Action: ActionStandings, Arg: "103"}},
		{"teams", Token{Action: ActionTeams}},
		{"team:147", Token{Action: ActionTeam, Arg: "147"}},
		{"rosters", Token{Action: ActionRosters}},
		{"roster:112", Token{Action: ActionRoster, Arg: "112"}},
		{"back:start", Token{Action: ActionBack, Arg: "start"}},
		{"back:teams", Token{Action: ActionBack, Arg: "teams"}},

		// Outside the vocabulary, or malformed: all collapse to Unknown.
		{"", Token{}},
		{"bogus", Token{}},
		{"bogus:1", Token{}},
		{"team:", Token{}},
		{"back:", Token{}},
		{"scores:extra", Token{}},
		{"team:1:2", Token{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseToken(tt.raw))
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token := Token{Action: ActionTeam, Arg: "147"}
	assert.Equal(t, "team:147", token.String())

	parsed := ParseToken(token.String())
	assert.Equal(t, ActionTeam, parsed.Action)
	assert.Equal(t, "147", parsed.Arg)

	assert.Equal(t, "standings", Token{Action: ActionStandings}.String())
}
