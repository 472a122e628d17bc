package telegram

import "strings"

// Action is the closed vocabulary of callback-button actions. Every inline
// button carries a token of the form "action:argument" (argument optional,
// never containing a colon); anything outside the vocabulary parses to
// ActionUnknown and is ignored by the router.
type Action string

const (
	ActionUnknown   Action = ""
	ActionScores    Action = "scores"
	ActionGames     Action = "games"
	ActionRefresh   Action = "refresh"
	ActionStandings Action = "standings"
	ActionTeams     Action = "teams"
	ActionTeam      Action = "team"
	ActionRosters   Action = "rosters"
	ActionRoster    Action = "roster"
	ActionBack      Action = "back"
)

// Token is a parsed callback payload.
type Token struct {
	Action Action
	Arg    string
}

// ParseToken decodes a raw callback string. Unrecognized actions, stray
// colons in the argument, and arguments on argument-less actions all yield
// an ActionUnknown token rather than an error.
func ParseToken(raw string) Token {
	action, arg, hasArg := strings.Cut(raw, ":")
	if strings.Contains(arg, ":") {
		return Token{}
	}
	switch Action(action) {
	case ActionScores, ActionTeams, ActionRosters:
		if hasArg {
			return Token{}
		}
		return Token{Action: Action(action)}
	case ActionStandings:
		// League filter argument is optional.
		return Token{Action: ActionStandings, Arg: arg}
	case ActionGames, ActionRefresh, ActionTeam, ActionRoster, ActionBack:
		if arg == "" {
			return Token{}
		}
		return Token{Action: Action(action), Arg: arg}
	default:
		return Token{}
	}
}

// String re-encodes the token as a callback payload.
func (t Token) String() string {
	if t.Arg == "" {
		return string(t.Action)
	}
	return string(t.Action) + ":" + t.Arg
}
