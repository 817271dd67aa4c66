package roster

import (
	"strings"

	"github.com/Alias1177/BetPredictor/models"
)

// RankedTeams is the fixed allow-list of ranked team name fragments used to
// restrict NCAAB games. Fixed at process start, no refresh.
var RankedTeams = []string{
	"Auburn", "Duke", "Houston", "Alabama", "Florida",
	"Tennessee", "Iowa State", "Michigan State", "Texas A&M", "St. John's",
	"Kansas", "Kentucky", "Marquette", "Gonzaga", "Purdue",
	"Wisconsin", "UConn", "Memphis", "Arizona", "Oregon",
	"Illinois", "Creighton", "Mississippi State", "Ole Miss", "Baylor",
}

// Filter restricts games to those involving a ranked team
type Filter struct {
	teams []string
}

// New creates a filter over the default ranked-team list
func New() *Filter {
	return NewWithTeams(RankedTeams)
}

// NewWithTeams creates a filter over a custom allow-list
func NewWithTeams(teams []string) *Filter {
	return &Filter{teams: teams}
}

// Match reports whether either team name contains a ranked-team fragment.
// The test is case-insensitive, whitespace-trimmed substring containment,
// which is intentionally permissive: "Dukeville" matches "Duke".
func (f *Filter) Match(homeTeam, awayTeam string) bool {
	home := strings.ToLower(strings.TrimSpace(homeTeam))
	away := strings.ToLower(strings.TrimSpace(awayTeam))

	for _, team := range f.teams {
		fragment := strings.ToLower(team)
		if strings.Contains(home, fragment) || strings.Contains(away, fragment) {
			return true
		}
	}
	return false
}

// Apply returns only the games involving a ranked team
func (f *Filter) Apply(games []models.RawGame) []models.RawGame {
	filtered := make([]models.RawGame, 0, len(games))
	for _, game := range games {
		if f.Match(game.HomeTeam, game.AwayTeam) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}
