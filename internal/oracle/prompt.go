package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Alias1177/BetPredictor/models"
)

// BuildPrompt constructs the single-turn instruction sent to the completion
// service: the sport, the serialized games, the numbered analysis procedure
// and an exact example of the required output shape.
func BuildPrompt(sport string, games []models.FormattedGame) string {
	serialized, _ := json.MarshalIndent(games, "", "  ")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a sports betting analyst. Analyze the following %s games and produce predictions.\n\n", strings.ToUpper(sport)))
	sb.WriteString("Games (current betting lines, American odds, \"N/A\" means the market is not available):\n")
	sb.Write(serialized)
	sb.WriteString("\n\nFor each game, follow this procedure:\n")
	sb.WriteString("1. Assess recent form and the matchup for both teams.\n")
	sb.WriteString("2. Predict a final score for each team.\n")
	sb.WriteString("3. Estimate each team's win probability (between 0 and 1).\n")
	sb.WriteString("4. Compute the edge in percentage points for the spread and the total: edge = (your win probability - implied probability from the posted odds) * 100.\n")
	sb.WriteString("5. Compute the Kelly stake fraction for each moneyline: kelly = (p*b - (1-p)) / b, where p is your win probability and b is the decimal-odds equivalent of the American price minus one. Report HALF of that value, clamped to 0 when negative.\n")
	sb.WriteString("6. Flag any game where the absolute edge exceeds 3 percentage points in the recommendation.\n\n")
	sb.WriteString("Respond with ONLY a JSON object, no prose before or after, in exactly this shape. ")
	sb.WriteString("The \"id\" of each game MUST be copied unchanged from the input.\n\n")
	sb.WriteString(exampleShape)
	return sb.String()
}

const exampleShape = `{
  "games": [
    {
      "id": "<id copied from input>",
      "home_team": "Boston Celtics",
      "away_team": "New York Knicks",
      "game_time": "2025-01-15T19:00:00Z",
      "spread": "-3.5",
      "total": "224.5",
      "predicted_home_score": 114,
      "predicted_away_score": 108,
      "predicted_spread": -6,
      "predicted_total": 222,
      "spread_edge": 4.2,
      "total_edge": -1.1,
      "home_win_probability": 0.67,
      "away_win_probability": 0.33,
      "home_kelly_stake": 0.045,
      "away_kelly_stake": 0,
      "recommendation": "Celtics -3.5 (edge exceeds 3 points)",
      "confidence": "medium",
      "rationale": ["Celtics 8-2 in last ten", "Knicks on second night of back-to-back"]
    }
  ],
  "last_updated": "2025-01-15T16:00:00Z",
  "sport": "NBA"
}`
