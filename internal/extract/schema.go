package extract

// bundleSchema is the contract the oracle output must satisfy. Unknown
// extra fields are allowed so benign formatting drift does not reject an
// otherwise usable prediction.
const bundleSchema = `{
  "type": "object",
  "required": ["games", "last_updated", "sport"],
  "properties": {
    "games": {
      "type": "array",
      "items": {
        "type": "object",
        "required": [
          "id",
          "home_team",
          "away_team",
          "predicted_home_score",
          "predicted_away_score",
          "spread_edge",
          "total_edge",
          "home_win_probability",
          "away_win_probability",
          "home_kelly_stake",
          "away_kelly_stake",
          "recommendation",
          "confidence"
        ],
        "properties": {
          "id": {"type": "string"},
          "home_team": {"type": "string"},
          "away_team": {"type": "string"},
          "game_time": {"type": "string"},
          "spread": {"type": "string"},
          "total": {"type": "string"},
          "predicted_home_score": {"type": "number"},
          "predicted_away_score": {"type": "number"},
          "predicted_spread": {"type": "number"},
          "predicted_total": {"type": "number"},
          "spread_edge": {"type": "number"},
          "total_edge": {"type": "number"},
          "home_win_probability": {"type": "number", "minimum": 0, "maximum": 1},
          "away_win_probability": {"type": "number", "minimum": 0, "maximum": 1},
          "home_kelly_stake": {"type": "number"},
          "away_kelly_stake": {"type": "number"},
          "recommendation": {"type": "string"},
          "confidence": {"type": "string"},
          "rationale": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "last_updated": {"type": "string"},
    "sport": {"type": "string"}
  }
}`
