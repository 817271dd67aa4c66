package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/BetPredictor/models"
)

const validBundle = `{
  "games": [
    {
      "id": "g1",
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
      "recommendation": "Celtics -3.5",
      "confidence": "medium",
      "rationale": ["Celtics 8-2 in last ten"]
    }
  ],
  "last_updated": "2025-01-15T16:00:00Z",
  "sport": "NBA"
}`

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func TestExtractUnfenced(t *testing.T) {
	e := newExtractor(t)

	bundle, err := e.Extract(validBundle, []string{"g1"})
	require.NoError(t, err)
	require.Len(t, bundle.Games, 1)
	assert.Equal(t, "NBA", bundle.Sport)
	assert.Equal(t, "g1", bundle.Games[0].ID)
	assert.InDelta(t, 0.67, bundle.Games[0].HomeWinProbability, 1e-9)
}

func TestExtractFencedMatchesUnfenced(t *testing.T) {
	e := newExtractor(t)

	plain, err := e.Extract(validBundle, []string{"g1"})
	require.NoError(t, err)

	fenced, err := e.Extract("```json\n"+validBundle+"\n```", []string{"g1"})
	require.NoError(t, err)
	assert.Equal(t, plain, fenced)

	bareFence, err := e.Extract("```\n"+validBundle+"\n```", []string{"g1"})
	require.NoError(t, err)
	assert.Equal(t, plain, bareFence)
}

func TestExtractToleratesSurroundingProse(t *testing.T) {
	e := newExtractor(t)

	raw := "Here are my predictions for tonight:\n\n" + validBundle + "\n\nGood luck!"
	bundle, err := e.Extract(raw, []string{"g1"})
	require.NoError(t, err)
	assert.Len(t, bundle.Games, 1)
}

func TestExtractNoPayload(t *testing.T) {
	e := newExtractor(t)

	_, err := e.Extract("I could not produce predictions for these games.", nil)
	var parseErr *models.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Msg, "no structured payload")
}

func TestExtractMalformedJSON(t *testing.T) {
	e := newExtractor(t)

	_, err := e.Extract(`{"games": [{"id": "g1",}`, nil)
	var parseErr *models.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Error(t, errors.Unwrap(parseErr))
}

func TestExtractSchemaViolationIsDistinct(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "games missing",
			raw:  `{"last_updated": "2025-01-15T16:00:00Z", "sport": "NBA"}`,
		},
		{
			name: "last_updated missing",
			raw:  `{"games": [], "sport": "NBA"}`,
		},
		{
			name: "win probability above one",
			raw: `{"games": [{"id": "g1", "home_team": "A", "away_team": "B",
				"predicted_home_score": 1, "predicted_away_score": 2,
				"spread_edge": 0, "total_edge": 0,
				"home_win_probability": 1.4, "away_win_probability": 0.3,
				"home_kelly_stake": 0, "away_kelly_stake": 0,
				"recommendation": "none", "confidence": "low"}],
				"last_updated": "x", "sport": "NBA"}`,
		},
		{
			name: "score typed as string",
			raw: `{"games": [{"id": "g1", "home_team": "A", "away_team": "B",
				"predicted_home_score": "114", "predicted_away_score": 2,
				"spread_edge": 0, "total_edge": 0,
				"home_win_probability": 0.5, "away_win_probability": 0.5,
				"home_kelly_stake": 0, "away_kelly_stake": 0,
				"recommendation": "none", "confidence": "low"}],
				"last_updated": "x", "sport": "NBA"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.raw, nil)
			var schemaErr *models.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			var parseErr *models.ParseError
			assert.False(t, errors.As(err, &parseErr), "schema violation must not surface as ParseError")
		})
	}
}

func TestExtractRejectsUnknownGameID(t *testing.T) {
	e := newExtractor(t)

	_, err := e.Extract(validBundle, []string{"other-game"})
	var schemaErr *models.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Msg, "not part of the request")
}

func TestExtractRejectsDuplicateGameID(t *testing.T) {
	e := newExtractor(t)

	duplicated := `{
	  "games": [
	    {"id": "g1", "home_team": "A", "away_team": "B",
	     "predicted_home_score": 1, "predicted_away_score": 2,
	     "spread_edge": 0, "total_edge": 0,
	     "home_win_probability": 0.5, "away_win_probability": 0.5,
	     "home_kelly_stake": 0, "away_kelly_stake": 0,
	     "recommendation": "none", "confidence": "low"},
	    {"id": "g1", "home_team": "A", "away_team": "B",
	     "predicted_home_score": 1, "predicted_away_score": 2,
	     "spread_edge": 0, "total_edge": 0,
	     "home_win_probability": 0.5, "away_win_probability": 0.5,
	     "home_kelly_stake": 0, "away_kelly_stake": 0,
	     "recommendation": "none", "confidence": "low"}
	  ],
	  "last_updated": "x",
	  "sport": "NBA"
	}`

	_, err := e.Extract(duplicated, []string{"g1", "g2"})
	var schemaErr *models.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Msg, "more than once")
}

func TestExtractSkipsIdentityCheckWithoutInputIDs(t *testing.T) {
	e := newExtractor(t)

	bundle, err := e.Extract(validBundle, nil)
	require.NoError(t, err)
	assert.Len(t, bundle.Games, 1)
}
