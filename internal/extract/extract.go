package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonschema"

	"github.com/Alias1177/BetPredictor/models"
)

// Extractor recovers a validated PredictionBundle from the free-form text
// the oracle returns. Formatting noise around the payload (code fences,
// leading or trailing prose) is tolerated; schema violations inside the
// payload are not.
type Extractor struct {
	schema *jsonschema.Schema
}

// New compiles the embedded prediction schema
func New() (*Extractor, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(bundleSchema))
	if err != nil {
		return nil, fmt.Errorf("compile prediction schema: %w", err)
	}
	return &Extractor{schema: schema}, nil
}

// Extract parses and validates raw oracle output. inputIDs are the game IDs
// handed to the oracle; every returned game must echo one of them, each at
// most once. An empty inputIDs skips the identity check.
func (e *Extractor) Extract(raw string, inputIDs []string) (*models.PredictionBundle, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = stripFences(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return nil, &models.ParseError{Msg: "no structured payload found"}
	}
	span := []byte(text[start : end+1])

	var payload any
	if err := json.Unmarshal(span, &payload); err != nil {
		return nil, &models.ParseError{Msg: "malformed JSON payload", Err: err}
	}

	if result := e.schema.ValidateJSON(span); !result.IsValid() {
		return nil, &models.SchemaError{Msg: fmt.Sprintf("prediction payload rejected: %v", result.Errors)}
	}

	var bundle models.PredictionBundle
	if err := json.Unmarshal(span, &bundle); err != nil {
		return nil, &models.ParseError{Msg: "decoding prediction payload", Err: err}
	}

	if err := checkGameIdentity(bundle.Games, inputIDs); err != nil {
		return nil, err
	}

	return &bundle, nil
}

// stripFences removes every triple-backtick fence marker, including a
// leading language tag such as ```json
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// checkGameIdentity verifies the returned games are a subset of the games
// the oracle was given, matched by echoed ID rather than by position.
func checkGameIdentity(games []models.PredictionRecord, inputIDs []string) error {
	if len(inputIDs) == 0 {
		return nil
	}

	known := make(map[string]bool, len(inputIDs))
	for _, id := range inputIDs {
		known[id] = true
	}

	seen := make(map[string]bool, len(games))
	for _, game := range games {
		if !known[game.ID] {
			return &models.SchemaError{Msg: fmt.Sprintf("game id %q was not part of the request", game.ID)}
		}
		if seen[game.ID] {
			return &models.SchemaError{Msg: fmt.Sprintf("game id %q returned more than once", game.ID)}
		}
		seen[game.ID] = true
	}
	return nil
}
