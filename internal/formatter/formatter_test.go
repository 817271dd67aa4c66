package formatter

import (
	"testing"
	"time"

	"github.com/Alias1177/BetPredictor/models"
)

func floatPtr(f float64) *float64 { return &f }

func rawGame(id, home, away string) models.RawGame {
	return models.RawGame{
		ID:           id,
		HomeTeam:     home,
		AwayTeam:     away,
		CommenceTime: time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC),
		Bookmakers: []models.Bookmaker{
			{
				Key: "draftkings",
				Markets: []models.Market{
					{
						Key: "spreads",
						Outcomes: []models.Outcome{
							{Name: home, Price: -110, Point: floatPtr(-3.5)},
							{Name: away, Price: -110, Point: floatPtr(3.5)},
						},
					},
					{
						Key: "totals",
						Outcomes: []models.Outcome{
							{Name: "Over", Price: -110, Point: floatPtr(224.5)},
							{Name: "Under", Price: -110, Point: floatPtr(224.5)},
						},
					},
					{
						Key: "h2h",
						Outcomes: []models.Outcome{
							{Name: home, Price: -165},
							{Name: away, Price: 140},
						},
					},
				},
			},
		},
	}
}

func TestFormatFullMarkets(t *testing.T) {
	raw := []models.RawGame{
		rawGame("g1", "Boston Celtics", "New York Knicks"),
		rawGame("g2", "Denver Nuggets", "Utah Jazz"),
	}

	formatted := Format(raw, 10)
	if len(formatted) != 2 {
		t.Fatalf("expected 2 formatted games, got %d", len(formatted))
	}

	fg := formatted[0]
	if fg.ID != "g1" {
		t.Errorf("provider game ID should be preserved, got %q", fg.ID)
	}
	if fg.Spread != "-3.5" {
		t.Errorf("expected spread -3.5, got %q", fg.Spread)
	}
	if fg.Total != "224.5" {
		t.Errorf("expected total 224.5, got %q", fg.Total)
	}
	if fg.HomeMoneyline != "-165" {
		t.Errorf("expected home moneyline -165, got %q", fg.HomeMoneyline)
	}
	if fg.AwayMoneyline != "+140" {
		t.Errorf("expected away moneyline +140, got %q", fg.AwayMoneyline)
	}
	if fg.StartTime != "2025-01-15T19:00:00Z" {
		t.Errorf("unexpected start time %q", fg.StartTime)
	}
}

func TestFormatTruncatesToLimit(t *testing.T) {
	raw := make([]models.RawGame, 15)
	for i := range raw {
		raw[i] = rawGame("", "Home", "Away")
	}

	formatted := Format(raw, 10)
	if len(formatted) != 10 {
		t.Fatalf("expected 10 formatted games, got %d", len(formatted))
	}
}

func TestFormatMissingMarkets(t *testing.T) {
	raw := []models.RawGame{
		{
			ID:           "bare",
			HomeTeam:     "Boston Celtics",
			AwayTeam:     "New York Knicks",
			CommenceTime: time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC),
		},
	}

	formatted := Format(raw, 10)
	if len(formatted) != 1 {
		t.Fatalf("expected 1 formatted game, got %d", len(formatted))
	}

	fg := formatted[0]
	for name, value := range map[string]string{
		"spread":         fg.Spread,
		"total":          fg.Total,
		"home moneyline": fg.HomeMoneyline,
		"away moneyline": fg.AwayMoneyline,
	} {
		if value != models.NotAvailable {
			t.Errorf("%s should be %q when markets are absent, got %q", name, models.NotAvailable, value)
		}
	}
}

func TestFormatAssignsIDWhenMissing(t *testing.T) {
	raw := []models.RawGame{rawGame("", "Home", "Away")}

	formatted := Format(raw, 10)
	if formatted[0].ID == "" {
		t.Error("formatter should assign an ID when the provider omits one")
	}
}

func TestFormatMoneylineRequiresExactNameMatch(t *testing.T) {
	game := rawGame("g1", "Boston Celtics", "New York Knicks")
	// Provider quoted the moneyline under a different spelling.
	game.Bookmakers[0].Markets[2].Outcomes[0].Name = "Celtics"

	formatted := Format([]models.RawGame{game}, 10)
	if formatted[0].HomeMoneyline != models.NotAvailable {
		t.Errorf("inexact team name should yield %q, got %q", models.NotAvailable, formatted[0].HomeMoneyline)
	}
	if formatted[0].AwayMoneyline != "+140" {
		t.Errorf("away moneyline should still match, got %q", formatted[0].AwayMoneyline)
	}
}
