package formatter

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Alias1177/BetPredictor/models"
)

// Format reduces raw provider records to the uniform shape fed to the
// oracle, truncated to at most limit entries. The cap protects prompt size
// and API cost. Quotations come from the first available bookmaker; any
// missing nested field becomes the NotAvailable sentinel instead of failing
// the whole request.
func Format(raw []models.RawGame, limit int) []models.FormattedGame {
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	formatted := make([]models.FormattedGame, 0, len(raw))
	for _, game := range raw {
		fg := models.FormattedGame{
			ID:            game.ID,
			HomeTeam:      game.HomeTeam,
			AwayTeam:      game.AwayTeam,
			StartTime:     game.CommenceTime.UTC().Format(time.RFC3339),
			Spread:        models.NotAvailable,
			Total:         models.NotAvailable,
			HomeMoneyline: models.NotAvailable,
			AwayMoneyline: models.NotAvailable,
		}
		if fg.ID == "" {
			// The oracle echoes this ID back, so every game needs one even
			// when the provider omits it.
			fg.ID = uuid.NewString()
		}

		if len(game.Bookmakers) > 0 {
			for _, market := range game.Bookmakers[0].Markets {
				switch market.Key {
				case "spreads":
					if len(market.Outcomes) > 0 && market.Outcomes[0].Point != nil {
						fg.Spread = formatPoint(*market.Outcomes[0].Point)
					}
				case "totals":
					if len(market.Outcomes) > 0 && market.Outcomes[0].Point != nil {
						fg.Total = formatPoint(*market.Outcomes[0].Point)
					}
				case "h2h":
					for _, outcome := range market.Outcomes {
						price := formatAmericanPrice(outcome.Price)
						if outcome.Name == game.HomeTeam {
							fg.HomeMoneyline = price
						}
						if outcome.Name == game.AwayTeam {
							fg.AwayMoneyline = price
						}
					}
				}
			}
		}

		formatted = append(formatted, fg)
	}
	return formatted
}

func formatPoint(point float64) string {
	return strconv.FormatFloat(point, 'f', -1, 64)
}

// formatAmericanPrice keeps the conventional leading plus on positive
// American odds so the oracle reads the price the way books quote it
func formatAmericanPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if price > 0 {
		return "+" + s
	}
	return s
}
