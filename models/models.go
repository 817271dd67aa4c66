package models

import (
	"time"
)

// NotAvailable is the sentinel used for any market value missing from the
// provider payload, so the prompt always carries a complete, uniform shape.
const NotAvailable = "N/A"

// RawGame represents a single event returned by The Odds API
type RawGame struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker holds one market maker's quotations for a game
type Bookmaker struct {
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	LastUpdate time.Time `json:"last_update"`
	Markets    []Market  `json:"markets"`
}

// Market is a single market (spreads, totals, h2h) with its outcomes
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one side of a market quotation. Point is nil for moneyline.
type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// FormattedGame is the reduced game shape embedded in the oracle prompt.
// Every field is always populated; missing data becomes NotAvailable.
type FormattedGame struct {
	ID            string `json:"id"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	StartTime     string `json:"start_time"`
	Spread        string `json:"spread"`
	Total         string `json:"total"`
	HomeMoneyline string `json:"home_moneyline"`
	AwayMoneyline string `json:"away_moneyline"`
}

// PredictionRecord is one validated oracle prediction for a single game
type PredictionRecord struct {
	ID                 string   `json:"id"`
	HomeTeam           string   `json:"home_team"`
	AwayTeam           string   `json:"away_team"`
	GameTime           string   `json:"game_time"`
	Spread             string   `json:"spread"`
	Total              string   `json:"total"`
	PredictedHomeScore float64  `json:"predicted_home_score"`
	PredictedAwayScore float64  `json:"predicted_away_score"`
	PredictedSpread    float64  `json:"predicted_spread"`
	PredictedTotal     float64  `json:"predicted_total"`
	SpreadEdge         float64  `json:"spread_edge"`
	TotalEdge          float64  `json:"total_edge"`
	HomeWinProbability float64  `json:"home_win_probability"`
	AwayWinProbability float64  `json:"away_win_probability"`
	HomeKellyStake     float64  `json:"home_kelly_stake"`
	AwayKellyStake     float64  `json:"away_kelly_stake"`
	Recommendation     string   `json:"recommendation"`
	Confidence         string   `json:"confidence"`
	Rationale          []string `json:"rationale"`
}

// PredictionBundle is the validated oracle response and the HTTP response body
type PredictionBundle struct {
	Games       []PredictionRecord `json:"games"`
	LastUpdated string             `json:"last_updated"`
	Sport       string             `json:"sport"`
	Message     string             `json:"message,omitempty"`
}

// SportPerformance aggregates stored predictions for one sport
type SportPerformance struct {
	Sport            string  `json:"sport"`
	TotalPredictions int     `json:"total_predictions"`
	AvgSpreadEdge    float64 `json:"avg_spread_edge"`
	AvgTotalEdge     float64 `json:"avg_total_edge"`
}
