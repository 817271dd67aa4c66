package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/BetPredictor/models"
)

// DB represents a database connection
type DB struct {
	*sql.DB
	logger zerolog.Logger
}

// New creates a new database connection. In production deployments the
// connection must use TLS; requireSSL appends sslmode accordingly when the
// DSN does not already pin one. The initial ping retries with exponential
// backoff so the service survives a database that is still starting up.
func New(databaseURL string, requireSSL bool) (*DB, error) {
	dsn := databaseURL
	if !strings.Contains(dsn, "sslmode=") {
		mode := "disable"
		if requireSSL {
			mode = "require"
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "sslmode=" + mode
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(db.Ping, strategy); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &DB{db, log.With().Str("component", "database").Logger()}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS predictions (
			id SERIAL PRIMARY KEY,
			game_id TEXT NOT NULL,
			sport TEXT NOT NULL,
			home_team TEXT NOT NULL,
			away_team TEXT NOT NULL,
			game_time TEXT,
			spread_line TEXT,
			total_line TEXT,
			predicted_home_score DOUBLE PRECISION,
			predicted_away_score DOUBLE PRECISION,
			predicted_spread DOUBLE PRECISION,
			predicted_total DOUBLE PRECISION,
			spread_edge DOUBLE PRECISION,
			total_edge DOUBLE PRECISION,
			home_win_probability DOUBLE PRECISION,
			away_win_probability DOUBLE PRECISION,
			home_kelly_stake DOUBLE PRECISION,
			away_kelly_stake DOUBLE PRECISION,
			recommendation TEXT,
			confidence TEXT,
			rationale TEXT[],
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// SavePredictions appends one row per validated prediction
func (db *DB) SavePredictions(ctx context.Context, bundle *models.PredictionBundle) error {
	for _, game := range bundle.Games {
		_, err := db.ExecContext(ctx, `
			INSERT INTO predictions (
				game_id, sport, home_team, away_team, game_time,
				spread_line, total_line,
				predicted_home_score, predicted_away_score,
				predicted_spread, predicted_total,
				spread_edge, total_edge,
				home_win_probability, away_win_probability,
				home_kelly_stake, away_kelly_stake,
				recommendation, confidence, rationale
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		`,
			game.ID, bundle.Sport, game.HomeTeam, game.AwayTeam, game.GameTime,
			game.Spread, game.Total,
			game.PredictedHomeScore, game.PredictedAwayScore,
			game.PredictedSpread, game.PredictedTotal,
			game.SpreadEdge, game.TotalEdge,
			game.HomeWinProbability, game.AwayWinProbability,
			game.HomeKellyStake, game.AwayKellyStake,
			game.Recommendation, game.Confidence, pq.Array(game.Rationale),
		)
		if err != nil {
			return fmt.Errorf("inserting prediction for game %s: %w", game.ID, err)
		}
	}

	db.logger.Debug().Int("count", len(bundle.Games)).Str("sport", bundle.Sport).Msg("Stored predictions")
	return nil
}

// GetPerformance aggregates stored predictions per sport
func (db *DB) GetPerformance(ctx context.Context) ([]models.SportPerformance, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT sport, COUNT(*), AVG(spread_edge), AVG(total_edge)
		FROM predictions
		GROUP BY sport
		ORDER BY sport
	`)
	if err != nil {
		return nil, fmt.Errorf("querying performance: %w", err)
	}
	defer rows.Close()

	var stats []models.SportPerformance
	for rows.Next() {
		var s models.SportPerformance
		var avgSpread, avgTotal sql.NullFloat64
		if err := rows.Scan(&s.Sport, &s.TotalPredictions, &avgSpread, &avgTotal); err != nil {
			return nil, fmt.Errorf("scanning performance row: %w", err)
		}
		s.AvgSpreadEdge = avgSpread.Float64
		s.AvgTotalEdge = avgTotal.Float64
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
