package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Alias1177/BetPredictor/internal/formatter"
	"github.com/Alias1177/BetPredictor/internal/oracle"
	"github.com/Alias1177/BetPredictor/models"
)

type predictionRequest struct {
	Sport string `json:"sport" binding:"required"`
}

// handlePredictions runs the full pipeline for one request: fetch odds
// (cache-checked), filter, format, ask the oracle, validate, persist.
func (s *Server) handlePredictions(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sport is required"})
		return
	}

	sport := strings.ToLower(strings.TrimSpace(req.Sport))
	bundle, err := s.predict(c.Request.Context(), sport)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (s *Server) predict(ctx context.Context, sport string) (*models.PredictionBundle, error) {
	games, err := s.odds.FetchGames(ctx, sport)
	if err != nil {
		return nil, err
	}

	if sport == "ncaab" {
		games = s.roster.Apply(games)
		if len(games) == 0 {
			return s.emptyBundle(sport, "no games involving ranked teams were found"), nil
		}
	}
	if len(games) == 0 {
		return s.emptyBundle(sport, "no upcoming games were found"), nil
	}

	formatted := formatter.Format(games, s.maxGames)
	inputIDs := make([]string, len(formatted))
	for i, game := range formatted {
		inputIDs[i] = game.ID
	}

	prompt := oracle.BuildPrompt(sport, formatted)
	start := time.Now()
	raw, err := s.oracle.GenerateCompletion(ctx, prompt)
	s.metrics.OracleLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamErrors.WithLabelValues("openai").Inc()
		return nil, err
	}

	bundle, err := s.extractor.Extract(raw, inputIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("sport", sport).Msg("Oracle response rejected")
		return nil, err
	}

	bundle.Sport = strings.ToUpper(sport)
	if bundle.LastUpdated == "" {
		bundle.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	}

	// A failed write must not fail the request; the predictions are
	// already computed and still go back to the caller.
	if s.store != nil {
		if err := s.store.SavePredictions(ctx, bundle); err != nil {
			s.metrics.PersistFailures.Inc()
			s.logger.Warn().Err(err).Str("sport", sport).Msg("Failed to persist predictions")
		}
	}

	s.metrics.PredictionsServed.WithLabelValues(bundle.Sport).Inc()
	return bundle, nil
}

func (s *Server) emptyBundle(sport, message string) *models.PredictionBundle {
	return &models.PredictionBundle{
		Games:       []models.PredictionRecord{},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Sport:       strings.ToUpper(sport),
		Message:     message,
	}
}

// respondError maps error kinds to HTTP status codes. Every error body has
// the same {"error": ...} shape.
func (s *Server) respondError(c *gin.Context, err error) {
	var upstreamErr *models.UpstreamError
	var parseErr *models.ParseError
	var schemaErr *models.SchemaError

	switch {
	case errors.Is(err, models.ErrInvalidSport):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.As(err, &parseErr), errors.As(err, &schemaErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// handlePerformance returns aggregated per-sport statistics from the
// prediction store
func (s *Server) handlePerformance(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persistence is not configured"})
		return
	}

	stats, err := s.store.GetPerformance(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load performance stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load performance statistics"})
		return
	}
	if stats == nil {
		stats = []models.SportPerformance{}
	}

	c.JSON(http.StatusOK, gin.H{"performance": stats})
}

// handleHealth is the liveness probe
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
