package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/BetPredictor/internal/extract"
	"github.com/Alias1177/BetPredictor/internal/metrics"
	"github.com/Alias1177/BetPredictor/internal/ratelimit"
	"github.com/Alias1177/BetPredictor/internal/roster"
	"github.com/Alias1177/BetPredictor/models"
)

// Deps bundles everything the server needs. Store may be nil, which
// disables persistence and the /performance endpoint.
type Deps struct {
	Limiter   *ratelimit.Limiter
	Odds      models.OddsClient
	Oracle    models.CompletionClient
	Extractor *extract.Extractor
	Roster    *roster.Filter
	Store     models.PredictionStore
	Metrics   *metrics.Metrics
	MaxGames  int
}

// Server exposes the prediction pipeline over HTTP
type Server struct {
	router    *gin.Engine
	limiter   *ratelimit.Limiter
	odds      models.OddsClient
	oracle    models.CompletionClient
	extractor *extract.Extractor
	roster    *roster.Filter
	store     models.PredictionStore
	metrics   *metrics.Metrics
	maxGames  int
	logger    zerolog.Logger
}

// New builds the router and its handlers
func New(deps Deps) *Server {
	s := &Server{
		limiter:   deps.Limiter,
		odds:      deps.Odds,
		oracle:    deps.Oracle,
		extractor: deps.Extractor,
		roster:    deps.Roster,
		store:     deps.Store,
		metrics:   deps.Metrics,
		maxGames:  deps.MaxGames,
		logger:    log.With().Str("component", "server").Logger(),
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/predictions", s.rateLimit(), s.handlePredictions)
	router.GET("/performance", s.handlePerformance)
	router.GET("/health", s.handleHealth)
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	s.router = router
	return s
}

// Router returns the configured HTTP handler
func (s *Server) Router() *gin.Engine {
	return s.router
}
