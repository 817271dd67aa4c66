package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/BetPredictor/internal/cache"
	"github.com/Alias1177/BetPredictor/internal/config"
	"github.com/Alias1177/BetPredictor/internal/database"
	"github.com/Alias1177/BetPredictor/internal/extract"
	"github.com/Alias1177/BetPredictor/internal/metrics"
	"github.com/Alias1177/BetPredictor/internal/odds"
	"github.com/Alias1177/BetPredictor/internal/oracle"
	"github.com/Alias1177/BetPredictor/internal/ratelimit"
	"github.com/Alias1177/BetPredictor/internal/roster"
	"github.com/Alias1177/BetPredictor/internal/server"
	"github.com/Alias1177/BetPredictor/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	if cfg.OddsAPIKey == "" {
		log.Fatal().Msg("ODDS_API_KEY not set in environment")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY not set in environment")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	gameCache := cache.New[[]models.RawGame](cfg.CacheTTL)
	oddsClient := odds.NewClient(cfg.OddsAPIKey, time.Duration(cfg.RequestTimeout)*time.Second, gameCache, m)
	oracleClient := oracle.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OracleMaxTokens)

	extractor, err := extract.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compile prediction schema")
	}

	limiter := ratelimit.New(cfg.RateLimitMax, cfg.RateLimitWindow)
	limiter.StartJanitor(ctx, 10*time.Minute)

	var store models.PredictionStore
	if cfg.DatabaseURL != "" {
		db, err := database.New(cfg.DatabaseURL, cfg.IsProduction())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		defer db.Close()
		store = db
		log.Info().Msg("Prediction persistence enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, predictions will not be persisted")
	}

	srv := server.New(server.Deps{
		Limiter:   limiter,
		Odds:      oddsClient,
		Oracle:    oracleClient,
		Extractor: extractor,
		Roster:    roster.New(),
		Store:     store,
		Metrics:   m,
		MaxGames:  cfg.MaxGamesPerRequest,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("Server listening")

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
