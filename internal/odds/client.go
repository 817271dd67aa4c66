package odds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Alias1177/BetPredictor/internal/cache"
	"github.com/Alias1177/BetPredictor/internal/metrics"
	"github.com/Alias1177/BetPredictor/models"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com/v4"
	regions        = "us"
	marketKeys     = "spreads,totals,h2h"
)

// sportKeys maps internal sport codes to The Odds API sport identifiers
var sportKeys = map[string]string{
	"nba":   "basketball_nba",
	"nfl":   "americanfootball_nfl",
	"mlb":   "baseball_mlb",
	"nhl":   "icehockey_nhl",
	"ncaab": "basketball_ncaab",
}

// SupportedSport reports whether code maps to a provider sport
func SupportedSport(code string) bool {
	_, ok := sportKeys[code]
	return ok
}

// Client fetches betting lines from The Odds API with a client-side rate
// limiter and a TTL cache in front of the upstream
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *cache.Cache[[]models.RawGame]
	metrics    *metrics.Metrics
	apiKey     string
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a new odds API client with rate limiting
func NewClient(apiKey string, timeout time.Duration, gameCache *cache.Cache[[]models.RawGame], m *metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5), // 5 requests per second
		cache:      gameCache,
		metrics:    m,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		logger:     log.With().Str("component", "odds_client").Logger(),
	}
}

// FetchGames returns current betting lines for an internal sport code.
// Results are cached per sport; an unrecognized code fails before any
// network call. A single failed upstream call surfaces immediately, there
// is no retry.
func (c *Client) FetchGames(ctx context.Context, sport string) ([]models.RawGame, error) {
	sportKey, ok := sportKeys[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidSport, sport)
	}

	cacheKey := "odds_" + sport
	if games, hit := c.cache.Get(cacheKey); hit {
		c.metrics.CacheHits.Inc()
		c.logger.Debug().Str("sport", sport).Int("count", len(games)).Msg("Serving games from cache")
		return games, nil
	}
	c.metrics.CacheMisses.Inc()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", regions)
	params.Set("markets", marketKeys)
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")
	fullURL := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, sportKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamErrors.WithLabelValues("odds_api").Inc()
		return nil, &models.UpstreamError{Service: "odds api", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamErrors.WithLabelValues("odds_api").Inc()
		c.logger.Error().Int("status", resp.StatusCode).Str("sport", sport).Msg("Odds API returned non-200 status")
		return nil, &models.UpstreamError{Service: "odds api", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var games []models.RawGame
	if err := json.Unmarshal(body, &games); err != nil {
		c.logger.Error().Err(err).Msg("Error parsing odds response")
		return nil, fmt.Errorf("parsing odds response: %w", err)
	}

	c.cache.Set(cacheKey, games)
	c.logger.Debug().Str("sport", sport).Int("count", len(games)).Msg("Fetched games")
	return games, nil
}
