package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// rateLimit gates requests per client IP through the fixed-window limiter
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := s.limiter.Allow(c.ClientIP())
		if !allowed {
			s.metrics.RateLimitDenials.Inc()
			s.logger.Warn().Str("client", c.ClientIP()).Int("retry_after_minutes", retryAfter).Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Rate limit exceeded. Max %d requests per hour. Try again in %d minutes.", s.limiter.Max(), retryAfter),
			})
			return
		}
		c.Next()
	}
}
