package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/monitoring"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/ratelimit"
)

// RateLimit считает запросы по паре (клиент, маршрут) в фиксированном окне.
func RateLimit(limiter *ratelimit.Limiter) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		if !limiter.Allow(c.ClientIP() + " " + route) {
			monitoring.TrackRateLimited()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
