package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"pet-agent-service/pkg/response"
)

// RateLimit throttles per client IP. Turns are model-call heavy, so the
// limit protects the provider quota rather than the server itself.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := mw.limiter.Allow(c.ClientIP()); err != nil {
			mw.l.Warnf(c.Request.Context(), "rate limit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per source in an expiring LRU so idle
// clients age out on their own.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, time.Minute*5),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
