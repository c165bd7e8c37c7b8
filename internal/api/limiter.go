package api

import (
	"math"
	"net/http"
	"time"

	"github.com/ethanbaker/lineramind/pkg/sdk"
	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// minLimiterIdle is the shortest time a client's limiter is kept unused
const minLimiterIdle = time.Minute

// Limiter implements per-client rate limiting. A client's limiter is dropped
// after it sits idle long enough for its bucket to refill, so forgetting it
// never grants extra requests.
type Limiter struct {
	limiters     *gocache.Cache
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a limiter allowing requestsPerSecond per client with the
// given burst
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}

	idle := gocache.NoExpiration
	if requestsPerSecond > 0 {
		refill := time.Duration(math.Ceil(float64(burst) / requestsPerSecond * float64(time.Second)))
		idle = max(refill, minLimiterIdle)
	}
	return newLimiter(requestsPerSecond, burst, idle)
}

func newLimiter(requestsPerSecond float64, burst int, idle time.Duration) *Limiter {
	cleanup := idle
	if idle == gocache.NoExpiration {
		cleanup = 0
	}

	return &Limiter{
		limiters:     gocache.New(idle, cleanup),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow reports whether the client may make a request now
func (l *Limiter) Allow(client string) bool {
	return l.getLimiter(client).Allow()
}

// Len returns the number of clients currently tracked
func (l *Limiter) Len() int {
	return l.limiters.ItemCount()
}

// getLimiter returns the rate limiter for a client and restarts its idle timer
func (l *Limiter) getLimiter(client string) *rate.Limiter {
	if val, found := l.limiters.Get(client); found {
		limiter := val.(*rate.Limiter)
		l.limiters.SetDefault(client, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.defaultRate, l.defaultBurst)
	if err := l.limiters.Add(client, limiter, gocache.DefaultExpiration); err != nil {
		// Another request for the same client won the race
		if val, found := l.limiters.Get(client); found {
			return val.(*rate.Limiter)
		}
	}
	return limiter
}

// Handler rejects requests over the limit with 429
func (l *Limiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(sdk.NewErrorResponse(http.StatusTooManyRequests, "Too many requests", "rate limit exceeded").AsGinResponse())
			return
		}
		c.Next()
	}
}
