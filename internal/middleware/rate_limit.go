package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[key]
	if !ok {
		// 200 requests per minute per client, small burst headroom
		l = rate.NewLimiter(rate.Every(time.Minute/200), 20)
		s.limiters[key] = l
	}
	return l
}

// RateLimitMiddleware limits per client IP.
func RateLimitMiddleware() gin.HandlerFunc {
	store := &limiterStore{limiters: make(map[string]*rate.Limiter)}

	return func(c *gin.Context) {
		if !store.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "rate_limited",
				"message":    "Too many requests, slow down.",
			})
			return
		}
		c.Next()
	}
}
