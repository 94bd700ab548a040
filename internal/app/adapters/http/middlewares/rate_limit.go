package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"net/http"
	"time"
)

// RateLimit ограничивает отправки с одного IP: requests за per, с запасом в requests.
func (m *Middlewares) RateLimit(requests int, per time.Duration) gin.HandlerFunc {
	if requests <= 0 || per <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	every := rate.Every(per / time.Duration(requests))
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !m.limiter(ip, every, requests).Allow() {
			m.log.Warn("Submit rate limited", "ip", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func (m *Middlewares) limiter(key string, every rate.Limit, burst int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.limiters.GetIfPresent(key); ok {
		return l
	}

	l := rate.NewLimiter(every, burst)
	m.limiters.Set(key, l)
	return l
}
