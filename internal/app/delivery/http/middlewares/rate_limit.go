package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-IP limiter applied to every route and
// the stricter one applied to authenticated writes.
func (m *Middlewares) CreateRateLimiters() (readLimiter, writeLimiter func(next http.Handler) http.Handler) {
	readLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)

	perMinute := m.InternalConfig.App.WriteRateLimitPerMinute
	if perMinute <= 0 {
		return readLimiter, func(next http.Handler) http.Handler { return next }
	}
	blockTime := time.Duration(m.InternalConfig.App.WriteRateLimitBlockTime) * time.Second
	writeLimiter = NewRateLimiter(m.Log, perMinute, time.Minute/time.Duration(perMinute), blockTime).Limit
	return readLimiter, writeLimiter
}
