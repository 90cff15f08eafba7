package middlewares

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/exceptions"
	"arena-scheduler-service/internal/pkg/utils"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket. A client that drains its bucket is
// blocked for blockTime.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, burst int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		retryAfter, allowed := rl.allow(ip)
		if !allowed {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			rl.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			secs := int(math.Ceil(retryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil, secs))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return blockedUntil.Sub(now), false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rl.per), rl.burst)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return rl.blockTime, false
	}
	return 0, true
}
