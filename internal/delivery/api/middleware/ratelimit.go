package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/delivery/api/response"
	domainerrors "cleanrecord/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultBookingsPerMinute = 10
	defaultBookingBurst      = 5
	limiterCleanupInterval   = 5 * time.Minute
)

type callerLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per caller.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu       sync.Mutex
	limiters map[string]*callerLimiter

	logger *slog.Logger
}

// NewBookingRateLimiter builds the limiter guarding booking creation from booking.rateLimit.
func NewBookingRateLimiter(cfg *config.Config, logger *slog.Logger) *RateLimiter {
	perMinute := float64(defaultBookingsPerMinute)
	burst := defaultBookingBurst
	if cfg.Booking != nil {
		if cfg.Booking.RateLimit.RequestsPerMinute > 0 {
			perMinute = cfg.Booking.RateLimit.RequestsPerMinute
		}
		if cfg.Booking.RateLimit.Burst > 0 {
			burst = cfg.Booking.RateLimit.Burst
		}
	}

	return NewRateLimiter(rate.Limit(perMinute/60), burst, logger)
}

// NewRateLimiter creates a per-caller limiter allowing limit events per second with the given burst.
func NewRateLimiter(limit rate.Limit, burst int, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		burst:    burst,
		now:      time.Now,
		limiters: make(map[string]*callerLimiter),
		logger:   logger,
	}
}

// Limit rejects the request with 429 once the caller's bucket is empty. It must run after Authenticate.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		if !rl.allow(userID) {
			c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			rl.logger.Warn("Rate limit exceeded",
				slog.String("user_id", userID),
				slog.String("path", c.Path()),
			)

			return response.HandleAppError(c, domainerrors.ErrBookingRateLimited)
		}

		return next(c)
	}
}

// Size returns the number of tracked callers.
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) allow(userID string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[userID]
	if !ok {
		entry = &callerLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = entry
	}
	entry.lastAccess = now

	return entry.limiter.AllowN(now, 1)
}

// Cleanup drops callers idle for longer than twice the cleanup interval.
func (rl *RateLimiter) Cleanup() {
	ttl := 2 * limiterCleanupInterval
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for userID, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > ttl {
			delete(rl.limiters, userID)
		}
	}
}

// Run cleans idle callers until done is closed.
func (rl *RateLimiter) Run(done <-chan struct{}) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-done:
			return
		}
	}
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}

	return max(1, int(math.Ceil(1/float64(rl.limit))))
}
