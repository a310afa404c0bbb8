package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func serveLimited(rl *RateLimiter, userID string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/bookings", nil), rec)
	if userID != "" {
		SetIdentity(c, &entity.Identity{Subject: userID})
	}

	_ = rl.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})(c)

	return rec
}

func TestRateLimiter_PerCallerBuckets(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2, discardLogger())

	assert.Equal(t, http.StatusCreated, serveLimited(rl, "alice").Code)
	assert.Equal(t, http.StatusCreated, serveLimited(rl, "alice").Code)

	rec := serveLimited(rl, "alice")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")

	// Another caller has an independent bucket
	assert.Equal(t, http.StatusCreated, serveLimited(rl, "bob").Code)
	assert.Equal(t, 2, rl.Size())
}

func TestRateLimiter_RequiresCaller(t *testing.T) {
	rl := NewRateLimiter(rate.Inf, 1, discardLogger())

	assert.Equal(t, http.StatusUnauthorized, serveLimited(rl, "").Code)
}

func TestRateLimiter_CleanupDropsIdleCallers(t *testing.T) {
	rl := NewRateLimiter(rate.Inf, 1, discardLogger())
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return start }

	serveLimited(rl, "alice")
	assert.Equal(t, 1, rl.Size())

	rl.now = func() time.Time { return start.Add(3 * limiterCleanupInterval) }
	rl.Cleanup()
	assert.Equal(t, 0, rl.Size())
}

func TestNewBookingRateLimiter_Config(t *testing.T) {
	rl := NewBookingRateLimiter(&config.Config{
		Booking: &config.BookingConfig{RateLimit: config.RateLimitConfig{RequestsPerMinute: 30, Burst: 3}},
	}, discardLogger())

	assert.InDelta(t, 0.5, float64(rl.limit), 0.0001)
	assert.Equal(t, 3, rl.burst)
	assert.Equal(t, 2, rl.retryAfterSeconds())

	defaults := NewBookingRateLimiter(&config.Config{}, discardLogger())
	assert.Equal(t, defaultBookingBurst, defaults.burst)
}
