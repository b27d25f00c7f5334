package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_DeniesAfterBurst(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = &config.RateLimitConfig{Rate: 0.001, Burst: 2, ExpiresIn: time.Minute}

	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, NewRateLimiter(cfg))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_SeparatesClients(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = &config.RateLimitConfig{Rate: 0.001, Burst: 1, ExpiresIn: time.Minute}

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, NewRateLimiter(cfg))

	for _, addr := range []string{"203.0.113.7:5000", "198.51.100.2:5000"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code, addr)
	}
}
