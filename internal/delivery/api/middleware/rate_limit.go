package middleware

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit     = 1
	defaultRateBurst     = 5
	defaultRateExpiresIn = 3 * time.Minute
)

// NewRateLimiter limits requests per client IP using an in-memory token bucket.
func NewRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	storeCfg := echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(defaultRateLimit),
		Burst:     defaultRateBurst,
		ExpiresIn: defaultRateExpiresIn,
	}
	if rl := cfg.HTTP.RateLimit; rl != nil {
		if rl.Rate > 0 {
			storeCfg.Rate = rate.Limit(rl.Rate)
		}
		if rl.Burst > 0 {
			storeCfg.Burst = rl.Burst
		}
		if rl.ExpiresIn > 0 {
			storeCfg.ExpiresIn = rl.ExpiresIn
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(storeCfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "RATE_LIMIT_IDENTIFIER", "Não foi possível identificar o cliente", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Muitas tentativas, tente novamente em instantes", nil)
		},
	})
}
