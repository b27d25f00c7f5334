package context

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCaller is the key for storing the resolved caller identity.
const KeyCaller ContextKey = "caller"

// SetCaller stores the caller in both echo.Context and the request context.
func SetCaller(c echo.Context, caller *entity.CallerIdentity) {
	c.Set(string(KeyCaller), caller)
	c.SetRequest(c.Request().WithContext(WithCaller(c.Request().Context(), caller)))
}

// GetCaller returns the caller attached by the identity middleware.
// Anonymous requests yield nil.
func GetCaller(c echo.Context) *entity.CallerIdentity {
	if caller, ok := c.Get(string(KeyCaller)).(*entity.CallerIdentity); ok {
		return caller
	}

	return nil
}

// WithCaller returns a new context carrying the caller.
func WithCaller(ctx context.Context, caller *entity.CallerIdentity) context.Context {
	return context.WithValue(ctx, KeyCaller, caller)
}

// GetCallerFromContext extracts the caller from standard context.Context.
func GetCallerFromContext(ctx context.Context) *entity.CallerIdentity {
	if caller, ok := ctx.Value(KeyCaller).(*entity.CallerIdentity); ok {
		return caller
	}

	return nil
}
