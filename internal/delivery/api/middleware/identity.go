package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/session"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// IdentityMiddlewareParams holds dependencies for IdentityMiddleware, injected by Fx.
type IdentityMiddlewareParams struct {
	fx.In

	Sessions     *session.Manager
	TokenService service.TokenService
	UserUC       usecase.UserUsecase
	Logger       *slog.Logger
}

// IdentityMiddleware resolves who is calling, once per request.
type IdentityMiddleware struct {
	sessions     *session.Manager
	tokenService service.TokenService
	userUC       usecase.UserUsecase
	logger       *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(params IdentityMiddlewareParams) *IdentityMiddleware {
	return &IdentityMiddleware{
		sessions:     params.Sessions,
		tokenService: params.TokenService,
		userUC:       params.UserUC,
		logger:       params.Logger,
	}
}

// Resolve attaches the caller to the request when a session cookie or bearer
// token identifies one. Requests without credentials continue anonymously.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, email, ok := m.credentials(c)
		if !ok {
			return next(c)
		}

		caller, err := m.userUC.ResolveCaller(c.Request().Context(), userID, email)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return next(c)
			}

			return errors.Wrap(err, "failed to resolve caller")
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}

// credentials reads the session cookie first and the bearer token second.
func (m *IdentityMiddleware) credentials(c echo.Context) (uuid.UUID, string, bool) {
	if identity, ok := m.sessions.Read(c); ok {
		return identity.UserID, identity.Email, true
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return uuid.Nil, "", false
	}

	claims, err := m.tokenService.ValidateToken(tokenString)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected bearer token", slog.Any("error", err))

		return uuid.Nil, "", false
	}

	return claims.UserID, claims.Email, true
}

// RequireCaller rejects anonymous requests. It must run after Resolve.
func (m *IdentityMiddleware) RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetCaller(c).IsAnonymous() {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
