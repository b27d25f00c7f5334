package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/session"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityFixtures struct {
	middleware   *IdentityMiddleware
	sessions     *session.Manager
	tokenService *mockSvc.MockTokenService
	userUC       *mockUC.MockUserUsecase
}

func createTestIdentityMiddleware(t *testing.T) identityFixtures {
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "storefront-session", MaxAge: 3600}}
	cfg.SecretKey.Session = "0123456789abcdef0123456789abcdef"

	sessions, err := session.NewManager(cfg)
	require.NoError(t, err)

	tokenService := mockSvc.NewMockTokenService(t)
	userUC := mockUC.NewMockUserUsecase(t)

	return identityFixtures{
		middleware: NewIdentityMiddleware(IdentityMiddlewareParams{
			Sessions:     sessions,
			TokenService: tokenService,
			UserUC:       userUC,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		sessions:     sessions,
		tokenService: tokenService,
		userUC:       userUC,
	}
}

// captureCaller runs Resolve and returns the caller seen by the next handler.
func captureCaller(t *testing.T, mw *IdentityMiddleware, req *http.Request) (*entity.CallerIdentity, error) {
	t.Helper()

	var seen *entity.CallerIdentity
	c := echo.New().NewContext(req, httptest.NewRecorder())
	err := mw.Resolve(func(c echo.Context) error {
		seen = deliverycontext.GetCaller(c)
		assert.Equal(t, seen, deliverycontext.GetCallerFromContext(c.Request().Context()))

		return nil
	})(c)

	return seen, err
}

func TestIdentityMiddleware_Resolve_Anonymous(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	caller, err := captureCaller(t, fx.middleware, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Nil(t, caller)
}

func TestIdentityMiddleware_Resolve_SessionCookieWins(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	loginRec := httptest.NewRecorder()
	loginCtx := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), loginRec)
	require.NoError(t, fx.sessions.Login(loginCtx, user))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range loginRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer ignored")

	expected := &entity.CallerIdentity{UserID: user.ID, Email: user.Email, Role: entity.RoleUser}
	fx.userUC.EXPECT().ResolveCaller(mock.Anything, user.ID, user.Email).Return(expected, nil)

	caller, err := captureCaller(t, fx.middleware, req)
	require.NoError(t, err)
	assert.Equal(t, expected, caller)
	fx.tokenService.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestIdentityMiddleware_Resolve_BearerToken(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")

	expected := &entity.CallerIdentity{UserID: userID, Email: "ana@example.com", Role: entity.RoleUser}
	fx.tokenService.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID, Email: "ana@example.com"}, nil)
	fx.userUC.EXPECT().ResolveCaller(mock.Anything, userID, "ana@example.com").Return(expected, nil)

	caller, err := captureCaller(t, fx.middleware, req)
	require.NoError(t, err)
	assert.Equal(t, expected, caller)
}

func TestIdentityMiddleware_Resolve_InvalidTokenIsAnonymous(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	fx.tokenService.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	caller, err := captureCaller(t, fx.middleware, req)
	require.NoError(t, err)
	assert.Nil(t, caller)
}

func TestIdentityMiddleware_Resolve_DeletedAccountIsAnonymous(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
	fx.tokenService.EXPECT().ValidateToken("stale").Return(&service.Claims{UserID: userID}, nil)
	fx.userUC.EXPECT().ResolveCaller(mock.Anything, userID, "").Return(nil, domainerrors.ErrUnauthorized)

	caller, err := captureCaller(t, fx.middleware, req)
	require.NoError(t, err)
	assert.Nil(t, caller)
}

func TestIdentityMiddleware_Resolve_LookupFailure(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	fx.tokenService.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)
	fx.userUC.EXPECT().ResolveCaller(mock.Anything, userID, "").Return(nil, errors.New("db down"))

	_, err := captureCaller(t, fx.middleware, req)
	assert.Error(t, err)
}

func TestIdentityMiddleware_RequireCaller(t *testing.T) {
	fx := createTestIdentityMiddleware(t)

	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	anonymous := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := fx.middleware.RequireCaller(next)(anonymous)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	rec := httptest.NewRecorder()
	known := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetCaller(known, &entity.CallerIdentity{UserID: uuid.New()})
	require.NoError(t, fx.middleware.RequireCaller(next)(known))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
