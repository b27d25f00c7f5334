package handler

import (
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthRoutes(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "storefront-session", MaxAge: 3600}}
	cfg.SecretKey.Session = "0123456789abcdef0123456789abcdef"

	sessions, err := session.NewManager(cfg)
	require.NoError(t, err)

	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{UserUC: userUC, Sessions: sessions, Logger: newDiscardLogger()})

	e := newTestEcho(nil)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/logout", h.Logout)

	return e, userUC
}

func TestAuthHandler_Register(t *testing.T) {
	e, userUC := createTestAuthRoutes(t)

	userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"}).
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com"}, nil)

	rec := serve(e, http.MethodPost, "/api/auth/register", `{"name":"Ana","email":"ana@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	e, _ := createTestAuthRoutes(t)

	rec := serve(e, http.MethodPost, "/api/auth/register", `{"name":"Ana","email":"ana","password":"s3cret-pass"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []any{"email deve ser um email válido"}, decodeError(t, rec).Details)
}

func TestAuthHandler_Login_StartsSession(t *testing.T) {
	e, userUC := createTestAuthRoutes(t)

	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "s3cret-pass"}).
		Return(&usecase.LoginOutput{User: user, AccessToken: "jwt"}, nil)

	rec := serve(e, http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeData(t, rec)["accessToken"]), "jwt")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "storefront-session", cookies[0].Name)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, userUC := createTestAuthRoutes(t)

	userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := serve(e, http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout(t *testing.T) {
	e, _ := createTestAuthRoutes(t)

	rec := serve(e, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}
