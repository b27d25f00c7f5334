package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/session"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	Sessions *session.Manager
	Logger   *slog.Logger
}

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	userUC   usecase.UserUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:   params.UserUC,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"user": user})
}

// Login verifies credentials, starts a browser session and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessions.Login(c, output.User); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, output)
}

// Logout ends the browser session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sessão encerrada"})
}
