package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/session"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Sessions  *session.Manager
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	sessions  *session.Manager
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's account
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.profileUC.GetProfile(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile edits the caller's personal data
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user})
}

// DeleteProfile removes the caller's account and ends the session
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	if err := h.profileUC.DeleteProfile(c.Request().Context(), deliverycontext.GetCaller(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessions.Clear(c); err != nil {
		h.logger.Warn("Failed to clear session after account deletion", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Conta removida"})
}
