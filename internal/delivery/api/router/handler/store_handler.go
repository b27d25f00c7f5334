package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers
type StoreHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SetStoreStatusRequest toggles a store open or closed
type SetStoreStatusRequest struct {
	IsOpen *bool `json:"isOpen" validate:"required"`
}

// FindStores resolves a store by slug, or filters stores by city and state.
func (h *StoreHandler) FindStores(c echo.Context) error {
	query := usecase.StoreQuery{
		Slug:  c.QueryParam("slug"),
		City:  c.QueryParam("city"),
		State: c.QueryParam("state"),
	}

	stores, err := h.catalogUC.FindStores(c.Request().Context(), deliverycontext.GetCaller(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"stores": stores})
}

// GetMyStores lists the stores owned by the caller.
func (h *StoreHandler) GetMyStores(c echo.Context) error {
	stores, err := h.catalogUC.GetMyStores(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"stores": stores})
}

// CreateStore handles store creation
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req usecase.StoreInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.catalogUC.CreateStore(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"store": store})
}

// UpdateStore handles store updates by its owner
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req usecase.StoreInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.catalogUC.UpdateStore(c.Request().Context(), deliverycontext.GetCaller(c), storeID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"store": store})
}

// DeleteStore handles store deletion by its owner
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.catalogUC.DeleteStore(c.Request().Context(), deliverycontext.GetCaller(c), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Loja removida"})
}

// SetStoreStatus opens or closes a store
func (h *StoreHandler) SetStoreStatus(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req SetStoreStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	store, err := h.catalogUC.SetStoreOpen(c.Request().Context(), deliverycontext.GetCaller(c), storeID, *req.IsOpen)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"store": store})
}

// GetStoreQRCode returns the PNG QR code pointing at the public store page
func (h *StoreHandler) GetStoreQRCode(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	png, err := h.catalogUC.GetStoreQRCode(c.Request().Context(), deliverycontext.GetCaller(c), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
