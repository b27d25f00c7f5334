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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// UpdateCartItemRequest sets the quantity of a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart, or null when there is none
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartUC.GetCart(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"cart": cart})
}

// AddItem adds a product to the caller's cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddCartItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"cart": cart})
}

// ClearCart empties the caller's cart, optionally only for one store
func (h *CartHandler) ClearCart(c echo.Context) error {
	storeID, ok := queryID(c, "storeId")
	if !ok {
		return invalidID(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), deliverycontext.GetCaller(c), storeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"cart": nil})
}

// UpdateItem overwrites the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return invalidID(c)
	}

	var req UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), deliverycontext.GetCaller(c), itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"cart": cart})
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return invalidID(c)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), deliverycontext.GetCaller(c), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"cart": cart})
}
