package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest asks for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ListOrders lists orders, or returns a single one when orderId is given.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	caller := deliverycontext.GetCaller(c)

	orderID, ok := queryID(c, "orderId")
	if !ok {
		return invalidID(c)
	}
	if orderID != uuid.Nil {
		order, err := h.orderUC.GetOrder(ctx, caller, orderID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{"order": order})
	}

	storeID, ok := queryID(c, "storeId")
	if !ok {
		return invalidID(c)
	}
	asStore, _ := strconv.ParseBool(c.QueryParam("asStore"))

	orders, err := h.orderUC.ListOrders(ctx, caller, usecase.OrderQuery{StoreID: storeID, AsStore: asStore})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders})
}

// Checkout places an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req usecase.CheckoutInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"order": order})
}

// UpdateStatus moves an order to its next status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// Unknown targets are rejected by the transition check, after ownership.
	target := entity.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), deliverycontext.GetCaller(c), orderID, target)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"order": order})
}
