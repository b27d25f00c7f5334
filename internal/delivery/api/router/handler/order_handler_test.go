package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderRoutes(t *testing.T, caller *entity.CallerIdentity) (*echo.Echo, *mockUC.MockOrderUsecase) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()})

	e := newTestEcho(caller)
	e.GET("/api/orders", h.ListOrders)
	e.POST("/api/orders", h.Checkout)
	e.PATCH("/api/orders/:id", h.UpdateStatus)

	return e, orderUC
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	caller := newCaller()
	orderID := uuid.New()

	tests := []struct {
		name   string
		body   string
		target entity.OrderStatus
		err    error
		status int
		code   string
	}{
		{
			name:   "advances",
			body:   `{"status":"confirmed"}`,
			target: entity.OrderStatusConfirmed,
			status: http.StatusOK,
		},
		{
			name:   "status is normalized before the usecase",
			body:   `{"status":" Preparing "}`,
			target: entity.OrderStatusPreparing,
			status: http.StatusOK,
		},
		{
			name:   "unknown status reaches the usecase so ownership is checked first",
			body:   `{"status":"shipped"}`,
			target: entity.OrderStatus("shipped"),
			err:    domainerrors.ErrForbidden,
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{
			name:   "invalid transition",
			body:   `{"status":"completed"}`,
			target: entity.OrderStatusCompleted,
			err:    domainerrors.ErrInvalidStatusTransition,
			status: http.StatusBadRequest,
			code:   "INVALID_STATUS_TRANSITION",
		},
		{
			name:   "lost race",
			body:   `{"status":"confirmed"}`,
			target: entity.OrderStatusConfirmed,
			err:    domainerrors.ErrOrderStatusChanged,
			status: http.StatusConflict,
			code:   "ORDER_STATUS_CHANGED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, orderUC := createTestOrderRoutes(t, caller)

			call := orderUC.EXPECT().UpdateStatus(mock.Anything, caller, orderID, tt.target)
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(entity.NewOrderView(&entity.Order{ID: orderID, Status: tt.target}), nil)
			}

			rec := serve(e, http.MethodPatch, "/api/orders/"+orderID.String(), tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, rec).Code)
			}
		})
	}
}

func TestOrderHandler_UpdateStatus_BadRequests(t *testing.T) {
	e, _ := createTestOrderRoutes(t, newCaller())

	rec := serve(e, http.MethodPatch, "/api/orders/not-a-uuid", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeInvalidInput, decodeError(t, rec).Code)
}

func TestOrderHandler_UpdateStatus_MissingStatusFromNonOwner(t *testing.T) {
	caller := newCaller()
	orderID := uuid.New()

	for _, body := range []string{`{}`, `{"status":""}`} {
		t.Run(body, func(t *testing.T) {
			e, orderUC := createTestOrderRoutes(t, caller)

			orderUC.EXPECT().
				UpdateStatus(mock.Anything, caller, orderID, entity.OrderStatus("")).
				Return(nil, domainerrors.ErrForbidden)

			rec := serve(e, http.MethodPatch, "/api/orders/"+orderID.String(), body)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
		})
	}
}

func TestOrderHandler_Checkout(t *testing.T) {
	caller := newCaller()
	e, orderUC := createTestOrderRoutes(t, caller)

	storeID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	orderUC.EXPECT().
		Checkout(mock.Anything, caller, mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
			return input.StoreID == storeID &&
				len(input.Items) == 1 &&
				input.Items[0].ProductID == productID &&
				input.Items[0].Price.Equal(decimal.RequireFromString("12.5"))
		})).
		Return(entity.NewOrderView(&entity.Order{ID: orderID, StoreID: storeID, Status: entity.OrderStatusPending}), nil)

	body := `{"storeId":"` + storeID.String() + `","items":[{"productId":"` + productID.String() + `","name":"Pizza","price":"12.5","quantity":2}],"paymentMethod":"pix"}`
	rec := serve(e, http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeData(t, rec)["order"]), orderID.String())
}

func TestOrderHandler_Checkout_ValidationFromUsecase(t *testing.T) {
	e, orderUC := createTestOrderRoutes(t, newCaller())

	orderUC.EXPECT().
		Checkout(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError("Carrinho vazio"))

	rec := serve(e, http.MethodPost, "/api/orders", `{"items":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, []any{"Carrinho vazio"}, info.Details)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	caller := newCaller()

	t.Run("single order", func(t *testing.T) {
		e, orderUC := createTestOrderRoutes(t, caller)

		orderID := uuid.New()
		orderUC.EXPECT().GetOrder(mock.Anything, caller, orderID).Return(entity.NewOrderView(&entity.Order{ID: orderID}), nil)

		rec := serve(e, http.MethodGet, "/api/orders?orderId="+orderID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeData(t, rec), "order")
	})

	t.Run("store orders", func(t *testing.T) {
		e, orderUC := createTestOrderRoutes(t, caller)

		storeID := uuid.New()
		orderUC.EXPECT().
			ListOrders(mock.Anything, caller, usecase.OrderQuery{StoreID: storeID, AsStore: true}).
			Return([]*entity.OrderView{entity.NewOrderView(&entity.Order{ID: uuid.New()})}, nil)

		rec := serve(e, http.MethodGet, "/api/orders?asStore=true&storeId="+storeID.String(), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeData(t, rec), "orders")
	})

	t.Run("customer orders", func(t *testing.T) {
		e, orderUC := createTestOrderRoutes(t, caller)

		orderUC.EXPECT().ListOrders(mock.Anything, caller, usecase.OrderQuery{}).Return([]*entity.OrderView{}, nil)

		rec := serve(e, http.MethodGet, "/api/orders", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed store id", func(t *testing.T) {
		e, _ := createTestOrderRoutes(t, caller)

		rec := serve(e, http.MethodGet, "/api/orders?storeId=abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
