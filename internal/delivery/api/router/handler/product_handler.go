package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts lists the products of a store
func (h *ProductHandler) ListProducts(c echo.Context) error {
	storeID, ok := queryID(c, "storeId")
	if !ok {
		return invalidID(c)
	}
	if storeID == uuid.Nil {
		return response.ValidationFailed(c, []string{"ID da loja é obrigatório"})
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"products": products})
}

// GetProduct returns a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"product": product})
}

// CreateProduct adds a product to a store owned by the caller
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"product": product})
}

// UpdateProduct partially updates a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req usecase.UpdateProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), deliverycontext.GetCaller(c), productID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"product": product})
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), deliverycontext.GetCaller(c), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Produto removido"})
}
