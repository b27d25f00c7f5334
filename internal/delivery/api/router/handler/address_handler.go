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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses lists the caller's addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"addresses": addresses})
}

// CreateAddress adds an address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req usecase.AddressInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"address": address})
}

// UpdateAddress replaces the address whose id is in the body
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req usecase.AddressInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), deliverycontext.GetCaller(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"address": address})
}

// DeleteAddress removes the address given by the id query parameter
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, ok := queryID(c, "id")
	if !ok || addressID == uuid.Nil {
		return invalidID(c)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), deliverycontext.GetCaller(c), addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Endereço removido"})
}

// LookupPostalCode resolves a CEP; unknown codes answer found=false
func (h *AddressHandler) LookupPostalCode(c echo.Context) error {
	result := h.addressUC.LookupPostalCode(c.Request().Context(), c.Param("zip"))

	return response.Success(c, http.StatusOK, result)
}
