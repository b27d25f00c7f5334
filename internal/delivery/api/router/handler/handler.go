// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const codeInvalidInput = "INVALID_INPUT"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body into req and runs struct validation.
// It writes the error response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, codeInvalidInput, "Corpo da requisição inválido")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationFailed(c, validator.Messages(err))
	}

	return true, nil
}

// pathID parses a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// queryID parses an optional uuid query parameter. An empty value yields uuid.Nil.
func queryID(c echo.Context, name string) (uuid.UUID, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, true
	}

	id, err := uuid.Parse(raw)

	return id, err == nil
}

func invalidID(c echo.Context) error {
	return response.BadRequest(c, codeInvalidInput, "Identificador inválido")
}
