package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (int, response.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/stores", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details any
	}{
		{
			name:    "validation error lists every field",
			err:     domainerrors.NewValidationError("Nome é obrigatório", "Preço inválido"),
			status:  http.StatusBadRequest,
			code:    "VALIDATION_FAILED",
			details: []any{"Nome é obrigatório", "Preço inválido"},
		},
		{
			name:   "wrapped domain error",
			err:    errors.Wrap(domainerrors.ErrOrderStatusChanged, "failed to update order"),
			status: http.StatusConflict,
			code:   "ORDER_STATUS_CHANGED",
		},
		{
			name:   "forbidden hides details",
			err:    domainerrors.ErrForbidden.WithDetails("store owned by someone else"),
			status: http.StatusForbidden,
			code:   "FORBIDDEN",
		},
		{
			name:    "conflict keeps details",
			err:     domainerrors.ErrCartStoreConflict.WithDetails("clear the cart first"),
			status:  http.StatusConflict,
			code:    "CART_STORE_CONFLICT",
			details: "clear the cart first",
		},
		{
			name:   "echo http error",
			err:    echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			status: http.StatusMethodNotAllowed,
			code:   "HTTP_ERROR",
		},
		{
			name:   "unknown error",
			err:    errors.New("pq: connection refused"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)

			assert.Equal(t, tt.status, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.details, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
