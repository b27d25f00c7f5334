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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStoreRoutes(t *testing.T, caller *entity.CallerIdentity) (*echo.Echo, *mockUC.MockCatalogUsecase) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	e := newTestEcho(caller)
	e.GET("/api/stores", h.FindStores)
	e.POST("/api/stores", h.CreateStore)
	e.PATCH("/api/stores/:id/status", h.SetStoreStatus)
	e.GET("/api/stores/:id/qrcode", h.GetStoreQRCode)
	e.DELETE("/api/stores/:id", h.DeleteStore)

	return e, catalogUC
}

func TestStoreHandler_FindStores_Anonymous(t *testing.T) {
	e, catalogUC := createTestStoreRoutes(t, nil)

	store := &entity.Store{ID: uuid.New(), Slug: "padaria"}
	catalogUC.EXPECT().
		FindStores(mock.Anything, (*entity.CallerIdentity)(nil), usecase.StoreQuery{Slug: "padaria"}).
		Return([]*entity.StoreListing{{Store: store}}, nil)

	rec := serve(e, http.MethodGet, "/api/stores?slug=padaria", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeData(t, rec)["stores"]), `"isOwner":false`)
}

func TestStoreHandler_FindStores_UnknownSlug(t *testing.T) {
	e, catalogUC := createTestStoreRoutes(t, nil)

	catalogUC.EXPECT().FindStores(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrStoreNotFound)

	rec := serve(e, http.MethodGet, "/api/stores?slug=nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "STORE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestStoreHandler_SetStoreStatus(t *testing.T) {
	caller := newCaller()
	storeID := uuid.New()

	t.Run("closes the store", func(t *testing.T) {
		e, catalogUC := createTestStoreRoutes(t, caller)

		catalogUC.EXPECT().SetStoreOpen(mock.Anything, caller, storeID, false).Return(&entity.Store{ID: storeID}, nil)

		rec := serve(e, http.MethodPatch, "/api/stores/"+storeID.String()+"/status", `{"isOpen":false}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing flag", func(t *testing.T) {
		e, _ := createTestStoreRoutes(t, caller)

		rec := serve(e, http.MethodPatch, "/api/stores/"+storeID.String()+"/status", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []any{"isOpen é obrigatório"}, decodeError(t, rec).Details)
	})

	t.Run("not the owner", func(t *testing.T) {
		e, catalogUC := createTestStoreRoutes(t, caller)

		catalogUC.EXPECT().SetStoreOpen(mock.Anything, caller, storeID, true).Return(nil, domainerrors.ErrForbidden)

		rec := serve(e, http.MethodPatch, "/api/stores/"+storeID.String()+"/status", `{"isOpen":true}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestStoreHandler_GetStoreQRCode(t *testing.T) {
	caller := newCaller()
	e, catalogUC := createTestStoreRoutes(t, caller)

	storeID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	catalogUC.EXPECT().GetStoreQRCode(mock.Anything, caller, storeID).Return(png, nil)

	rec := serve(e, http.MethodGet, "/api/stores/"+storeID.String()+"/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestStoreHandler_CreateStore_Conflict(t *testing.T) {
	caller := newCaller()
	e, catalogUC := createTestStoreRoutes(t, caller)

	catalogUC.EXPECT().
		CreateStore(mock.Anything, caller, mock.MatchedBy(func(input *usecase.StoreInput) bool {
			return input.Slug == "padaria" && input.DeliveryFee != nil
		})).
		Return(nil, domainerrors.ErrStoreSlugTaken)

	rec := serve(e, http.MethodPost, "/api/stores", `{"name":"Padaria","slug":"padaria","deliveryFee":"5.00"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "STORE_SLUG_TAKEN", decodeError(t, rec).Code)
}

func TestStoreHandler_DeleteStore_InvalidID(t *testing.T) {
	e, _ := createTestStoreRoutes(t, newCaller())

	rec := serve(e, http.MethodDelete, "/api/stores/123", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
