package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	storeRepo *mockRepo.MockStoreRepository
	cache     *mockSvc.MockStoreCache
	qrCode    *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	cache := mockSvc.NewMockStoreCache(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		StoreRepo: storeRepo,
		Cache:     cache,
		QRCode:    qrCode,
		Logger:    newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:   service,
		storeRepo: storeRepo,
		cache:     cache,
		qrCode:    qrCode,
	}
}

func newStoreInput() *usecase.StoreInput {
	fee := decimal.NewFromInt(7)

	return &usecase.StoreInput{
		Name:        " Pizzaria Bella ",
		Slug:        "pizzariabella",
		Category:    "pizza",
		CNPJ:        "12345678000190",
		Phone:       "11999990000",
		Email:       "bella@example.com",
		DeliveryFee: &fee,
		Address: &entity.StoreAddress{
			ZipCode:      "01001-000",
			Street:       "Praça da Sé",
			Number:       "1",
			Neighborhood: "Sé",
			City:         "São Paulo",
			State:        "sp",
		},
	}
}

func TestCatalogService_FindStores_BySlugUsesCache(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := newCaller()
	store := &entity.Store{ID: uuid.New(), UserID: owner.UserID, Slug: "bella"}

	fx.cache.EXPECT().GetBySlug(ctx, "bella").Return(store, true, nil)

	listings, err := fx.service.FindStores(ctx, owner, usecase.StoreQuery{Slug: " bella "})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.True(t, listings[0].IsOwner)
}

func TestCatalogService_FindStores_BySlugCacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	store := &entity.Store{ID: uuid.New(), UserID: uuid.New(), Slug: "bella"}

	fx.cache.EXPECT().GetBySlug(ctx, "bella").Return(nil, false, errors.New("redis down"))
	fx.storeRepo.EXPECT().FindStoreBySlug(ctx, "bella").Return(store, nil)
	fx.cache.EXPECT().Set(ctx, store).Return(errors.New("redis down"))

	listings, err := fx.service.FindStores(ctx, nil, usecase.StoreQuery{Slug: "bella"})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.False(t, listings[0].IsOwner)
}

func TestCatalogService_FindStores_UnknownSlug(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.cache.EXPECT().GetBySlug(ctx, "nope").Return(nil, false, nil)
	fx.storeRepo.EXPECT().FindStoreBySlug(ctx, "nope").Return(nil, repository.ErrStoreNotFound)

	_, err := fx.service.FindStores(ctx, nil, usecase.StoreQuery{Slug: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestCatalogService_FindStores_ByCity(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := newCaller()
	stores := []*entity.Store{
		{ID: uuid.New(), UserID: caller.UserID},
		{ID: uuid.New(), UserID: uuid.New()},
	}

	fx.storeRepo.EXPECT().
		FindStores(ctx, repository.StoreFilter{City: "Campinas", State: "SP"}).
		Return(stores, nil)

	listings, err := fx.service.FindStores(ctx, caller, usecase.StoreQuery{City: "Campinas", State: " SP "})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.True(t, listings[0].IsOwner)
	assert.False(t, listings[1].IsOwner)
}

func TestCatalogService_FindStores_StateMatchesStoredCase(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.storeRepo.EXPECT().
		FindStores(ctx, repository.StoreFilter{City: "campinas", State: "SP"}).
		Return([]*entity.Store{{ID: uuid.New()}}, nil)

	listings, err := fx.service.FindStores(ctx, nil, usecase.StoreQuery{City: "campinas", State: "sp"})
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestCatalogService_CreateStore_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := newCaller()

	fx.storeRepo.EXPECT().SlugExists(ctx, "pizzariabella", uuid.Nil).Return(false, nil)
	fx.storeRepo.EXPECT().CNPJExists(ctx, "12345678000190", uuid.Nil).Return(false, nil)
	fx.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		RunAndReturn(func(_ context.Context, store *entity.Store) error {
			store.ID = uuid.New()

			return nil
		})

	store, err := fx.service.CreateStore(ctx, caller, newStoreInput())
	require.NoError(t, err)

	assert.Equal(t, caller.UserID, store.UserID)
	assert.Equal(t, "Pizzaria Bella", store.Name)
	assert.True(t, store.IsOpen)
	assert.Equal(t, "01001000", store.Address.ZipCode)
	assert.Equal(t, "SP", store.Address.State)
	assert.True(t, decimal.NewFromInt(7).Equal(store.DeliveryFee))
	assert.True(t, store.MinimumOrder.IsZero())
}

func TestCatalogService_CreateStore_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	input := newStoreInput()
	input.Slug = "Pizza Bella"
	input.Address = nil
	negative := decimal.NewFromInt(-1)
	input.MinimumOrder = &negative

	_, err := fx.service.CreateStore(context.Background(), newCaller(), input)
	requireValidationFields(t, err,
		"Identificação deve conter apenas letras minúsculas e números",
		"Endereço é obrigatório",
		"Pedido mínimo não pode ser negativo",
	)
}

func TestCatalogService_CreateStore_AmountsInCents(t *testing.T) {
	fx := createTestCatalogService(t)

	input := newStoreInput()
	fee := decimal.RequireFromString("4.995")
	input.DeliveryFee = &fee

	_, err := fx.service.CreateStore(context.Background(), newCaller(), input)
	requireValidationFields(t, err, "Valores devem ter no máximo duas casas decimais")
}

func TestCatalogService_CreateStore_Uniqueness(t *testing.T) {
	t.Run("slug taken", func(t *testing.T) {
		fx := createTestCatalogService(t)

		ctx := context.Background()
		fx.storeRepo.EXPECT().SlugExists(ctx, "pizzariabella", uuid.Nil).Return(true, nil)

		_, err := fx.service.CreateStore(ctx, newCaller(), newStoreInput())
		assert.ErrorIs(t, err, domainerrors.ErrStoreSlugTaken)
	})

	t.Run("cnpj taken", func(t *testing.T) {
		fx := createTestCatalogService(t)

		ctx := context.Background()
		fx.storeRepo.EXPECT().SlugExists(ctx, "pizzariabella", uuid.Nil).Return(false, nil)
		fx.storeRepo.EXPECT().CNPJExists(ctx, "12345678000190", uuid.Nil).Return(true, nil)

		_, err := fx.service.CreateStore(ctx, newCaller(), newStoreInput())
		assert.ErrorIs(t, err, domainerrors.ErrStoreCNPJTaken)
	})

	t.Run("unique index race", func(t *testing.T) {
		fx := createTestCatalogService(t)

		ctx := context.Background()
		fx.storeRepo.EXPECT().SlugExists(ctx, mock.Anything, uuid.Nil).Return(false, nil)
		fx.storeRepo.EXPECT().CNPJExists(ctx, mock.Anything, uuid.Nil).Return(false, nil)
		fx.storeRepo.EXPECT().CreateStore(ctx, mock.Anything).Return(repository.ErrDuplicateStore)

		_, err := fx.service.CreateStore(ctx, newCaller(), newStoreInput())
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestCatalogService_UpdateStore_SlugChangeInvalidatesBothSlugs(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := newCaller()
	store := &entity.Store{ID: uuid.New(), UserID: owner.UserID, Slug: "oldslug"}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.storeRepo.EXPECT().SlugExists(ctx, "pizzariabella", store.ID).Return(false, nil)
	fx.storeRepo.EXPECT().CNPJExists(ctx, "12345678000190", store.ID).Return(false, nil)
	fx.storeRepo.EXPECT().UpdateStore(ctx, store).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "oldslug").Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "pizzariabella").Return(errors.New("redis down"))

	updated, err := fx.service.UpdateStore(ctx, owner, store.ID, newStoreInput())
	require.NoError(t, err)
	assert.Equal(t, "pizzariabella", updated.Slug)
}

func TestCatalogService_OwnerOnlyOperations(t *testing.T) {
	store := &entity.Store{ID: uuid.New(), UserID: uuid.New(), Slug: "bella"}

	tests := []struct {
		name string
		call func(svc usecase.CatalogUsecase, ctx context.Context, caller *entity.CallerIdentity) error
	}{
		{
			name: "update",
			call: func(svc usecase.CatalogUsecase, ctx context.Context, caller *entity.CallerIdentity) error {
				_, err := svc.UpdateStore(ctx, caller, store.ID, newStoreInput())

				return err
			},
		},
		{
			name: "delete",
			call: func(svc usecase.CatalogUsecase, ctx context.Context, caller *entity.CallerIdentity) error {
				return svc.DeleteStore(ctx, caller, store.ID)
			},
		},
		{
			name: "set open",
			call: func(svc usecase.CatalogUsecase, ctx context.Context, caller *entity.CallerIdentity) error {
				_, err := svc.SetStoreOpen(ctx, caller, store.ID, false)

				return err
			},
		},
		{
			name: "qr code",
			call: func(svc usecase.CatalogUsecase, ctx context.Context, caller *entity.CallerIdentity) error {
				_, err := svc.GetStoreQRCode(ctx, caller, store.ID)

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" forbidden", func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

			assert.ErrorIs(t, tt.call(fx.service, ctx, newCaller()), domainerrors.ErrForbidden)
		})

		t.Run(tt.name+" not found", func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(nil, repository.ErrStoreNotFound)

			assert.ErrorIs(t, tt.call(fx.service, ctx, newCaller()), domainerrors.ErrStoreNotFound)
		})

		t.Run(tt.name+" anonymous", func(t *testing.T) {
			fx := createTestCatalogService(t)

			assert.ErrorIs(t, tt.call(fx.service, context.Background(), nil), domainerrors.ErrUnauthorized)
		})
	}
}

func TestCatalogService_SetStoreOpen(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := newCaller()
	store := &entity.Store{ID: uuid.New(), UserID: owner.UserID, Slug: "bella", IsOpen: true}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.storeRepo.EXPECT().UpdateStoreOpen(ctx, store.ID, false).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "bella").Return(nil)

	updated, err := fx.service.SetStoreOpen(ctx, owner, store.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsOpen)
}

func TestCatalogService_DeleteStore(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := newCaller()
	store := &entity.Store{ID: uuid.New(), UserID: owner.UserID, Slug: "bella"}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.storeRepo.EXPECT().DeleteStore(ctx, store.ID).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "bella").Return(nil)

	require.NoError(t, fx.service.DeleteStore(ctx, owner, store.ID))
}

func TestCatalogService_GetStoreQRCode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := newCaller()
	store := &entity.Store{ID: uuid.New(), UserID: owner.UserID, Slug: "bella"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.qrCode.EXPECT().GenerateStoreQR("bella").Return(png, nil)

	got, err := fx.service.GetStoreQRCode(ctx, owner, store.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCatalogService_GetMyStores(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	caller := newCaller()
	stores := []*entity.Store{{ID: uuid.New(), UserID: caller.UserID}, {ID: uuid.New(), UserID: caller.UserID}}

	fx.storeRepo.EXPECT().FindStoresByOwner(ctx, caller.UserID).Return(stores, nil)

	got, err := fx.service.GetMyStores(ctx, caller)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
