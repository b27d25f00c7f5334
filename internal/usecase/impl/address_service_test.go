package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	postalCode  *mockSvc.MockPostalCodeLookup
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	postalCode := mockSvc.NewMockPostalCodeLookup(t)

	service := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		PostalCode:  postalCode,
		Logger:      newDiscardLogger(),
	})

	return addressServiceFixtures{
		service:     service,
		txManager:   txManager,
		addressRepo: addressRepo,
		postalCode:  postalCode,
	}
}

func newAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:        "Casa",
		Street:       "Rua das Flores",
		Number:       "42",
		Neighborhood: "Centro",
		City:         "Campinas",
		State:        "sp",
		ZipCode:      "13010-000",
	}
}

func TestAddressService_CreateAddress_FirstIsPrimary(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	caller := newCaller()

	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		addressRepo.EXPECT().CountAddressesByUser(ctx, caller.UserID).Return(0, nil)
		addressRepo.EXPECT().
			CreateAddress(ctx, mock.MatchedBy(func(address *entity.Address) bool {
				return address.IsPrimary && address.ZipCode == "13010000" && address.State == "SP"
			})).
			RunAndReturn(func(_ context.Context, address *entity.Address) error {
				address.ID = uuid.New()

				return nil
			})
		addressRepo.EXPECT().ClearPrimary(ctx, caller.UserID, mock.AnythingOfType("uuid.UUID")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, caller, newAddressInput())
	require.NoError(t, err)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, caller.UserID, address.UserID)
}

func TestAddressService_CreateAddress_SecondIsNotPrimary(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	caller := newCaller()

	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		addressRepo.EXPECT().CountAddressesByUser(ctx, caller.UserID).Return(1, nil)
		addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, caller, newAddressInput())
	require.NoError(t, err)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_CreateAddress_CompletesFromPostalCode(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	caller := newCaller()

	fx.postalCode.EXPECT().Lookup(ctx, "13010000").Return(&entity.PostalAddress{
		ZipCode:      "13010000",
		Street:       "Rua Barão de Jaguara",
		Neighborhood: "Centro",
		City:         "Campinas",
		State:        "sp",
	}, nil)

	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		addressRepo.EXPECT().CountAddressesByUser(ctx, caller.UserID).Return(3, nil)
		addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, caller, &usecase.AddressInput{
		Number:  "1200",
		ZipCode: "13010-000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rua Barão de Jaguara", address.Street)
	assert.Equal(t, "Campinas", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestAddressService_CreateAddress_Validation(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	fx.postalCode.EXPECT().Lookup(ctx, "13010000").Return(nil, service.ErrPostalCodeNotFound)

	_, err := fx.service.CreateAddress(ctx, newCaller(), &usecase.AddressInput{ZipCode: "13010000"})
	requireValidationFields(t, err, "Rua é obrigatória", "Número é obrigatório", "Cidade é obrigatória")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAddressService_UpdateAddress(t *testing.T) {
	t.Run("address of another user", func(t *testing.T) {
		fx := createTestAddressService(t)

		ctx := context.Background()
		input := newAddressInput()
		input.ID = uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(ctx, input.ID).Return(&entity.Address{ID: input.ID, UserID: uuid.New()}, nil)

		_, err := fx.service.UpdateAddress(ctx, newCaller(), input)
		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		fx := createTestAddressService(t)

		_, err := fx.service.UpdateAddress(context.Background(), newCaller(), newAddressInput())
		requireValidationFields(t, err, "ID do endereço é obrigatório")
	})

	t.Run("promote to primary", func(t *testing.T) {
		fx := createTestAddressService(t)

		ctx := context.Background()
		caller := newCaller()
		input := newAddressInput()
		input.ID = uuid.New()
		input.IsPrimary = true

		fx.addressRepo.EXPECT().FindAddressByID(ctx, input.ID).Return(&entity.Address{ID: input.ID, UserID: caller.UserID}, nil)
		expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			addressRepo := mockRepo.NewMockAddressRepository(t)
			factory.EXPECT().AddressRepo().Return(addressRepo)

			addressRepo.EXPECT().UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
			addressRepo.EXPECT().ClearPrimary(ctx, caller.UserID, input.ID).Return(nil)
		})

		address, err := fx.service.UpdateAddress(ctx, caller, input)
		require.NoError(t, err)
		assert.True(t, address.IsPrimary)
		assert.Equal(t, "Rua das Flores", address.Street)
	})
}

func TestAddressService_DeleteAddress(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestAddressService(t)

		ctx := context.Background()
		caller := newCaller()
		addressID := uuid.New()

		fx.addressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(&entity.Address{ID: addressID, UserID: caller.UserID}, nil)
		fx.addressRepo.EXPECT().DeleteAddress(ctx, addressID).Return(nil)

		require.NoError(t, fx.service.DeleteAddress(ctx, caller, addressID))
	})

	t.Run("unknown address", func(t *testing.T) {
		fx := createTestAddressService(t)

		ctx := context.Background()
		addressID := uuid.New()
		fx.addressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

		err := fx.service.DeleteAddress(ctx, newCaller(), addressID)
		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_LookupPostalCode(t *testing.T) {
	tests := []struct {
		name    string
		zipCode string
		setup   func(fx addressServiceFixtures, ctx context.Context)
		found   bool
	}{
		{
			name:    "wrong length never reaches the lookup",
			zipCode: "1301",
		},
		{
			name:    "found",
			zipCode: "13010-000",
			setup: func(fx addressServiceFixtures, ctx context.Context) {
				fx.postalCode.EXPECT().Lookup(ctx, "13010000").Return(&entity.PostalAddress{ZipCode: "13010000", City: "Campinas"}, nil)
			},
			found: true,
		},
		{
			name:    "unknown code",
			zipCode: "99999999",
			setup: func(fx addressServiceFixtures, ctx context.Context) {
				fx.postalCode.EXPECT().Lookup(ctx, "99999999").Return(nil, service.ErrPostalCodeNotFound)
			},
		},
		{
			name:    "upstream failure",
			zipCode: "13010000",
			setup: func(fx addressServiceFixtures, ctx context.Context) {
				fx.postalCode.EXPECT().Lookup(ctx, "13010000").Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			result := fx.service.LookupPostalCode(ctx, tt.zipCode)
			assert.Equal(t, tt.found, result.Found)
			if tt.found {
				assert.NotNil(t, result.Address)
			}
		})
	}
}
