package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	storeRepo *mockRepo.MockStoreRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		storeRepo: storeRepo,
	}
}

func strPtr(value string) *string { return &value }

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.GetProfile(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestProfileService(t)

		ctx := context.Background()
		caller := newCaller()
		fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetProfile(ctx, caller)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestProfileService(t)

		ctx := context.Background()
		caller := newCaller()
		user := &entity.User{ID: caller.UserID, Email: caller.Email}
		fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)

		got, err := fx.service.GetProfile(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})
}

func TestProfileService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()
	user := &entity.User{ID: caller.UserID, Email: caller.Email, FullName: "Old Name", CPF: "12345678901"}

	fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{
		FullName:  strPtr(" Ana Souza "),
		BirthDate: strPtr("1990-05-17"),
		Whatsapp:  strPtr("(11) 98765-4321"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", got.FullName)
	assert.Equal(t, "12345678901", got.CPF)
	assert.Equal(t, "11987654321", got.Whatsapp)
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *got.BirthDate)
}

func TestProfileService_UpdateProfile_ClearsBirthDate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()
	birthDate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	user := &entity.User{ID: caller.UserID, BirthDate: &birthDate}

	fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{BirthDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, got.BirthDate)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()
	fx.userRepo.EXPECT().FindByID(ctx, caller.UserID).Return(&entity.User{ID: caller.UserID}, nil)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err := fx.service.UpdateProfile(ctx, caller, &usecase.UpdateProfileInput{
		BirthDate: strPtr(future),
		CPF:       strPtr("123"),
		Whatsapp:  strPtr("call me"),
	})

	requireValidationFields(t, err,
		"Data de nascimento não pode ser futura",
		"CPF deve conter 11 dígitos",
		"WhatsApp inválido",
	)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()

	fx.storeRepo.EXPECT().CountStoresByOwner(ctx, caller.UserID).Return(0, nil)
	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().DeviceRepo().Return(deviceRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		cartRepo.EXPECT().DeleteCartsByUser(ctx, caller.UserID, uuid.Nil).Return(nil)
		addressRepo.EXPECT().DeleteAddressesByUser(ctx, caller.UserID).Return(nil)
		deviceRepo.EXPECT().DeleteDevicesByUser(ctx, caller.UserID).Return(nil)
		userRepo.EXPECT().Delete(ctx, caller.UserID).Return(nil)
	})

	require.NoError(t, fx.service.DeleteProfile(ctx, caller))
}

func TestProfileService_DeleteProfile_OwnerOfStores(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()
	fx.storeRepo.EXPECT().CountStoresByOwner(ctx, caller.UserID).Return(2, nil)

	err := fx.service.DeleteProfile(ctx, caller)
	assert.ErrorIs(t, err, domainerrors.ErrUserOwnsStores)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_DeleteProfile_RollsBackOnFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	caller := newCaller()

	fx.storeRepo.EXPECT().CountStoresByOwner(ctx, caller.UserID).Return(0, nil)
	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)

		cartRepo.EXPECT().DeleteCartsByUser(ctx, caller.UserID, uuid.Nil).Return(nil)
		addressRepo.EXPECT().DeleteAddressesByUser(ctx, caller.UserID).Return(errors.New("connection reset"))
	})

	err := fx.service.DeleteProfile(ctx, caller)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete addresses")
}

func TestProfileService_DeleteProfile_Anonymous(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.DeleteProfile(context.Background(), &entity.CallerIdentity{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
