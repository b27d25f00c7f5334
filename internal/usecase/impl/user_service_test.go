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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     " Ana Souza ",
		Email:    " Ana@Example.com ",
		Password: "s3cret-pass",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ana@example.com" &&
				user.Name == "Ana Souza" &&
				user.PasswordHash == "hashed" &&
				user.Role == entity.RoleUser
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestUserService_Register_AdminEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Root",
		Email:    "ADMIN@storefront.local",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
}

func TestUserService_Register_Errors(t *testing.T) {
	valid := func() *usecase.RegisterInput {
		return &usecase.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"}
	}

	tests := []struct {
		name  string
		input *usecase.RegisterInput
		setup func(fx userServiceFixtures, ctx context.Context)
		check func(t *testing.T, err error)
	}{
		{
			name:  "short password and missing name",
			input: &usecase.RegisterInput{Email: "ana@example.com", Password: "short"},
			check: func(t *testing.T, err error) {
				requireValidationFields(t, err, "Nome é obrigatório", "Senha muito curta")
			},
		},
		{
			name:  "hash failure",
			input: valid(),
			setup: func(fx userServiceFixtures, _ context.Context) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("bcrypt failed"))
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
			},
		},
		{
			name:  "duplicate email",
			input: valid(),
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
				fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			user, err := fx.service.Register(ctx, tt.input)
			assert.Nil(t, user)
			tt.check(t, err)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ANA@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-pass", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong-pass"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_ResolveCaller(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", FullName: "Ana Souza", Role: entity.RoleUser}

	t.Run("by id", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		caller, err := fx.service.ResolveCaller(ctx, user.ID, "ignored@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, caller.UserID)
		assert.Equal(t, "Ana Souza", caller.Name)
	})

	t.Run("by email", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)

		caller, err := fx.service.ResolveCaller(ctx, uuid.Nil, " Ana@Example.com")
		require.NoError(t, err)
		assert.Equal(t, user.Email, caller.Email)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestUserService(t)

		ctx := context.Background()
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResolveCaller(ctx, user.ID, "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("nothing to resolve", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.ResolveCaller(context.Background(), uuid.Nil, "  ")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
