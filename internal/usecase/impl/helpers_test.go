package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			PasswordMinLength: 8,
		},
		Admin: &config.AdminConfig{
			Emails: []string{"admin@storefront.local"},
		},
	}
}

func newCaller() *entity.CallerIdentity {
	return &entity.CallerIdentity{
		UserID: uuid.New(),
		Email:  "ana@example.com",
		Name:   "Ana",
		Role:   entity.RoleUser,
	}
}

// expectTransaction runs fn against a fresh repository factory prepared by setup
// and returns fn's error from Execute.
func expectTransaction(
	t *testing.T,
	ctx context.Context,
	txManager *mockRepo.MockTransactionManager,
	setup func(factory *mockRepo.MockRepositoryFactory),
) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// requireAppErrorCode asserts err carries the given business error code.
func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.ErrorCode())
}

// requireValidationFields asserts err is a validation error listing every message.
func requireValidationFields(t *testing.T, err error, fields ...string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	for _, field := range fields {
		require.Contains(t, validationErr.Fields(), field)
	}
}
