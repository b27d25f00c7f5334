package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	userRepo    *mockRepo.MockUserRepository
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewAdminService(AdminServiceParams{
		UserRepo:    userRepo,
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func newAdminCaller() *entity.CallerIdentity {
	return &entity.CallerIdentity{UserID: uuid.New(), Email: "admin@storefront.local", Role: entity.RoleAdmin}
}

func TestAdminService_GetOverview_Success(t *testing.T) {
	fx := createTestAdminService(t)

	recentOrders := []*entity.Order{{ID: uuid.New()}}
	recentStores := []*entity.Store{{ID: uuid.New()}}
	recentUsers := []*entity.User{{ID: uuid.New()}}

	fx.userRepo.EXPECT().Count(mock.Anything).Return(12, nil)
	fx.userRepo.EXPECT().FindRecent(mock.Anything, recentItemsLimit).Return(recentUsers, nil)
	fx.storeRepo.EXPECT().CountStores(mock.Anything).Return(repository.StoreCounts{Total: 4, Open: 3}, nil)
	fx.storeRepo.EXPECT().FindRecentStores(mock.Anything, recentItemsLimit).Return(recentStores, nil)
	fx.productRepo.EXPECT().CountProducts(mock.Anything).Return(repository.ProductCounts{Total: 30, Available: 25}, nil)
	fx.orderRepo.EXPECT().CountOrdersByStatus(mock.Anything).Return(map[entity.OrderStatus]int64{
		entity.OrderStatusPending:    2,
		entity.OrderStatusConfirmed:  1,
		entity.OrderStatusDelivering: 1,
		entity.OrderStatusCompleted:  5,
		entity.OrderStatusCancelled:  1,
	}, nil)
	fx.orderRepo.EXPECT().SumOrderTotals(mock.Anything, entity.OrderStatusCompleted).Return(decimal.RequireFromString("412.50"), nil)
	fx.orderRepo.EXPECT().FindRecentOrders(mock.Anything, recentItemsLimit).Return(recentOrders, nil)

	overview, err := fx.service.GetOverview(context.Background(), newAdminCaller())
	require.NoError(t, err)

	stats := overview.Stats
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalStores)
	assert.Equal(t, int64(3), stats.OpenStores)
	assert.Equal(t, int64(1), stats.ClosedStores)
	assert.Equal(t, int64(30), stats.TotalProducts)
	assert.Equal(t, int64(25), stats.AvailableProducts)
	assert.Equal(t, int64(10), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.OrdersByStatus.Pending)
	assert.Equal(t, int64(5), stats.OrdersByStatus.Completed)
	assert.Equal(t, int64(1), stats.OrdersByStatus.Cancelled)
	assert.Equal(t, int64(2), stats.OrdersByStatus.Other)
	assert.True(t, decimal.RequireFromString("412.5").Equal(stats.TotalRevenue))

	assert.Equal(t, recentOrders, overview.RecentOrders)
	assert.Equal(t, recentStores, overview.RecentStores)
	assert.Equal(t, recentUsers, overview.RecentUsers)
}

func TestAdminService_GetOverview_Forbidden(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.GetOverview(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("regular user", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.GetOverview(context.Background(), newCaller())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestAdminService_GetOverview_RepositoryFailure(t *testing.T) {
	fx := createTestAdminService(t)

	fx.userRepo.EXPECT().Count(mock.Anything).Return(0, errors.New("db down")).Maybe()
	fx.userRepo.EXPECT().FindRecent(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	fx.storeRepo.EXPECT().CountStores(mock.Anything).Return(repository.StoreCounts{}, nil).Maybe()
	fx.storeRepo.EXPECT().FindRecentStores(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	fx.productRepo.EXPECT().CountProducts(mock.Anything).Return(repository.ProductCounts{}, nil).Maybe()
	fx.orderRepo.EXPECT().CountOrdersByStatus(mock.Anything).Return(nil, nil).Maybe()
	fx.orderRepo.EXPECT().SumOrderTotals(mock.Anything, mock.Anything).Return(decimal.Zero, nil).Maybe()
	fx.orderRepo.EXPECT().FindRecentOrders(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := fx.service.GetOverview(context.Background(), newAdminCaller())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count users")
}
