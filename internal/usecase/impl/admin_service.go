package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const recentItemsLimit = 5

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

type adminService struct {
	userRepo    repository.UserRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

// GetOverview gathers the platform counters and the newest records concurrently.
func (srv *adminService) GetOverview(ctx context.Context, caller *entity.CallerIdentity) (*entity.AdminOverview, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Non-admin requested the overview", slog.Any("userID", caller.UserID))

		return nil, domainerrors.ErrForbidden
	}

	var (
		overview      entity.AdminOverview
		storeCounts   repository.StoreCounts
		productCounts repository.ProductCounts
		byStatus      map[entity.OrderStatus]int64
		revenue       decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := srv.userRepo.Count(gctx)
		overview.Stats.TotalUsers = count

		return errors.Wrap(err, "count users")
	})
	g.Go(func() error {
		var err error
		storeCounts, err = srv.storeRepo.CountStores(gctx)

		return errors.Wrap(err, "count stores")
	})
	g.Go(func() error {
		var err error
		productCounts, err = srv.productRepo.CountProducts(gctx)

		return errors.Wrap(err, "count products")
	})
	g.Go(func() error {
		var err error
		byStatus, err = srv.orderRepo.CountOrdersByStatus(gctx)

		return errors.Wrap(err, "count orders")
	})
	g.Go(func() error {
		var err error
		revenue, err = srv.orderRepo.SumOrderTotals(gctx, entity.OrderStatusCompleted)

		return errors.Wrap(err, "sum revenue")
	})
	g.Go(func() error {
		var err error
		overview.RecentOrders, err = srv.orderRepo.FindRecentOrders(gctx, recentItemsLimit)

		return errors.Wrap(err, "find recent orders")
	})
	g.Go(func() error {
		var err error
		overview.RecentStores, err = srv.storeRepo.FindRecentStores(gctx, recentItemsLimit)

		return errors.Wrap(err, "find recent stores")
	})
	g.Go(func() error {
		var err error
		overview.RecentUsers, err = srv.userRepo.FindRecent(gctx, recentItemsLimit)

		return errors.Wrap(err, "find recent users")
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build admin overview")
	}

	overview.Stats.TotalStores = storeCounts.Total
	overview.Stats.OpenStores = storeCounts.Open
	overview.Stats.ClosedStores = storeCounts.Total - storeCounts.Open
	overview.Stats.TotalProducts = productCounts.Total
	overview.Stats.AvailableProducts = productCounts.Available
	overview.Stats.TotalRevenue = revenue
	overview.Stats.OrdersByStatus, overview.Stats.TotalOrders = groupOrderCounts(byStatus)

	return &overview, nil
}

func groupOrderCounts(byStatus map[entity.OrderStatus]int64) (entity.OrderStatusCount, int64) {
	var (
		grouped entity.OrderStatusCount
		total   int64
	)

	for status, count := range byStatus {
		total += count

		switch status {
		case entity.OrderStatusPending:
			grouped.Pending += count
		case entity.OrderStatusCompleted:
			grouped.Completed += count
		case entity.OrderStatusCancelled:
			grouped.Cancelled += count
		default:
			grouped.Other += count
		}
	}

	return grouped, total
}
