package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StoreRepo   repository.StoreRepository
	OrderRepo   repository.OrderRepository
	AddressRepo repository.AddressRepository
	Mailer      service.OrderMailer
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

type orderService struct {
	txManager   repository.TransactionManager
	storeRepo   repository.StoreRepository
	orderRepo   repository.OrderRepository
	addressRepo repository.AddressRepository
	mailer      service.OrderMailer
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		storeRepo:   params.StoreRepo,
		orderRepo:   params.OrderRepo,
		addressRepo: params.AddressRepo,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout validates the request, persists the order and then runs the
// best-effort follow-ups. Only the order write can fail the request.
func (srv *orderService) Checkout(ctx context.Context, caller *entity.CallerIdentity, input *usecase.CheckoutInput) (*entity.OrderView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validateCheckout(input); err != nil {
		return nil, err
	}

	store, err := srv.findStore(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := srv.deliveryAddress(ctx, caller, input.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	order := buildOrder(caller, store, input, deliveryAddress)
	if !order.Total.Equal(input.Total) {
		srv.log(ctx).Warn("Client total differs from computed total",
			slog.String("client_total", input.Total.StringFixed(2)),
			slog.String("computed_total", order.Total.StringFixed(2)),
		)
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("store_id", store.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
	)

	if err := srv.notifyStore(ctx, store, order); err != nil {
		srv.log(ctx).Warn("Failed to send new order email", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}
	if err := srv.clearCart(ctx, caller.UserID, store.ID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after checkout", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}
	if err := srv.publish(ctx, service.OrderEventPlaced, order, store.UserID); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}

	return entity.NewOrderView(order), nil
}

func validateCheckout(input *usecase.CheckoutInput) error {
	var v domainerrors.Validator

	v.Check(input.StoreID != uuid.Nil, "ID da loja é obrigatório")
	v.Check(len(input.Items) > 0, "Items do pedido são obrigatórios")
	v.Check(input.Subtotal.IsPositive() && entity.IsCents(input.Subtotal), "Subtotal inválido")
	v.Check(input.Total.IsPositive() && entity.IsCents(input.Total), "Total inválido")
	v.Check(!input.DeliveryFee.IsNegative() && entity.IsCents(input.DeliveryFee), "Taxa de entrega inválida")

	for idx, item := range input.Items {
		v.Check(item.Quantity >= 1, fmt.Sprintf("Item %d: quantidade inválida", idx+1))
		v.Check(!item.Price.IsNegative() && entity.IsCents(item.Price), fmt.Sprintf("Item %d: preço inválido", idx+1))
	}

	if input.NeedsChange && input.ChangeAmount != nil {
		v.Check(!input.ChangeAmount.IsNegative() && entity.IsCents(*input.ChangeAmount), "Valor do troco inválido")
	}

	return v.Err()
}

func buildOrder(caller *entity.CallerIdentity, store *entity.Store, input *usecase.CheckoutInput, deliveryAddress string) *entity.Order {
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      strings.TrimSpace(item.Name),
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		customerName = caller.Name
	}

	var changeAmount *decimal.Decimal
	if input.NeedsChange && input.ChangeAmount != nil {
		amount := *input.ChangeAmount
		changeAmount = &amount
	}

	return &entity.Order{
		UserID:          caller.UserID,
		StoreID:         store.ID,
		StoreName:       store.Name,
		StorePhone:      store.Phone,
		Items:           items,
		Subtotal:        input.Subtotal,
		DeliveryFee:     input.DeliveryFee,
		Total:           input.Subtotal.Add(input.DeliveryFee),
		Status:          entity.OrderStatusPending,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		NeedsChange:     input.NeedsChange,
		ChangeAmount:    changeAmount,
		CustomerName:    customerName,
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		DeliveryAddress: deliveryAddress,
	}
}

// deliveryAddress snapshots one of the caller's addresses as text.
func (srv *orderService) deliveryAddress(ctx context.Context, caller *entity.CallerIdentity, addressID *uuid.UUID) (string, error) {
	if addressID == nil || *addressID == uuid.Nil {
		return "", nil
	}

	address, err := srv.addressRepo.FindAddressByID(ctx, *addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return "", domainerrors.ErrAddressNotFound
		}

		return "", errors.Wrap(err, "failed to find delivery address")
	}
	if address.UserID != caller.UserID {
		return "", domainerrors.ErrAddressNotFound
	}

	return formatAddress(address), nil
}

func formatAddress(address *entity.Address) string {
	line := address.Street + ", " + address.Number
	if address.Complement != "" {
		line += " - " + address.Complement
	}

	return fmt.Sprintf("%s - %s, %s/%s - CEP %s", line, address.Neighborhood, address.City, address.State, address.ZipCode)
}

// notifyStore emails the store about a new order when it has an address.
func (srv *orderService) notifyStore(ctx context.Context, store *entity.Store, order *entity.Order) error {
	if store.Email == "" {
		return nil
	}

	return errors.Wrap(srv.mailer.SendNewOrder(ctx, store.Email, order), "send new order email")
}

// clearCart drops the caller's cart for the store the order was placed in.
func (srv *orderService) clearCart(ctx context.Context, userID, storeID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CartRepo().DeleteCartsByUser(ctx, userID, storeID)
	})
}

func (srv *orderService) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order, storeOwnerID uuid.UUID) error {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      order.ID.String(),
		StoreID:      order.StoreID.String(),
		StoreName:    order.StoreName,
		CustomerID:   order.UserID.String(),
		StoreOwnerID: storeOwnerID.String(),
		Status:       order.Status.String(),
		Total:        order.Total,
		OccurredAt:   srv.now().UTC(),
	}

	return errors.Wrap(srv.publisher.PublishOrderEvent(ctx, event), "publish order event")
}

// GetOrder returns an order readable by its customer or by the store owner.
func (srv *orderService) GetOrder(ctx context.Context, caller *entity.CallerIdentity, orderID uuid.UUID) (*entity.OrderView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.UserID {
		store, err := srv.storeRepo.FindStoreByID(ctx, order.StoreID)
		if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(err, "failed to find order store")
		}
		if store == nil || !caller.Owns(store.UserID) {
			return nil, domainerrors.ErrForbidden
		}
	}

	return entity.NewOrderView(order), nil
}

// ListOrders lists either a store's orders for its owner, or the caller's own orders.
func (srv *orderService) ListOrders(ctx context.Context, caller *entity.CallerIdentity, query usecase.OrderQuery) ([]*entity.OrderView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	filter := repository.OrderFilter{UserID: caller.UserID, StoreID: query.StoreID}
	if query.AsStore {
		if query.StoreID == uuid.Nil {
			return nil, domainerrors.NewValidationError("ID da loja é obrigatório")
		}

		store, err := srv.findStore(ctx, query.StoreID)
		if err != nil {
			return nil, err
		}
		if !caller.Owns(store.UserID) {
			return nil, domainerrors.ErrForbidden
		}

		filter = repository.OrderFilter{StoreID: store.ID}
	}

	orders, err := srv.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	views := make([]*entity.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, entity.NewOrderView(order))
	}

	return views, nil
}

// UpdateStatus checks existence, then ownership, then the transition table,
// and finally writes with a compare-and-set on the current status.
func (srv *orderService) UpdateStatus(ctx context.Context, caller *entity.CallerIdentity, orderID uuid.UUID, target entity.OrderStatus) (*entity.OrderView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	store, err := srv.storeRepo.FindStoreByID(ctx, order.StoreID)
	if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, errors.Wrap(err, "failed to find order store")
	}
	if store == nil || !caller.Owns(store.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	if target == "" {
		return nil, domainerrors.NewValidationError("status é obrigatório")
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, target),
		)
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, order.ID, order.Status, target); err != nil {
		if errors.Is(err, repository.ErrOrderStatusMismatch) {
			return nil, domainerrors.ErrOrderStatusChanged
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("order_id", order.ID.String()),
		slog.String("from", order.Status.String()),
		slog.String("to", target.String()),
	)

	order.Status = target
	order.UpdatedAt = srv.now()

	if err := srv.publish(ctx, service.OrderEventStatusChanged, order, store.UserID); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.String("order_id", order.ID.String()), slog.Any("error", err))
	}

	return entity.NewOrderView(order), nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) findStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}
