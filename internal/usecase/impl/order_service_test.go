package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
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

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	storeRepo   *mockRepo.MockStoreRepository
	orderRepo   *mockRepo.MockOrderRepository
	addressRepo *mockRepo.MockAddressRepository
	mailer      *mockSvc.MockOrderMailer
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	mailer := mockSvc.NewMockOrderMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		StoreRepo:   storeRepo,
		OrderRepo:   orderRepo,
		AddressRepo: addressRepo,
		Mailer:      mailer,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		storeRepo:   storeRepo,
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		mailer:      mailer,
		publisher:   publisher,
	}
}

func newTestStore(ownerID uuid.UUID) *entity.Store {
	return &entity.Store{
		ID:          uuid.New(),
		UserID:      ownerID,
		Slug:        "pizzaria",
		Name:        "Pizzaria",
		Phone:       "11999990000",
		Email:       "loja@example.com",
		DeliveryFee: decimal.NewFromInt(5),
		IsOpen:      true,
	}
}

func newCheckoutInput(storeID uuid.UUID) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		StoreID: storeID,
		Items: []usecase.CheckoutItemInput{
			{ProductID: uuid.New(), Name: "Margherita", Price: decimal.NewFromInt(20), Quantity: 2},
		},
		Subtotal:      decimal.NewFromInt(40),
		DeliveryFee:   decimal.NewFromInt(5),
		Total:         decimal.NewFromInt(45),
		CustomerPhone: "11988887777",
		PaymentMethod: "cash",
	}
}

// expectOrderCreated assigns an ID the way the repository does.
func (fx orderServiceFixtures) expectOrderCreated(ctx context.Context) {
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = uuid.New()
			order.CreatedAt = time.Now()

			return nil
		})
}

func (fx orderServiceFixtures) expectCartCleared(t *testing.T, ctx context.Context, userID, storeID uuid.UUID, err error) {
	expectTransaction(t, ctx, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		cartRepo.EXPECT().DeleteCartsByUser(ctx, userID, storeID).Return(err)
	})
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	input := newCheckoutInput(store.ID)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.expectOrderCreated(ctx)
	fx.mailer.EXPECT().
		SendNewOrder(ctx, store.Email, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(nil)

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, view.Status)
	assert.Equal(t, caller.UserID, view.UserID)
	assert.Equal(t, store.Name, view.StoreName)
	assert.Equal(t, store.Phone, view.StorePhone)
	assert.Equal(t, caller.Name, view.CustomerName)
	assert.True(t, decimal.NewFromInt(45).Equal(view.Total))
	assert.Nil(t, view.ChangeAmount)
	require.NotNil(t, view.AvailableAction)
	assert.Equal(t, entity.OrderStatusConfirmed, view.AvailableAction.Status)

	require.NotNil(t, published)
	assert.Equal(t, service.OrderEventPlaced, published.Type)
	assert.Equal(t, view.ID.String(), published.OrderID)
	assert.Equal(t, store.UserID.String(), published.StoreOwnerID)
	assert.Equal(t, caller.UserID.String(), published.CustomerID)
	assert.NotEmpty(t, published.EventID)
}

func TestOrderService_Checkout_TotalIsComputedByServer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	store.Email = ""
	input := newCheckoutInput(store.ID)
	input.Total = decimal.NewFromInt(1)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.expectOrderCreated(ctx)
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)

	assert.True(t, input.Subtotal.Add(input.DeliveryFee).Equal(view.Total))
}

func TestOrderService_Checkout_BestEffortFailuresDoNotFailTheOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	input := newCheckoutInput(store.ID)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.expectOrderCreated(ctx)
	fx.mailer.EXPECT().SendNewOrder(ctx, store.Email, mock.Anything).Return(errors.New("smtp down"))
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, errors.New("db down"))
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, view.ID)
}

func TestOrderService_Checkout_ChangeAmount(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	store.Email = ""
	input := newCheckoutInput(store.ID)
	input.CustomerName = "  Bruno  "
	input.NeedsChange = true
	change := decimal.NewFromInt(100)
	input.ChangeAmount = &change

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.expectOrderCreated(ctx)
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)

	assert.Equal(t, "Bruno", view.CustomerName)
	assert.True(t, view.NeedsChange)
	require.NotNil(t, view.ChangeAmount)
	assert.True(t, change.Equal(*view.ChangeAmount))
}

func TestOrderService_Checkout_DeliveryAddressSnapshot(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	store.Email = ""
	addressID := uuid.New()
	input := newCheckoutInput(store.ID)
	input.DeliveryAddressID = &addressID

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.addressRepo.EXPECT().FindAddressByID(ctx, addressID).Return(&entity.Address{
		ID:           addressID,
		UserID:       caller.UserID,
		Street:       "Rua A",
		Number:       "10",
		Complement:   "Apto 2",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01001000",
	}, nil)
	fx.expectOrderCreated(ctx)
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 10 - Apto 2 - Centro, São Paulo/SP - CEP 01001000", view.DeliveryAddress)
}

func TestOrderService_Checkout_AddressOfAnotherUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	addressID := uuid.New()
	input := newCheckoutInput(store.ID)
	input.DeliveryAddressID = &addressID

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.Address{ID: addressID, UserID: uuid.New()}, nil)

	_, err := fx.service.Checkout(ctx, caller, input)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestOrderService_Checkout_Errors(t *testing.T) {
	storeID := uuid.New()

	tests := []struct {
		name   string
		caller *entity.CallerIdentity
		input  *usecase.CheckoutInput
		setup  func(fx orderServiceFixtures, ctx context.Context)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "anonymous caller",
			caller: nil,
			input:  newCheckoutInput(storeID),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
			},
		},
		{
			name:   "empty order",
			caller: newCaller(),
			input:  &usecase.CheckoutInput{StoreID: storeID},
			check: func(t *testing.T, err error) {
				requireValidationFields(t, err, "Items do pedido são obrigatórios", "Subtotal inválido", "Total inválido")
			},
		},
		{
			name:   "invalid item quantity",
			caller: newCaller(),
			input: func() *usecase.CheckoutInput {
				input := newCheckoutInput(storeID)
				input.Items[0].Quantity = 0

				return input
			}(),
			check: func(t *testing.T, err error) {
				requireValidationFields(t, err, "Item 1: quantidade inválida")
			},
		},
		{
			name:   "amounts finer than a cent",
			caller: newCaller(),
			input: func() *usecase.CheckoutInput {
				change := decimal.RequireFromString("50.001")
				input := newCheckoutInput(storeID)
				input.Items[0].Price = decimal.RequireFromString("0.004")
				input.Subtotal = decimal.RequireFromString("0.004")
				input.DeliveryFee = decimal.RequireFromString("0.005")
				input.Total = decimal.RequireFromString("0.009")
				input.NeedsChange = true
				input.ChangeAmount = &change

				return input
			}(),
			check: func(t *testing.T, err error) {
				requireValidationFields(t, err,
					"Subtotal inválido",
					"Total inválido",
					"Taxa de entrega inválida",
					"Item 1: preço inválido",
					"Valor do troco inválido",
				)
			},
		},
		{
			name:   "unknown store",
			caller: newCaller(),
			input:  newCheckoutInput(storeID),
			setup: func(fx orderServiceFixtures, ctx context.Context) {
				fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
			},
		},
		{
			name:   "order write fails",
			caller: newCaller(),
			input:  newCheckoutInput(storeID),
			setup: func(fx orderServiceFixtures, ctx context.Context) {
				fx.storeRepo.EXPECT().FindStoreByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
				fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(errors.New("db down"))
			},
			check: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create order")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			view, err := fx.service.Checkout(ctx, tt.caller, tt.input)
			assert.Nil(t, view)
			tt.check(t, err)
		})
	}
}

func TestOrderService_UpdateStatus_FollowsFulfillmentPath(t *testing.T) {
	path := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusDelivering,
		entity.OrderStatusCompleted,
	}

	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]
		t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			owner := newCaller()
			store := newTestStore(owner.UserID)
			order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), StoreID: store.ID, Status: from}

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
			fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, from, to).Return(nil)
			fx.publisher.EXPECT().
				PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
					return event.Type == service.OrderEventStatusChanged && event.Status == to.String()
				})).
				Return(nil)

			view, err := fx.service.UpdateStatus(ctx, owner, order.ID, to)
			require.NoError(t, err)
			assert.Equal(t, to, view.Status)

			if to == entity.OrderStatusCompleted {
				assert.Nil(t, view.AvailableAction)
			} else {
				assert.NotNil(t, view.AvailableAction)
			}
		})
	}
}

func TestOrderService_UpdateStatus_NonOwnerIsForbiddenRegardlessOfTarget(t *testing.T) {
	targets := []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusCompleted,
		entity.OrderStatus("bogus"),
		entity.OrderStatus(""),
	}

	for _, target := range targets {
		t.Run(target.String(), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			stranger := newCaller()
			store := newTestStore(uuid.New())
			order := &entity.Order{ID: uuid.New(), UserID: stranger.UserID, StoreID: store.ID, Status: entity.OrderStatusPending}

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

			_, err := fx.service.UpdateStatus(ctx, stranger, order.ID, target)
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	tests := []struct {
		from   entity.OrderStatus
		target entity.OrderStatus
	}{
		{from: entity.OrderStatusPending, target: entity.OrderStatusPreparing},
		{from: entity.OrderStatusConfirmed, target: entity.OrderStatusPending},
		{from: entity.OrderStatusCompleted, target: entity.OrderStatusPending},
		{from: entity.OrderStatusPending, target: entity.OrderStatusCancelled},
		{from: entity.OrderStatusPending, target: entity.OrderStatus("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.target.String(), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			owner := newCaller()
			store := newTestStore(owner.UserID)
			order := &entity.Order{ID: uuid.New(), StoreID: store.ID, Status: tt.from}

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

			_, err := fx.service.UpdateStatus(ctx, owner, order.ID, tt.target)
			requireAppErrorCode(t, err, domainerrors.ErrInvalidStatusTransition.ErrorCode())
		})
	}
}

func TestOrderService_UpdateStatus_MissingTargetAfterOwnership(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := newCaller()
	store := newTestStore(owner.UserID)
	order := &entity.Order{ID: uuid.New(), StoreID: store.ID, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

	_, err := fx.service.UpdateStatus(ctx, owner, order.ID, "")
	requireValidationFields(t, err, "status é obrigatório")
}

func TestOrderService_UpdateStatus_ConcurrentChange(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := newCaller()
	store := newTestStore(owner.UserID)
	order := &entity.Order{ID: uuid.New(), StoreID: store.ID, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed).
		Return(repository.ErrOrderStatusMismatch)

	_, err := fx.service.UpdateStatus(ctx, owner, order.ID, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domainerrors.ErrOrderStatusChanged)
}

func TestOrderService_UpdateStatus_NotFoundBeforeForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.UpdateStatus(ctx, newCaller(), orderID, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := newCaller()
	store := newTestStore(owner.UserID)
	order := &entity.Order{ID: uuid.New(), StoreID: store.ID, Status: entity.OrderStatusDelivering}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivering, entity.OrderStatusCompleted).
		Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	view, err := fx.service.UpdateStatus(ctx, owner, order.ID, entity.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, view.Status)
}

func TestOrderService_GetOrder(t *testing.T) {
	owner := newCaller()
	customer := newCaller()
	stranger := newCaller()
	store := newTestStore(owner.UserID)
	order := &entity.Order{ID: uuid.New(), UserID: customer.UserID, StoreID: store.ID, Status: entity.OrderStatusPending}

	tests := []struct {
		name    string
		caller  *entity.CallerIdentity
		wantErr error
	}{
		{name: "customer", caller: customer},
		{name: "store owner", caller: owner},
		{name: "stranger", caller: stranger, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
			if tt.caller != customer {
				fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
			}

			view, err := fx.service.GetOrder(ctx, tt.caller, order.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, view.ID)
		})
	}
}

func TestOrderService_ListOrders_AsCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	storeID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: caller.UserID, StoreID: storeID, Status: entity.OrderStatusPending},
		{ID: uuid.New(), UserID: caller.UserID, StoreID: storeID, Status: entity.OrderStatusCompleted},
	}

	fx.orderRepo.EXPECT().
		FindOrders(ctx, repository.OrderFilter{UserID: caller.UserID, StoreID: storeID}).
		Return(orders, nil)

	views, err := fx.service.ListOrders(ctx, caller, usecase.OrderQuery{StoreID: storeID})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.NotNil(t, views[0].AvailableAction)
	assert.Nil(t, views[1].AvailableAction)
}

func TestOrderService_ListOrders_AsStore(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := newCaller()
	store := newTestStore(owner.UserID)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.orderRepo.EXPECT().
		FindOrders(ctx, repository.OrderFilter{StoreID: store.ID}).
		Return([]*entity.Order{{ID: uuid.New(), StoreID: store.ID, Status: entity.OrderStatusPending}}, nil)

	views, err := fx.service.ListOrders(ctx, owner, usecase.OrderQuery{StoreID: store.ID, AsStore: true})
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestOrderService_ListOrders_AsStoreErrors(t *testing.T) {
	t.Run("missing store", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.ListOrders(context.Background(), newCaller(), usecase.OrderQuery{AsStore: true})
		requireValidationFields(t, err, "ID da loja é obrigatório")
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestOrderService(t)

		ctx := context.Background()
		store := newTestStore(uuid.New())
		fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

		_, err := fx.service.ListOrders(ctx, newCaller(), usecase.OrderQuery{StoreID: store.ID, AsStore: true})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestOrderService_Checkout_AcceptsTrailingZeroCents(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	store.Email = ""
	input := newCheckoutInput(store.ID)
	input.Subtotal = decimal.RequireFromString("40.000")

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.expectOrderCreated(ctx)
	fx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	view, err := fx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)
	assert.Equal(t, "45.00", view.Total.StringFixed(2))
}

// Two units at 10.00 with a 5.00 delivery fee: the cart shows 20.00 and the
// placed order totals 25.00 and starts pending.
func TestCartToCheckout_TwoItemsWithDeliveryFee(t *testing.T) {
	cartFx := createTestCartService(t)
	orderFx := createTestOrderService(t)

	ctx := context.Background()
	caller := newCaller()
	store := newTestStore(uuid.New())
	store.Email = ""
	store.DeliveryFee = decimal.RequireFromString("5.00")
	product := &entity.Product{
		ID:        uuid.New(),
		StoreID:   store.ID,
		Name:      "Brigadeiro",
		Price:     decimal.RequireFromString("10.00"),
		Available: true,
	}
	cart := &entity.Cart{
		ID:      uuid.New(),
		UserID:  caller.UserID,
		StoreID: store.ID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Quantity: 2, Product: product},
		},
	}

	cartFx.cartRepo.EXPECT().FindCartByUser(ctx, caller.UserID).Return(cart, nil)
	cartFx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)

	cartView, err := cartFx.service.GetCart(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "20.00", cartView.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", cartView.DeliveryFee.StringFixed(2))

	input := &usecase.CheckoutInput{
		StoreID: store.ID,
		Items: []usecase.CheckoutItemInput{
			{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 2},
		},
		Subtotal:      cartView.Subtotal,
		DeliveryFee:   cartView.DeliveryFee,
		Total:         cartView.Total,
		PaymentMethod: "pix",
	}

	orderFx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	orderFx.expectOrderCreated(ctx)
	orderFx.expectCartCleared(t, ctx, caller.UserID, store.ID, nil)
	orderFx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := orderFx.service.Checkout(ctx, caller, input)
	require.NoError(t, err)
	assert.Equal(t, "20.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "25.00", order.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}
