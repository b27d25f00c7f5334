package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists an order with its item snapshot.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.Must(uuid.NewV7())
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPending
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrders lists orders matching the filter, newest first. Zero IDs are ignored.
func (repo *orderRepository) FindOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.StoreID != uuid.Nil {
		query = query.Where("store_id = ?", filter.StoreID)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return toOrderDomainList(orderModels), nil
}

// UpdateOrderStatus moves an order from one status to another. It only
// writes when the stored status still equals from, and returns
// ErrOrderStatusMismatch otherwise.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusMismatch
	}

	return nil
}

type statusCount struct {
	Status string
	Count  int64
}

// CountOrdersByStatus groups all orders by status.
func (repo *orderRepository) CountOrdersByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []statusCount

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// SumOrderTotals sums the totals of orders in one status.
func (repo *orderRepository) SumOrderTotals(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("SUM(total)").
		Where("status = ?", status.String()).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// FindRecentOrders returns the newest orders across all stores.
func (repo *orderRepository) FindRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent orders")
	}

	return toOrderDomainList(orderModels), nil
}

// --- Mapper Functions ---

func toOrderDomainList(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	var changeAmount *decimal.Decimal
	if data.ChangeAmount.Valid {
		amount := data.ChangeAmount.Decimal
		changeAmount = &amount
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		StoreID:         data.StoreID,
		StoreName:       data.StoreName,
		StorePhone:      data.StorePhone,
		Items:           items,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		Status:          entity.OrderStatus(data.Status),
		PaymentMethod:   data.PaymentMethod,
		NeedsChange:     data.NeedsChange,
		ChangeAmount:    changeAmount,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make(datatypes.JSONSlice[model.OrderItemSnapshot], 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemSnapshot{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	var changeAmount decimal.NullDecimal
	if data.ChangeAmount != nil {
		changeAmount = decimal.NewNullDecimal(*data.ChangeAmount)
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		StoreID:         data.StoreID,
		StoreName:       data.StoreName,
		StorePhone:      data.StorePhone,
		Items:           items,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		Status:          data.Status.String(),
		PaymentMethod:   data.PaymentMethod,
		NeedsChange:     data.NeedsChange,
		ChangeAmount:    changeAmount,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
