package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements repository.CartRepository using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindCartByUser loads the user's cart with its items and their products.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// FindCartByID loads a cart header without items.
func (repo *cartRepository) FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartDomain(&cartM), nil
}

// CreateCart persists an empty cart.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.Must(uuid.NewV7())
	}
	cartM := &model.CartModel{
		ID:      cart.ID,
		UserID:  cart.UserID,
		StoreID: cart.StoreID,
	}

	result := insertCartIfAbsent(repo.db.WithContext(ctx), cartM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartExists
	}

	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// insertCartIfAbsent skips the insert instead of aborting the transaction
// when the user already has a cart.
func insertCartIfAbsent(db *gorm.DB, cartM *model.CartModel) *gorm.DB {
	return db.Omit("Items").
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(cartM)
}

// TouchCart bumps the cart's updated_at.
func (repo *cartRepository) TouchCart(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch cart")
	}

	return nil
}

// DeleteCart removes a cart and its items.
func (repo *cartRepository) DeleteCart(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", id).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items")
	}
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// DeleteCartsByUser removes the user's carts. A nil storeID matches every store.
func (repo *cartRepository) DeleteCartsByUser(ctx context.Context, userID, storeID uuid.UUID) error {
	carts := repo.db.WithContext(ctx).Model(&model.CartModel{}).Select("id").Where("user_id = ?", userID)
	if storeID != uuid.Nil {
		carts = carts.Where("store_id = ?", storeID)
	}

	if err := repo.db.WithContext(ctx).Where("cart_id IN (?)", carts).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items")
	}

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if storeID != uuid.Nil {
		query = query.Where("store_id = ?", storeID)
	}
	if err := query.Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete carts")
	}

	return nil
}

// FindCartItemByID loads one cart item with its product.
func (repo *cartRepository) FindCartItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	return repo.findItem(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindCartItemByProduct loads the line for productID inside a cart.
func (repo *cartRepository) FindCartItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	return repo.findItem(repo.db.WithContext(ctx).Where("cart_id = ? AND product_id = ?", cartID, productID))
}

func (repo *cartRepository) findItem(query *gorm.DB) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := query.Preload("Product").First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// CreateCartItem adds a line to a cart.
func (repo *cartRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.Must(uuid.NewV7())
	}
	itemM := &model.CartItemModel{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Omit("Product").Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	return nil
}

// UpdateCartItemQuantity sets the quantity of a line.
func (repo *cartRepository) UpdateCartItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteCartItem removes one line.
func (repo *cartRepository) DeleteCartItem(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// CountCartItems counts the lines of a cart.
func (repo *cartRepository) CountCartItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreID:   data.StoreID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
	}
}
