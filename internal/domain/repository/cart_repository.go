package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartExists is returned when the user already holds a cart.
	ErrCartExists = errors.New("cart already exists")
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// FindCartByUser retrieves the most recent cart of a user with its items and their products.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindCartByID retrieves a cart without its items.
	FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// CreateCart persists a new empty cart, or returns ErrCartExists when the user already has one.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// TouchCart bumps the updated timestamp of a cart.
	TouchCart(ctx context.Context, id uuid.UUID) error

	// DeleteCart removes a cart and its items.
	DeleteCart(ctx context.Context, id uuid.UUID) error

	// DeleteCartsByUser removes every cart of a user, restricted to storeID when it is not uuid.Nil.
	DeleteCartsByUser(ctx context.Context, userID, storeID uuid.UUID) error

	// FindCartItemByID retrieves a cart line by its unique ID.
	FindCartItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindCartItemByProduct retrieves the line of a product inside a cart.
	FindCartItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// CreateCartItem persists a new cart line.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// UpdateCartItemQuantity overwrites the quantity of a cart line.
	UpdateCartItemQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteCartItem removes a cart line.
	DeleteCartItem(ctx context.Context, id uuid.UUID) error

	// CountCartItems returns the number of lines in a cart.
	CountCartItems(ctx context.Context, cartID uuid.UUID) (int64, error)
}
