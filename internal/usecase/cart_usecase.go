package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the single active cart of a user.
type CartUsecase interface {
	// GetCart returns the caller's cart view, or nil when there is none.
	GetCart(ctx context.Context, caller *entity.CallerIdentity) (*entity.CartView, error)

	// AddItem puts a product in the cart, incrementing an existing line.
	AddItem(ctx context.Context, caller *entity.CallerIdentity, input *AddCartItemInput) (*entity.CartView, error)

	// UpdateItemQuantity overwrites the quantity of one line.
	UpdateItemQuantity(ctx context.Context, caller *entity.CallerIdentity, itemID uuid.UUID, quantity int) (*entity.CartView, error)

	// RemoveItem deletes one line; the cart goes away with its last line.
	RemoveItem(ctx context.Context, caller *entity.CallerIdentity, itemID uuid.UUID) (*entity.CartView, error)

	// ClearCart deletes the caller's carts. A nil storeID clears every store.
	ClearCart(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) error
}

// AddCartItemInput defines the product and quantity to add. A missing quantity means one.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  *int      `json:"quantity"`
}
