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

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the caller's cart with totals computed from live prices.
func (srv *cartService) GetCart(ctx context.Context, caller *entity.CallerIdentity) (*entity.CartView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindCartByUser(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	store, err := srv.storeRepo.FindStoreByID(ctx, cart.StoreID)
	if err != nil && !errors.Is(err, repository.ErrStoreNotFound) {
		return nil, errors.Wrap(err, "failed to find cart store")
	}

	return entity.NewCartView(cart, store), nil
}

// AddItem finds or creates the cart and upserts the product line in one transaction.
func (srv *cartService) AddItem(ctx context.Context, caller *entity.CallerIdentity, input *usecase.AddCartItemInput) (*entity.CartView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	var v domainerrors.Validator
	v.Check(input.ProductID != uuid.Nil, "ID do produto é obrigatório")
	v.Check(quantity >= 1, "Quantidade deve ser maior que zero")
	if err := v.Err(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		cartRepo := repoFactory.CartRepo()
		cart, err := cartRepo.FindCartByUser(ctx, caller.UserID)
		switch {
		case errors.Is(err, repository.ErrCartNotFound):
			cart = nil
		case err != nil:
			return errors.Wrap(err, "failed to find cart")
		case cart.StoreID != product.StoreID:
			return domainerrors.ErrCartStoreConflict
		}

		store, err := repoFactory.StoreRepo().FindStoreByID(ctx, product.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return errors.Wrap(err, "failed to find store")
		}
		if !product.Available {
			return domainerrors.ErrProductUnavailable
		}
		if !store.IsOpen {
			return domainerrors.ErrStoreClosed
		}

		if cart == nil {
			cart, err = createCart(ctx, cartRepo, caller.UserID, product.StoreID)
			if err != nil {
				return err
			}
		}

		return srv.upsertLine(ctx, cartRepo, cart.ID, product.ID, quantity)
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, caller)
}

// createCart opens a cart for the store. When a concurrent request opened
// one first, that cart is used if it belongs to the same store.
func createCart(ctx context.Context, cartRepo repository.CartRepository, userID, storeID uuid.UUID) (*entity.Cart, error) {
	cart := &entity.Cart{UserID: userID, StoreID: storeID}

	err := cartRepo.CreateCart(ctx, cart)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartExists) {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	existing, err := cartRepo.FindCartByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if existing.StoreID != storeID {
		return nil, domainerrors.ErrCartStoreConflict
	}

	return existing, nil
}

func (srv *cartService) upsertLine(ctx context.Context, cartRepo repository.CartRepository, cartID, productID uuid.UUID, quantity int) error {
	item, err := cartRepo.FindCartItemByProduct(ctx, cartID, productID)
	switch {
	case errors.Is(err, repository.ErrCartItemNotFound):
		item = &entity.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
		if err := cartRepo.CreateCartItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create cart item")
		}
	case err != nil:
		return errors.Wrap(err, "failed to find cart item")
	default:
		if err := cartRepo.UpdateCartItemQuantity(ctx, item.ID, item.Quantity+quantity); err != nil {
			return errors.Wrap(err, "failed to increment cart item")
		}
	}

	if err := cartRepo.TouchCart(ctx, cartID); err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}

	return nil
}

// UpdateItemQuantity overwrites the quantity of a line owned by the caller.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, caller *entity.CallerIdentity, itemID uuid.UUID, quantity int) (*entity.CartView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, domainerrors.NewValidationError("Quantidade deve ser maior que zero")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := loadOwnedCartItem(ctx, cartRepo, caller, itemID)
		if err != nil {
			return err
		}

		if err := cartRepo.UpdateCartItemQuantity(ctx, item.ID, quantity); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to update cart item")
		}

		return errors.Wrap(cartRepo.TouchCart(ctx, item.CartID), "failed to touch cart")
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, caller)
}

// RemoveItem deletes a line; removing the last line deletes the cart too.
func (srv *cartService) RemoveItem(ctx context.Context, caller *entity.CallerIdentity, itemID uuid.UUID) (*entity.CartView, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := loadOwnedCartItem(ctx, cartRepo, caller, itemID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteCartItem(ctx, item.ID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to delete cart item")
		}

		remaining, err := cartRepo.CountCartItems(ctx, item.CartID)
		if err != nil {
			return errors.Wrap(err, "failed to count cart items")
		}
		if remaining == 0 {
			return errors.Wrap(cartRepo.DeleteCart(ctx, item.CartID), "failed to delete empty cart")
		}

		return errors.Wrap(cartRepo.TouchCart(ctx, item.CartID), "failed to touch cart")
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, caller)
}

// ClearCart deletes the caller's carts. Clearing nothing is not an error.
func (srv *cartService) ClearCart(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CartRepo().DeleteCartsByUser(ctx, caller.UserID, storeID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cart cleared",
		slog.String("user_id", caller.UserID.String()),
		slog.String("store_id", storeID.String()),
	)

	return nil
}

// loadOwnedCartItem returns NotFound before Forbidden.
func loadOwnedCartItem(ctx context.Context, cartRepo repository.CartRepository, caller *entity.CallerIdentity, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := cartRepo.FindCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	cart, err := cartRepo.FindCartByID(ctx, item.CartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	if !caller.Owns(cart.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return item, nil
}
