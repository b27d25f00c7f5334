package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

type productService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts lists the products of an existing store.
func (srv *productService) ListProducts(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	if storeID == uuid.Nil {
		return nil, domainerrors.NewValidationError("ID da loja é obrigatório")
	}

	if _, err := srv.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	products, err := srv.productRepo.FindProductsByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return products, nil
}

// GetProduct returns one product.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct adds a product to a store owned by the caller.
func (srv *productService) CreateProduct(ctx context.Context, caller *entity.CallerIdentity, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	var v domainerrors.Validator
	v.Check(input.StoreID != uuid.Nil, "ID da loja é obrigatório")
	v.Check(!isBlank(input.Name), "Nome do produto é obrigatório")
	v.Check(input.Price.IsPositive(), "Preço deve ser maior que zero")
	v.Check(entity.IsCents(input.Price), "Preço deve ter no máximo duas casas decimais")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := srv.checkStoreOwner(ctx, caller, input.StoreID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		StoreID:     input.StoreID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Images:      cleanImages(input.Images),
		Available:   true,
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("store_id", product.StoreID.String()),
	)

	return product, nil
}

// UpdateProduct applies a partial update to a product of the caller's store.
func (srv *productService) UpdateProduct(ctx context.Context, caller *entity.CallerIdentity, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	product, err := srv.loadOwnedProduct(ctx, caller, productID)
	if err != nil {
		return nil, err
	}

	var v domainerrors.Validator
	if input.Name != nil {
		v.Check(!isBlank(*input.Name), "Nome do produto é obrigatório")
	}
	if input.Price != nil {
		v.Check(input.Price.IsPositive(), "Preço deve ser maior que zero")
		v.Check(entity.IsCents(*input.Price), "Preço deve ter no máximo duas casas decimais")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Images != nil {
		product.Images = cleanImages(input.Images)
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product of the caller's store.
func (srv *productService) DeleteProduct(ctx context.Context, caller *entity.CallerIdentity, productID uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	product, err := srv.loadOwnedProduct(ctx, caller, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *productService) loadOwnedProduct(ctx context.Context, caller *entity.CallerIdentity, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.checkStoreOwner(ctx, caller, product.StoreID); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) checkStoreOwner(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) error {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to find store")
	}

	if !caller.Owns(store.UserID) {
		return domainerrors.ErrForbidden
	}

	return nil
}

func cleanImages(images []string) []string {
	cleaned := make([]string, 0, len(images))
	for _, image := range images {
		if image = strings.TrimSpace(image); image != "" {
			cleaned = append(cleaned, image)
		}
	}

	return cleaned
}
