package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductUsecase defines product catalog operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, caller *entity.CallerIdentity, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, caller *entity.CallerIdentity, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, caller *entity.CallerIdentity, productID uuid.UUID) error
}

// CreateProductInput defines the data required to add a product to a store.
type CreateProductInput struct {
	StoreID     uuid.UUID       `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Available   *bool           `json:"available"`
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Available   *bool            `json:"available,omitempty"`
}
