// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase defines the store directory operations.
type CatalogUsecase interface {
	// FindStores resolves stores by slug, or lists them by city and state.
	// A slug lookup yields exactly one store or a not-found error.
	FindStores(ctx context.Context, caller *entity.CallerIdentity, query StoreQuery) ([]*entity.StoreListing, error)

	// GetMyStores lists the stores owned by the caller.
	GetMyStores(ctx context.Context, caller *entity.CallerIdentity) ([]*entity.Store, error)

	CreateStore(ctx context.Context, caller *entity.CallerIdentity, input *StoreInput) (*entity.Store, error)
	UpdateStore(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID, input *StoreInput) (*entity.Store, error)
	DeleteStore(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) error

	// SetStoreOpen toggles whether the store accepts orders.
	SetStoreOpen(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID, isOpen bool) (*entity.Store, error)

	// GetStoreQRCode renders a PNG QR code pointing at the public store page.
	GetStoreQRCode(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) ([]byte, error)
}

// StoreQuery selects stores either by slug or by location.
type StoreQuery struct {
	Slug  string
	City  string
	State string
}

// StoreInput carries the editable fields of a store.
type StoreInput struct {
	Name                  string               `json:"name"`
	Slug                  string               `json:"slug"`
	Description           string               `json:"description"`
	Category              string               `json:"category"`
	CNPJ                  string               `json:"cnpj"`
	Phone                 string               `json:"phone"`
	Email                 string               `json:"email"`
	Image                 string               `json:"image"`
	MinimumOrder          *decimal.Decimal     `json:"minimumOrder"`
	DeliveryFee           *decimal.Decimal     `json:"deliveryFee"`
	FreeShippingThreshold *decimal.Decimal     `json:"freeShippingThreshold"`
	Address               *entity.StoreAddress `json:"address"`
}
