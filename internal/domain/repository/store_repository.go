package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when the slug or CNPJ collides with another store.
	ErrDuplicateStore = errors.New("store slug or cnpj already exists")
)

// StoreFilter narrows a store listing. Empty fields are ignored.
type StoreFilter struct {
	City  string
	State string
}

// StoreCounts holds aggregate store counters.
type StoreCounts struct {
	Total int64
	Open  int64
}

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoreBySlug retrieves a store by its slug.
	FindStoreBySlug(ctx context.Context, slug string) (*entity.Store, error)

	// FindStores lists stores matching the filter, newest first.
	// City matches case-insensitively after trimming, state matches exactly.
	FindStores(ctx context.Context, filter StoreFilter) ([]*entity.Store, error)

	// FindStoresByOwner lists the stores of one owner, newest first.
	FindStoresByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error)

	// SlugExists reports whether another store than excludeID uses the slug.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// CNPJExists reports whether another store than excludeID uses the CNPJ.
	CNPJExists(ctx context.Context, cnpj string, excludeID uuid.UUID) (bool, error)

	// UpdateStore modifies an existing store.
	UpdateStore(ctx context.Context, store *entity.Store) error

	// UpdateStoreOpen sets the open flag of a store.
	UpdateStoreOpen(ctx context.Context, id uuid.UUID, isOpen bool) error

	// DeleteStore removes a store by its ID.
	DeleteStore(ctx context.Context, id uuid.UUID) error

	// CountStoresByOwner returns how many stores a user owns.
	CountStoresByOwner(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountStores returns platform-wide store counters.
	CountStores(ctx context.Context) (StoreCounts, error)

	// FindRecentStores returns the newest stores.
	FindRecentStores(ctx context.Context, limit int) ([]*entity.Store, error)
}
