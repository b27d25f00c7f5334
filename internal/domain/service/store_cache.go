package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// StoreCache is a read-through cache of stores keyed by slug.
// It is never authoritative: a miss or an error falls back to the database.
type StoreCache interface {
	// GetBySlug returns the cached store; found is false on a miss.
	GetBySlug(ctx context.Context, slug string) (store *entity.Store, found bool, err error)

	// Set caches a store under its slug.
	Set(ctx context.Context, store *entity.Store) error

	// Invalidate drops the entry of a slug.
	Invalidate(ctx context.Context, slug string) error
}
