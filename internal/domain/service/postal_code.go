package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrPostalCodeNotFound is returned when the lookup service knows no such code.
var ErrPostalCodeNotFound = errors.New("postal code not found")

// PostalCodeLookup resolves a Brazilian CEP into an address.
type PostalCodeLookup interface {
	Lookup(ctx context.Context, zipCode string) (*entity.PostalAddress, error)
}
