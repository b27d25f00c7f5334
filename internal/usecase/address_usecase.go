package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase manages the delivery addresses of a user.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, caller *entity.CallerIdentity) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, caller *entity.CallerIdentity, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, caller *entity.CallerIdentity, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, caller *entity.CallerIdentity, addressID uuid.UUID) error

	// LookupPostalCode never fails on lookup errors; it reports found=false instead.
	LookupPostalCode(ctx context.Context, zipCode string) *PostalCodeResult
}

// AddressInput carries an address; ID is only read on update.
type AddressInput struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	IsPrimary    bool      `json:"isPrimary"`
}

// PostalCodeResult is the outcome of a postal-code lookup.
type PostalCodeResult struct {
	Found   bool                  `json:"found"`
	Address *entity.PostalAddress `json:"address"`
}
