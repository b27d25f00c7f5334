package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// IsValidSlug reports whether slug is made of lowercase letters and digits only.
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Store is a seller's storefront. It is owned by exactly one user.
type Store struct {
	ID                    uuid.UUID       `json:"id"`
	UserID                uuid.UUID       `json:"userId"`
	Slug                  string          `json:"slug"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	Category              string          `json:"category"`
	CNPJ                  string          `json:"cnpj"`
	Phone                 string          `json:"phone"`
	Email                 string          `json:"email"`
	Image                 string          `json:"image"`
	MinimumOrder          decimal.Decimal `json:"minimumOrder"`
	DeliveryFee           decimal.Decimal `json:"deliveryFee"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	IsOpen                bool            `json:"isOpen"`
	Address               StoreAddress    `json:"address"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// StoreAddress is the physical location of a store.
type StoreAddress struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// DeliveryFeeFor returns the fee charged for a cart with the given subtotal.
// A positive free-shipping threshold waives the fee once reached.
func (s *Store) DeliveryFeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if s.FreeShippingThreshold.IsPositive() && subtotal.GreaterThanOrEqual(s.FreeShippingThreshold) {
		return decimal.Zero
	}

	return s.DeliveryFee
}

// StoreListing is a store annotated for the requesting caller.
type StoreListing struct {
	*Store
	IsOwner bool `json:"isOwner"`
}
