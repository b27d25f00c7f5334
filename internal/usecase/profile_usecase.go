package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, caller *entity.CallerIdentity) (*entity.User, error)
	UpdateProfile(ctx context.Context, caller *entity.CallerIdentity, input *UpdateProfileInput) (*entity.User, error)

	// DeleteProfile removes the caller's account with its carts, addresses and devices.
	DeleteProfile(ctx context.Context, caller *entity.CallerIdentity) error
}

// UpdateProfileInput defines the editable profile fields; nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName            *string `json:"fullName,omitempty"`
	BirthDate           *string `json:"birthDate,omitempty"`
	CPF                 *string `json:"cpf,omitempty"`
	Whatsapp            *string `json:"whatsapp,omitempty"`
	WhatsappCountryCode *string `json:"whatsappCountryCode,omitempty"`
	WhatsappConsent     *bool   `json:"whatsappConsent,omitempty"`
}
