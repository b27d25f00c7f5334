// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the storefront. The same account can buy from
// any store and own any number of stores.
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	PasswordHash        string     `json:"-"`
	Role                Role       `json:"role"`
	FullName            string     `json:"fullName"`
	BirthDate           *time.Time `json:"birthDate,omitempty"`
	CPF                 string     `json:"cpf"`
	Whatsapp            string     `json:"whatsapp"`
	WhatsappCountryCode string     `json:"whatsappCountryCode"`
	WhatsappConsent     bool       `json:"whatsappConsent"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// DisplayName returns the best human-readable name available for the user.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}

// IsAdmin reports whether the user may see the platform overview.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
