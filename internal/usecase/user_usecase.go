package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines account registration, login and caller resolution.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveCaller loads the identity behind a session or token. The user id
	// is preferred; the email is used when no id is known.
	ResolveCaller(ctx context.Context, userID uuid.UUID, email string) (*entity.CallerIdentity, error)
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the authenticated user and a bearer token.
type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}
