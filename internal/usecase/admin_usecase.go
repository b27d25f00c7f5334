package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AdminUsecase exposes platform-wide figures to administrators.
type AdminUsecase interface {
	GetOverview(ctx context.Context, caller *entity.CallerIdentity) (*entity.AdminOverview, error)
}
