// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const birthDateLayout = "2006-01-02"

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, caller *entity.CallerIdentity) (*entity.User, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	return srv.findUser(ctx, caller.UserID)
}

// UpdateProfile applies the non-nil fields of input after validating all of them.
func (srv *profileService) UpdateProfile(ctx context.Context, caller *entity.CallerIdentity, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if err := applyProfileInput(user, input); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

func applyProfileInput(user *entity.User, input *usecase.UpdateProfileInput) error {
	var v domainerrors.Validator

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}

	if input.BirthDate != nil {
		raw := strings.TrimSpace(*input.BirthDate)
		if raw == "" {
			user.BirthDate = nil
		} else if birthDate, err := time.Parse(birthDateLayout, raw); err != nil {
			v.Check(false, "Data de nascimento inválida")
		} else {
			v.Check(!birthDate.After(time.Now()), "Data de nascimento não pode ser futura")
			user.BirthDate = &birthDate
		}
	}

	if input.CPF != nil {
		cpf := digitsOnly(*input.CPF)
		v.Check(cpf == "" || len(cpf) == 11, "CPF deve conter 11 dígitos")
		user.CPF = cpf
	}

	if input.Whatsapp != nil {
		raw := strings.TrimSpace(*input.Whatsapp)
		whatsapp := digitsOnly(raw)
		v.Check(raw == "" || whatsapp != "", "WhatsApp inválido")
		user.Whatsapp = whatsapp
	}

	if input.WhatsappCountryCode != nil {
		user.WhatsappCountryCode = digitsOnly(*input.WhatsappCountryCode)
	}

	if input.WhatsappConsent != nil {
		user.WhatsappConsent = *input.WhatsappConsent
	}

	return v.Err()
}

// DeleteProfile removes the caller's account. Accounts that still own stores are kept.
func (srv *profileService) DeleteProfile(ctx context.Context, caller *entity.CallerIdentity) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	storeCount, err := srv.storeRepo.CountStoresByOwner(ctx, caller.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to count owned stores")
	}
	if storeCount > 0 {
		return domainerrors.ErrUserOwnsStores
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().DeleteCartsByUser(ctx, caller.UserID, uuid.Nil); err != nil {
			return errors.Wrap(err, "failed to delete carts")
		}
		if err := repoFactory.AddressRepo().DeleteAddressesByUser(ctx, caller.UserID); err != nil {
			return errors.Wrap(err, "failed to delete addresses")
		}
		if err := repoFactory.DeviceRepo().DeleteDevicesByUser(ctx, caller.UserID); err != nil {
			return errors.Wrap(err, "failed to delete devices")
		}
		if err := repoFactory.UserRepo().Delete(ctx, caller.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	srv.log(ctx).Info("Profile deleted", slog.Any("userID", caller.UserID))

	return nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
