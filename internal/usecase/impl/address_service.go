package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const postalCodeLength = 8

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	PostalCode  service.PostalCodeLookup
	Logger      *slog.Logger
}

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	postalCode  service.PostalCodeLookup
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		postalCode:  params.PostalCode,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the caller's addresses, primary first.
func (srv *addressService) ListAddresses(ctx context.Context, caller *entity.CallerIdentity) ([]*entity.Address, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses")
	}

	return addresses, nil
}

// CreateAddress stores a new address. The first address of a user is always primary.
func (srv *addressService) CreateAddress(ctx context.Context, caller *entity.CallerIdentity, input *usecase.AddressInput) (*entity.Address, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	address := &entity.Address{UserID: caller.UserID}
	applyAddressInput(address, input)
	srv.completeFromPostalCode(ctx, address)

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, err := addressRepo.CountAddressesByUser(ctx, caller.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count == 0 {
			address.IsPrimary = true
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to create address")
		}

		if address.IsPrimary {
			return errors.Wrap(addressRepo.ClearPrimary(ctx, caller.UserID, address.ID), "failed to clear primary address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save address")
	}

	srv.log(ctx).Info("Address created", slog.Any("addressID", address.ID), slog.Bool("primary", address.IsPrimary))

	return address, nil
}

// UpdateAddress replaces an address of the caller.
func (srv *addressService) UpdateAddress(ctx context.Context, caller *entity.CallerIdentity, input *usecase.AddressInput) (*entity.Address, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if input.ID == uuid.Nil {
		return nil, domainerrors.NewValidationError("ID do endereço é obrigatório")
	}

	address, err := srv.loadOwnedAddress(ctx, caller, input.ID)
	if err != nil {
		return nil, err
	}

	applyAddressInput(address, input)
	srv.completeFromPostalCode(ctx, address)

	if err := validateAddress(address); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to update address")
		}

		if address.IsPrimary {
			return errors.Wrap(addressRepo.ClearPrimary(ctx, caller.UserID, address.ID), "failed to clear primary address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save address")
	}

	return address, nil
}

// DeleteAddress removes an address of the caller.
func (srv *addressService) DeleteAddress(ctx context.Context, caller *entity.CallerIdentity, addressID uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	if _, err := srv.loadOwnedAddress(ctx, caller, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// LookupPostalCode resolves a CEP. Any failure is reported as not found.
func (srv *addressService) LookupPostalCode(ctx context.Context, zipCode string) *usecase.PostalCodeResult {
	zipCode = digitsOnly(zipCode)
	if len(zipCode) != postalCodeLength {
		return &usecase.PostalCodeResult{Found: false}
	}

	address, err := srv.postalCode.Lookup(ctx, zipCode)
	if err != nil {
		if !errors.Is(err, service.ErrPostalCodeNotFound) {
			srv.log(ctx).Warn("Postal code lookup failed", slog.String("zipCode", zipCode), slog.Any("error", err))
		}

		return &usecase.PostalCodeResult{Found: false}
	}

	return &usecase.PostalCodeResult{Found: true, Address: address}
}

// completeFromPostalCode fills missing location fields from the postal-code lookup.
func (srv *addressService) completeFromPostalCode(ctx context.Context, address *entity.Address) {
	if address.ZipCode == "" {
		return
	}
	if address.Street != "" && address.Neighborhood != "" && address.City != "" && address.State != "" {
		return
	}

	result := srv.LookupPostalCode(ctx, address.ZipCode)
	if !result.Found {
		return
	}

	fillBlank(&address.Street, result.Address.Street)
	fillBlank(&address.Neighborhood, result.Address.Neighborhood)
	fillBlank(&address.City, result.Address.City)
	fillBlank(&address.State, strings.ToUpper(result.Address.State))
	fillBlank(&address.Complement, result.Address.Complement)
}

func fillBlank(field *string, value string) {
	if *field == "" {
		*field = strings.TrimSpace(value)
	}
}

func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	address.Label = strings.TrimSpace(input.Label)
	address.Street = strings.TrimSpace(input.Street)
	address.Number = strings.TrimSpace(input.Number)
	address.Complement = strings.TrimSpace(input.Complement)
	address.Neighborhood = strings.TrimSpace(input.Neighborhood)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.ToUpper(strings.TrimSpace(input.State))
	address.ZipCode = digitsOnly(input.ZipCode)
	address.IsPrimary = input.IsPrimary
}

func validateAddress(address *entity.Address) error {
	var v domainerrors.Validator

	v.Check(address.Street != "", "Rua é obrigatória")
	v.Check(address.Number != "", "Número é obrigatório")
	v.Check(address.Neighborhood != "", "Bairro é obrigatório")
	v.Check(address.City != "", "Cidade é obrigatória")
	v.Check(address.State != "", "Estado é obrigatório")
	v.Check(address.ZipCode != "", "CEP é obrigatório")

	return v.Err()
}

func (srv *addressService) loadOwnedAddress(ctx context.Context, caller *entity.CallerIdentity, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != caller.UserID {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}
