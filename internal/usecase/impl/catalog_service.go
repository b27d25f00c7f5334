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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Cache     service.StoreCache
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

type catalogService struct {
	storeRepo repository.StoreRepository
	cache     service.StoreCache
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		storeRepo: params.StoreRepo,
		cache:     params.Cache,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindStores resolves stores by slug or by city and state.
func (srv *catalogService) FindStores(ctx context.Context, caller *entity.CallerIdentity, query usecase.StoreQuery) ([]*entity.StoreListing, error) {
	if slug := strings.TrimSpace(query.Slug); slug != "" {
		store, err := srv.findBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}

		return []*entity.StoreListing{newListing(store, caller)}, nil
	}

	stores, err := srv.storeRepo.FindStores(ctx, repository.StoreFilter{
		City:  query.City,
		State: strings.ToUpper(strings.TrimSpace(query.State)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	listings := make([]*entity.StoreListing, 0, len(stores))
	for _, store := range stores {
		listings = append(listings, newListing(store, caller))
	}

	return listings, nil
}

// findBySlug reads through the cache. Cache failures never fail the lookup.
func (srv *catalogService) findBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	cached, found, err := srv.cache.GetBySlug(ctx, slug)
	if err != nil {
		srv.log(ctx).Warn("store cache read failed", slog.String("slug", slug), slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	store, err := srv.storeRepo.FindStoreBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by slug")
	}

	if err := srv.cache.Set(ctx, store); err != nil {
		srv.log(ctx).Warn("store cache write failed", slog.String("slug", slug), slog.Any("error", err))
	}

	return store, nil
}

func newListing(store *entity.Store, caller *entity.CallerIdentity) *entity.StoreListing {
	return &entity.StoreListing{Store: store, IsOwner: caller.Owns(store.UserID)}
}

// GetMyStores lists the caller's stores.
func (srv *catalogService) GetMyStores(ctx context.Context, caller *entity.CallerIdentity) ([]*entity.Store, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	stores, err := srv.storeRepo.FindStoresByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find caller stores")
	}

	return stores, nil
}

// CreateStore validates and persists a new store owned by the caller.
func (srv *catalogService) CreateStore(ctx context.Context, caller *entity.CallerIdentity, input *usecase.StoreInput) (*entity.Store, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	input = normalizeStoreInput(input)
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}
	if err := srv.checkUnique(ctx, input, uuid.Nil, true); err != nil {
		return nil, err
	}

	store := &entity.Store{UserID: caller.UserID, IsOpen: true}
	applyStoreInput(store, input)

	if err := srv.storeRepo.CreateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateStore) {
			return nil, domainerrors.ErrConflict.WrapMessage("store slug or cnpj already exists")
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created",
		slog.String("store_id", store.ID.String()),
		slog.String("slug", store.Slug),
	)

	return store, nil
}

// UpdateStore replaces the editable fields of a store owned by the caller.
func (srv *catalogService) UpdateStore(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID, input *usecase.StoreInput) (*entity.Store, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	store, err := srv.loadOwnedStore(ctx, caller, storeID)
	if err != nil {
		return nil, err
	}

	input = normalizeStoreInput(input)
	if err := validateStoreInput(input); err != nil {
		return nil, err
	}
	if err := srv.checkUnique(ctx, input, store.ID, input.Slug != store.Slug); err != nil {
		return nil, err
	}

	oldSlug := store.Slug
	applyStoreInput(store, input)

	if err := srv.storeRepo.UpdateStore(ctx, store); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateStore):
			return nil, domainerrors.ErrConflict.WrapMessage("store slug or cnpj already exists")
		case errors.Is(err, repository.ErrStoreNotFound):
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to update store")
	}

	srv.invalidate(ctx, oldSlug)
	if store.Slug != oldSlug {
		srv.invalidate(ctx, store.Slug)
	}

	return store, nil
}

// DeleteStore removes a store owned by the caller.
func (srv *catalogService) DeleteStore(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	store, err := srv.loadOwnedStore(ctx, caller, storeID)
	if err != nil {
		return err
	}

	if err := srv.storeRepo.DeleteStore(ctx, store.ID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to delete store")
	}

	srv.invalidate(ctx, store.Slug)
	srv.log(ctx).Info("Store deleted", slog.String("store_id", store.ID.String()))

	return nil
}

// SetStoreOpen flips the open flag of a store owned by the caller.
func (srv *catalogService) SetStoreOpen(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID, isOpen bool) (*entity.Store, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	store, err := srv.loadOwnedStore(ctx, caller, storeID)
	if err != nil {
		return nil, err
	}

	if err := srv.storeRepo.UpdateStoreOpen(ctx, store.ID, isOpen); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to update store status")
	}

	store.IsOpen = isOpen
	srv.invalidate(ctx, store.Slug)

	return store, nil
}

// GetStoreQRCode renders the QR code of a store owned by the caller.
func (srv *catalogService) GetStoreQRCode(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) ([]byte, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	store, err := srv.loadOwnedStore(ctx, caller, storeID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateStoreQR(store.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store qr code")
	}

	return png, nil
}

// loadOwnedStore returns NotFound before Forbidden.
func (srv *catalogService) loadOwnedStore(ctx context.Context, caller *entity.CallerIdentity, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	if !caller.Owns(store.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return store, nil
}

func (srv *catalogService) checkUnique(ctx context.Context, input *usecase.StoreInput, excludeID uuid.UUID, checkSlug bool) error {
	if checkSlug {
		taken, err := srv.storeRepo.SlugExists(ctx, input.Slug, excludeID)
		if err != nil {
			return errors.Wrap(err, "failed to check slug")
		}
		if taken {
			return domainerrors.ErrStoreSlugTaken
		}
	}

	taken, err := srv.storeRepo.CNPJExists(ctx, input.CNPJ, excludeID)
	if err != nil {
		return errors.Wrap(err, "failed to check cnpj")
	}
	if taken {
		return domainerrors.ErrStoreCNPJTaken
	}

	return nil
}

func (srv *catalogService) invalidate(ctx context.Context, slug string) {
	if err := srv.cache.Invalidate(ctx, slug); err != nil {
		srv.log(ctx).Warn("store cache invalidation failed", slog.String("slug", slug), slog.Any("error", err))
	}
}

func normalizeStoreInput(input *usecase.StoreInput) *usecase.StoreInput {
	if input == nil {
		input = &usecase.StoreInput{}
	}

	normalized := *input
	normalized.Name = strings.TrimSpace(input.Name)
	normalized.Slug = strings.TrimSpace(input.Slug)
	normalized.Category = strings.TrimSpace(input.Category)
	normalized.CNPJ = strings.TrimSpace(input.CNPJ)
	normalized.Phone = strings.TrimSpace(input.Phone)
	normalized.Email = strings.TrimSpace(input.Email)

	return &normalized
}

func validateStoreInput(input *usecase.StoreInput) error {
	var v domainerrors.Validator

	v.Check(input.Name != "", "Nome da loja é obrigatório")
	if input.Slug == "" {
		v.Check(false, "Identificação única é obrigatória")
	} else {
		v.Check(entity.IsValidSlug(input.Slug), "Identificação deve conter apenas letras minúsculas e números")
	}
	v.Check(input.Category != "", "Categoria é obrigatória")
	v.Check(input.CNPJ != "", "CNPJ é obrigatório")
	v.Check(input.Phone != "", "Telefone é obrigatório")
	v.Check(input.Email != "", "Email é obrigatório")

	if input.Address == nil {
		v.Check(false, "Endereço é obrigatório")
	} else {
		v.Check(!isBlank(input.Address.ZipCode), "CEP é obrigatório")
		v.Check(!isBlank(input.Address.Street), "Rua é obrigatória")
		v.Check(!isBlank(input.Address.Number), "Número é obrigatório")
		v.Check(!isBlank(input.Address.Neighborhood), "Bairro é obrigatório")
		v.Check(!isBlank(input.Address.City), "Cidade é obrigatória")
		v.Check(!isBlank(input.Address.State), "Estado é obrigatório")
	}

	v.Check(nonNegative(input.MinimumOrder), "Pedido mínimo não pode ser negativo")
	v.Check(nonNegative(input.DeliveryFee), "Taxa de entrega não pode ser negativa")
	v.Check(nonNegative(input.FreeShippingThreshold), "Valor para frete grátis não pode ser negativo")
	v.Check(inCents(input.MinimumOrder, input.DeliveryFee, input.FreeShippingThreshold), "Valores devem ter no máximo duas casas decimais")

	return v.Err()
}

func nonNegative(value *decimal.Decimal) bool {
	return value == nil || !value.IsNegative()
}

func inCents(values ...*decimal.Decimal) bool {
	for _, value := range values {
		if value != nil && !entity.IsCents(*value) {
			return false
		}
	}

	return true
}

func valueOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}

	return *value
}

func applyStoreInput(store *entity.Store, input *usecase.StoreInput) {
	store.Name = input.Name
	store.Slug = input.Slug
	store.Description = strings.TrimSpace(input.Description)
	store.Category = input.Category
	store.CNPJ = input.CNPJ
	store.Phone = input.Phone
	store.Email = input.Email
	store.Image = strings.TrimSpace(input.Image)
	store.MinimumOrder = valueOrZero(input.MinimumOrder)
	store.DeliveryFee = valueOrZero(input.DeliveryFee)
	store.FreeShippingThreshold = valueOrZero(input.FreeShippingThreshold)
	store.Address = entity.StoreAddress{
		ZipCode:      digitsOnly(input.Address.ZipCode),
		Street:       strings.TrimSpace(input.Address.Street),
		Number:       strings.TrimSpace(input.Address.Number),
		Complement:   strings.TrimSpace(input.Address.Complement),
		Neighborhood: strings.TrimSpace(input.Address.Neighborhood),
		City:         strings.TrimSpace(input.Address.City),
		State:        strings.ToUpper(strings.TrimSpace(input.Address.State)),
	}
}
