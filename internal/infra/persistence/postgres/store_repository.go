package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// storeRepository implements repository.StoreRepository using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// CreateStore persists a new store.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	if store.ID == uuid.Nil {
		store.ID = uuid.Must(uuid.NewV7())
	}
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindStoreBySlug retrieves a store by its public slug.
func (repo *storeRepository) FindStoreBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *storeRepository) findOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return toStoreDomain(&storeM), nil
}

// FindStores lists stores, newest first. City matches case-insensitively,
// state matches exactly.
func (repo *storeRepository) FindStores(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel
	if err := storeListQuery(repo.db.WithContext(ctx), filter).Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores")
	}

	return toStoreDomainList(storeModels), nil
}

// storeListQuery compares city by equality, never as a LIKE pattern.
func storeListQuery(db *gorm.DB, filter repository.StoreFilter) *gorm.DB {
	query := db.Model(&model.StoreModel{})

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("LOWER(city) = LOWER(?)", city)
	}
	if state := strings.TrimSpace(filter.State); state != "" {
		query = query.Where("state = ?", state)
	}

	return query.Order("created_at DESC")
}

// FindStoresByOwner lists the stores of one owner, newest first.
func (repo *storeRepository) FindStoresByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stores by owner")
	}

	return toStoreDomainList(storeModels), nil
}

// SlugExists reports whether another store already uses slug.
func (repo *storeRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "slug = ?", slug, excludeID)
}

// CNPJExists reports whether another store already uses cnpj.
func (repo *storeRepository) CNPJExists(ctx context.Context, cnpj string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "cnpj = ?", cnpj, excludeID)
}

func (repo *storeRepository) exists(ctx context.Context, query string, arg any, excludeID uuid.UUID) (bool, error) {
	tx := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Where(query, arg)
	if excludeID != uuid.Nil {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check store uniqueness")
	}

	return count > 0, nil
}

// UpdateStore saves every mutable column of a store.
func (repo *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Select(
			"slug", "name", "description", "category", "cnpj", "phone", "email", "image",
			"minimum_order", "delivery_fee", "free_shipping_threshold", "is_open",
			"zip_code", "street", "number", "complement", "neighborhood", "city", "state", "updated_at",
		).
		Updates(storeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateStore
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// UpdateStoreOpen sets the open flag.
func (repo *storeRepository) UpdateStoreOpen(ctx context.Context, id uuid.UUID, isOpen bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", id).
		Update("is_open", isOpen)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store open state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// DeleteStore removes a store by ID.
func (repo *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// CountStoresByOwner counts the stores of one owner.
func (repo *storeRepository) CountStoresByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores by owner")
	}

	return count, nil
}

// CountStores returns platform-wide store counts.
func (repo *storeRepository) CountStores(ctx context.Context) (repository.StoreCounts, error) {
	var counts repository.StoreCounts

	err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_open) AS open").
		Scan(&counts).Error
	if err != nil {
		return repository.StoreCounts{}, errors.Wrap(err, "failed to count stores")
	}

	return counts, nil
}

// FindRecentStores returns the newest stores.
func (repo *storeRepository) FindRecentStores(ctx context.Context, limit int) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent stores")
	}

	return toStoreDomainList(storeModels), nil
}

// --- Mapper Functions ---

func toStoreDomainList(storeModels []*model.StoreModel) []*entity.Store {
	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores
}

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:                    data.ID,
		UserID:                data.UserID,
		Slug:                  data.Slug,
		Name:                  data.Name,
		Description:           data.Description,
		Category:              data.Category,
		CNPJ:                  data.CNPJ,
		Phone:                 data.Phone,
		Email:                 data.Email,
		Image:                 data.Image,
		MinimumOrder:          data.MinimumOrder,
		DeliveryFee:           data.DeliveryFee,
		FreeShippingThreshold: data.FreeShippingThreshold,
		IsOpen:                data.IsOpen,
		Address: entity.StoreAddress{
			ZipCode:      data.ZipCode,
			Street:       data.Street,
			Number:       data.Number,
			Complement:   data.Complement,
			Neighborhood: data.Neighborhood,
			City:         data.City,
			State:        data.State,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		Slug:                  data.Slug,
		Name:                  data.Name,
		Description:           data.Description,
		Category:              data.Category,
		CNPJ:                  data.CNPJ,
		Phone:                 data.Phone,
		Email:                 data.Email,
		Image:                 data.Image,
		MinimumOrder:          data.MinimumOrder,
		DeliveryFee:           data.DeliveryFee,
		FreeShippingThreshold: data.FreeShippingThreshold,
		IsOpen:                data.IsOpen,
		ZipCode:               data.Address.ZipCode,
		Street:                data.Address.Street,
		Number:                data.Address.Number,
		Complement:            data.Address.Complement,
		Neighborhood:          data.Address.Neighborhood,
		City:                  data.Address.City,
		State:                 data.Address.State,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
