package postgres

import (
	"context"

	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/infra/persistence/model"
	"weev/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type brandRepository struct {
	q *query.Query
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{
		q: query.Use(db),
	}
}

// FindByAdmin returns the oldest active brand owned by adminID.
func (repo *brandRepository) FindByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Brand, error) {
	b := repo.q.BrandModel

	brandM, err := b.WithContext(ctx).
		Where(b.AdminID.Eq(adminID), b.Active.Is(true)).
		Order(b.CreatedAt.Asc()).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by admin")
	}

	return toBrandDomain(brandM), nil
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.q.BrandModel.WithContext(ctx).Create(brandM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt

	return nil
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:          data.ID,
		AdminID:     data.AdminID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:          newIDIfNil(data.ID),
		AdminID:     data.AdminID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
	}
}
