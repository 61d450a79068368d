package postgres

import (
	"context"
	"time"

	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/infra/persistence/model"
	"weev/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	q *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		q: query.Use(db),
	}
}

// FindActiveByCode resolves an activation code. The code must already be normalized.
func (repo *productRepository) FindActiveByCode(ctx context.Context, code string) (*entity.Product, error) {
	p := repo.q.ProductModel

	productM, err := p.WithContext(ctx).
		Where(p.ActivationCode.Eq(code), p.Active.Is(true)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by activation code")
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	productM, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) FindByIDAndBrand(ctx context.Context, id, brandID uuid.UUID) (*entity.Product, error) {
	p := repo.q.ProductModel

	productM, err := p.WithContext(ctx).
		Where(p.ID.Eq(id), p.BrandID.Eq(brandID)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by brand")
	}

	return toProductDomain(productM), nil
}

func (repo *productRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	count, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.ActivationCode.Eq(code)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check activation code")
	}

	return count > 0, nil
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	p := repo.q.ProductModel
	do := p.WithContext(ctx)

	if filter.BrandID != nil {
		do = do.Where(p.BrandID.Eq(*filter.BrandID))
	}
	if filter.Category != "" {
		do = do.Where(p.Category.Eq(filter.Category))
	}
	if filter.Active != nil {
		do = do.Where(p.Active.Is(*filter.Active))
	}

	productModels, err := do.Order(p.CreatedAt.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) Categories(ctx context.Context) ([]string, error) {
	p := repo.q.ProductModel

	var categories []string
	if err := p.WithContext(ctx).
		Where(p.Active.Is(true), p.Category.IsNotNull(), p.Category.Neq("")).
		Distinct(p.Category).
		Order(p.Category).
		Pluck(p.Category, &categories); err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivationCode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBrandNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update saves the mutable catalog fields. The activation code never changes.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	productM := fromProductDomain(product)
	p := repo.q.ProductModel

	result, err := p.WithContext(ctx).
		Where(p.ID.Eq(product.ID)).
		Select(p.Name, p.Description, p.Category, p.Price, p.ImageURL, p.Active, p.UpdatedAt).
		Updates(productM)

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		BrandID:        data.BrandID,
		Name:           data.Name,
		Description:    data.Description,
		ActivationCode: data.ActivationCode,
		Category:       data.Category,
		Price:          data.Price,
		ImageURL:       data.ImageURL,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             newIDIfNil(data.ID),
		BrandID:        data.BrandID,
		Name:           data.Name,
		Description:    data.Description,
		ActivationCode: entity.NormalizeActivationCode(data.ActivationCode),
		Category:       data.Category,
		Price:          data.Price,
		ImageURL:       data.ImageURL,
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
