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

type rewardTemplateRepository struct {
	q *query.Query
}

// NewRewardTemplateRepository is the constructor for rewardTemplateRepository.
func NewRewardTemplateRepository(db *gorm.DB) repository.RewardTemplateRepository {
	return &rewardTemplateRepository{
		q: query.Use(db),
	}
}

func (repo *rewardTemplateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RewardTemplate, error) {
	templateM, err := repo.q.RewardTemplateModel.WithContext(ctx).
		Where(repo.q.RewardTemplateModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward template by id")
	}

	return toRewardTemplateDomain(templateM), nil
}

// FindByIDAndBrand only matches templates whose product belongs to brandID.
func (repo *rewardTemplateRepository) FindByIDAndBrand(ctx context.Context, id, brandID uuid.UUID) (*entity.RewardTemplate, error) {
	t, p := repo.q.RewardTemplateModel, repo.q.ProductModel

	templateM, err := t.WithContext(ctx).
		Select(t.ALL).
		Join(p, p.ID.EqCol(t.ProductID)).
		Where(t.ID.Eq(id), p.BrandID.Eq(brandID)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward template by brand")
	}

	return toRewardTemplateDomain(templateM), nil
}

func (repo *rewardTemplateRepository) FindActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.RewardTemplate, error) {
	t := repo.q.RewardTemplateModel

	templateModels, err := t.WithContext(ctx).
		Where(t.ProductID.Eq(productID), t.Active.Is(true)).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active reward templates")
	}

	return toRewardTemplateDomains(templateModels), nil
}

func (repo *rewardTemplateRepository) ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.RewardTemplate, error) {
	t, p := repo.q.RewardTemplateModel, repo.q.ProductModel

	templateModels, err := t.WithContext(ctx).
		Select(t.ALL).
		Join(p, p.ID.EqCol(t.ProductID)).
		Where(p.BrandID.Eq(brandID)).
		Order(t.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reward templates by brand")
	}

	return toRewardTemplateDomains(templateModels), nil
}

func (repo *rewardTemplateRepository) Create(ctx context.Context, template *entity.RewardTemplate) error {
	templateM := fromRewardTemplateDomain(template)

	if err := repo.q.RewardTemplateModel.WithContext(ctx).Create(templateM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRewardType
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// Update saves the mutable template fields. The owning product never changes.
func (repo *rewardTemplateRepository) Update(ctx context.Context, template *entity.RewardTemplate) error {
	template.UpdatedAt = time.Now()
	templateM := fromRewardTemplateDomain(template)
	t := repo.q.RewardTemplateModel

	result, err := t.WithContext(ctx).
		Where(t.ID.Eq(template.ID)).
		Select(t.Name, t.Description, t.Type, t.Value, t.CouponCode, t.ExpiresAt, t.Active, t.UpdatedAt).
		Updates(templateM)

	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRewardType
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update reward template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRewardTemplateNotFound
	}

	return nil
}

func toRewardTemplateDomains(data []*model.RewardTemplateModel) []*entity.RewardTemplate {
	templates := make([]*entity.RewardTemplate, 0, len(data))
	for _, templateM := range data {
		templates = append(templates, toRewardTemplateDomain(templateM))
	}

	return templates
}

func toRewardTemplateDomain(data *model.RewardTemplateModel) *entity.RewardTemplate {
	if data == nil {
		return nil
	}

	return &entity.RewardTemplate{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Type:        entity.RewardType(data.Type),
		Value:       data.Value,
		CouponCode:  data.CouponCode,
		ExpiresAt:   data.ExpiresAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRewardTemplateDomain(data *entity.RewardTemplate) *model.RewardTemplateModel {
	if data == nil {
		return nil
	}

	return &model.RewardTemplateModel{
		ID:          newIDIfNil(data.ID),
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Type:        string(data.Type),
		Value:       data.Value,
		CouponCode:  data.CouponCode,
		ExpiresAt:   data.ExpiresAt,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
