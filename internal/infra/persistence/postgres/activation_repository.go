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
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

type activationRepository struct {
	q *query.Query
}

// NewActivationRepository is the constructor for activationRepository.
func NewActivationRepository(db *gorm.DB) repository.ActivationRepository {
	return &activationRepository{
		q: query.Use(db),
	}
}

func (repo *activationRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Activation, error) {
	a := repo.q.ActivationModel

	activationM, err := a.WithContext(ctx).
		Where(a.UserID.Eq(userID), a.ProductID.Eq(productID)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivationNotFound
		}

		return nil, errors.Wrap(err, "failed to find activation")
	}

	return toActivationDomain(activationM), nil
}

// Create appends a ledger entry. uq_activations_user_product rejects a second
// activation of the same product by the same user.
func (repo *activationRepository) Create(ctx context.Context, activation *entity.Activation) error {
	activationM := fromActivationDomain(activation)

	if err := repo.q.ActivationModel.WithContext(ctx).
		Omit(field.AssociationFields).
		Create(activationM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActivation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activation")
	}

	activation.ID = activationM.ID

	return nil
}

func (repo *activationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activation, error) {
	a := repo.q.ActivationModel

	activationModels, err := a.WithContext(ctx).
		Preload(a.Product).
		Where(a.UserID.Eq(userID)).
		Order(a.ActivatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activations")
	}

	activations := make([]*entity.Activation, 0, len(activationModels))
	for _, activationM := range activationModels {
		activations = append(activations, toActivationDomain(activationM))
	}

	return activations, nil
}

func (repo *activationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := repo.q.ActivationModel.WithContext(ctx).
		Where(repo.q.ActivationModel.UserID.Eq(userID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count activations")
	}

	return int(count), nil
}

func toActivationDomain(data *model.ActivationModel) *entity.Activation {
	if data == nil {
		return nil
	}

	return &entity.Activation{
		ID:            data.ID,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		Product:       toProductDomain(data.Product),
		PointsAwarded: data.PointsAwarded,
		ActivatedAt:   data.ActivatedAt,
	}
}

func fromActivationDomain(data *entity.Activation) *model.ActivationModel {
	if data == nil {
		return nil
	}

	return &model.ActivationModel{
		ID:            newIDIfNil(data.ID),
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		PointsAwarded: data.PointsAwarded,
		ActivatedAt:   data.ActivatedAt,
	}
}
