package repository

import (
	"context"

	"weev/internal/domain/entity"
	"weev/internal/errors"

	"github.com/google/uuid"
)

// ErrRewardTemplateNotFound is returned when no reward template matches the query.
var ErrRewardTemplateNotFound = errors.New("reward template not found")

// RewardTemplateRepository defines persistence operations for reward templates.
type RewardTemplateRepository interface {
	// FindByID retrieves a template by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RewardTemplate, error)

	// FindByIDAndBrand retrieves a template only when its product belongs to brandID.
	FindByIDAndBrand(ctx context.Context, id, brandID uuid.UUID) (*entity.RewardTemplate, error)

	// FindActiveByProduct returns every active template of a product (one-to-many, unordered).
	FindActiveByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.RewardTemplate, error)

	// ListByBrand returns all templates of the brand's products, newest first.
	ListByBrand(ctx context.Context, brandID uuid.UUID) ([]*entity.RewardTemplate, error)

	// Create persists a new template.
	Create(ctx context.Context, template *entity.RewardTemplate) error

	// Update saves the mutable fields of a template.
	Update(ctx context.Context, template *entity.RewardTemplate) error
}
