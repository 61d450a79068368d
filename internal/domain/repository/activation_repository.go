package repository

import (
	"context"

	"weev/internal/domain/entity"
	"weev/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrActivationNotFound is returned when the user has not activated the product.
	ErrActivationNotFound = errors.New("activation not found")
	// ErrDuplicateActivation is returned when the (user, product) unique constraint rejects an insert.
	ErrDuplicateActivation = errors.New("product already activated by user")
)

// ActivationRepository defines persistence operations for the activation ledger.
// Entries are append-only.
type ActivationRepository interface {
	// FindByUserAndProduct returns the activation of productID by userID, if any.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Activation, error)

	// Create appends an activation. The (user_id, product_id) constraint decides races
	// and surfaces them as ErrDuplicateActivation.
	Create(ctx context.Context, activation *entity.Activation) error

	// ListByUser returns the user's activations with their products, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activation, error)

	// CountByUser returns how many products the user has activated.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
