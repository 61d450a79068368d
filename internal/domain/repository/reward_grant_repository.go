package repository

import (
	"context"
	"time"

	"weev/internal/domain/entity"
	"weev/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrRewardGrantNotFound is returned when no grant matches the query.
	ErrRewardGrantNotFound = errors.New("reward grant not found")
	// ErrGrantStateConflict is returned when a conditional state update matched no available grant.
	ErrGrantStateConflict = errors.New("reward grant is no longer available")
)

// RewardGrantRepository defines persistence operations for the reward grant ledger.
type RewardGrantRepository interface {
	// CreateBatch appends grants in one statement. An empty slice is a no-op.
	CreateBatch(ctx context.Context, grants []*entity.RewardGrant) error

	// FindByIDForUser returns the grant owned by userID with its template, locking the
	// grant row until the surrounding transaction ends.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.RewardGrant, error)

	// UpdateState moves an available grant to state. It returns ErrGrantStateConflict
	// when the grant is not available anymore.
	UpdateState(ctx context.Context, id uuid.UUID, state entity.GrantState, claimedAt *time.Time) error

	// ExpireDue marks every available grant of userID whose template expired at or before
	// now as expired and returns the affected grant IDs.
	ExpireDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]uuid.UUID, error)

	// ListByUser returns the user's grants with templates, newest first. A nil state lists all.
	ListByUser(ctx context.Context, userID uuid.UUID, state *entity.GrantState) ([]*entity.RewardGrant, error)

	// CountByUser tallies the user's grants per state.
	CountByUser(ctx context.Context, userID uuid.UUID) (*entity.GrantCounts, error)
}
