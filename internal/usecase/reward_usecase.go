package usecase

import (
	"context"

	"weev/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimOutput is the result of a successful claim.
type ClaimOutput struct {
	Reward        *entity.RewardGrant `json:"recompensa"`
	PointsAwarded int                 `json:"puntos_ganados,omitempty"`
	TotalPoints   *int                `json:"puntos_totales,omitempty"` // Set only when points were credited.
	CurrentLevel  *int                `json:"nivel_actual,omitempty"`
}

// UserStats summarizes the loyalty standing of a user.
type UserStats struct {
	TotalPoints       int `json:"puntos_totales"`
	CurrentLevel      int `json:"nivel_actual"`
	PointsToNextLevel int `json:"puntos_siguiente_nivel"`
	Activations       int `json:"productos_activados"`
	TotalRewards      int `json:"recompensas_totales"`
	AvailableRewards  int `json:"recompensas_disponibles"`
	ClaimedRewards    int `json:"recompensas_reclamadas"`
	ExpiredRewards    int `json:"recompensas_expiradas"`
}

// RewardUsecase defines the reward grant lifecycle operations.
type RewardUsecase interface {
	// Claim moves one of the principal's available grants to claimed. A grant whose
	// template has expired is moved to expired instead and an error is returned.
	Claim(ctx context.Context, principal entity.Principal, grantID uuid.UUID) (*ClaimOutput, error)

	// ListGrants expires due grants and returns the principal's grants in the given
	// state, or all of them when state is empty.
	ListGrants(ctx context.Context, principal entity.Principal, state string) ([]*entity.RewardGrant, error)

	// Stats returns the principal's points, level and grant totals.
	Stats(ctx context.Context, principal entity.Principal) (*UserStats, error)
}
