package entity

import (
	"time"

	"weev/internal/errors"

	"github.com/google/uuid"
)

// ErrIllegalTransition is returned when a grant is asked to leave a terminal state.
var ErrIllegalTransition = errors.New("illegal reward grant state transition")

// GrantState is the lifecycle state of a reward grant.
type GrantState string

const (
	GrantStateAvailable GrantState = "available"
	GrantStateClaimed   GrantState = "claimed"
	GrantStateExpired   GrantState = "expired"
)

// IsValid checks if the GrantState is a known value.
func (s GrantState) IsValid() bool {
	switch s {
	case GrantStateAvailable, GrantStateClaimed, GrantStateExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Only available -> claimed and available -> expired are legal.
func (s GrantState) CanTransitionTo(next GrantState) bool {
	return s == GrantStateAvailable && (next == GrantStateClaimed || next == GrantStateExpired)
}

// RewardGrant is a reward template issued to one user, with its own lifecycle.
type RewardGrant struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	TemplateID uuid.UUID       `json:"reward_id"`
	Template   *RewardTemplate `json:"recompensa,omitempty"`
	State      GrantState      `json:"state"`
	GrantedAt  time.Time       `json:"granted_at"`
	ClaimedAt  *time.Time      `json:"claimed_at,omitempty"`
}

// NewRewardGrant issues an available grant of template to userID.
func NewRewardGrant(userID uuid.UUID, template *RewardTemplate, now time.Time) *RewardGrant {
	return &RewardGrant{
		ID:         uuid.New(),
		UserID:     userID,
		TemplateID: template.ID,
		Template:   template,
		State:      GrantStateAvailable,
		GrantedAt:  now,
	}
}

// Claim moves the grant to claimed.
func (g *RewardGrant) Claim(now time.Time) error {
	if !g.State.CanTransitionTo(GrantStateClaimed) {
		return errors.Wrapf(ErrIllegalTransition, "%s -> %s", g.State, GrantStateClaimed)
	}
	g.State = GrantStateClaimed
	g.ClaimedAt = &now

	return nil
}

// Expire moves the grant to expired.
func (g *RewardGrant) Expire() error {
	if !g.State.CanTransitionTo(GrantStateExpired) {
		return errors.Wrapf(ErrIllegalTransition, "%s -> %s", g.State, GrantStateExpired)
	}
	g.State = GrantStateExpired

	return nil
}

// ShouldExpireAt reports whether an available grant has outlived its template.
func (g *RewardGrant) ShouldExpireAt(now time.Time) bool {
	return g.State == GrantStateAvailable && g.Template != nil && g.Template.IsExpiredAt(now)
}

// GrantCounts tallies a user's grants per state.
type GrantCounts struct {
	Total     int
	Available int
	Claimed   int
	Expired   int
}
