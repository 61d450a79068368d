package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RewardType classifies what a reward template gives the user.
type RewardType string

const (
	RewardTypePoints      RewardType = "points"
	RewardTypeDiscount    RewardType = "discount"
	RewardTypeContent     RewardType = "content"
	RewardTypeFreeProduct RewardType = "free_product"
)

// IsValid checks if the RewardType is a known value.
func (t RewardType) IsValid() bool {
	switch t {
	case RewardTypePoints, RewardTypeDiscount, RewardTypeContent, RewardTypeFreeProduct:
		return true
	default:
		return false
	}
}

// RewardTemplate is a reward definition attached to a product. Every activation of the
// product issues one RewardGrant per active template.
type RewardTemplate struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        RewardType `json:"type"`
	Value       string     `json:"value"` // Free-form, e.g. "10 puntos" or "15%".
	CouponCode  *string    `json:"coupon_code,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsExpiredAt reports whether the template expiry is at or before now.
func (t *RewardTemplate) IsExpiredAt(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// PointsValue extracts the leading integer of Value ("25 puntos" -> 25).
// ok is false for anything that does not start with a positive integer; callers
// must treat that as "no points", not as an error.
func (t *RewardTemplate) PointsValue() (points int, ok bool) {
	fields := strings.Fields(t.Value)
	if len(fields) == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}
