package entity

import (
	"time"

	"github.com/google/uuid"
)

// BasePoints is credited to the user for every product activation.
const BasePoints = 10

// Activation is an immutable ledger entry recording that a user redeemed a product's
// activation code. At most one exists per (UserID, ProductID).
type Activation struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Product       *Product  `json:"producto,omitempty"`
	PointsAwarded int       `json:"puntos_ganados"`
	ActivatedAt   time.Time `json:"activated_at"`
}
