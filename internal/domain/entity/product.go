package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item of a brand. Its activation code is unique across all brands
// and is always stored in normalized form.
type Product struct {
	ID             uuid.UUID `json:"id"`
	BrandID        uuid.UUID `json:"brand_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ActivationCode string    `json:"activation_code"`
	Category       string    `json:"category"`
	Price          *float64  `json:"price,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NormalizeActivationCode trims and upper-cases a code so lookups are case-insensitive.
func NormalizeActivationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ProductFilter narrows catalog listings. Zero values mean "any".
type ProductFilter struct {
	BrandID  *uuid.UUID
	Category string
	Active   *bool
}
