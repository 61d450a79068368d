package usecase

import (
	"context"

	"weev/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput defines the editable fields of a product. An empty ActivationCode on
// create asks for a generated one; the code cannot be changed afterwards.
type ProductInput struct {
	Name           string   `json:"name" validate:"required,max=200"`
	Description    string   `json:"description" validate:"max=2000"`
	ActivationCode string   `json:"activation_code" validate:"omitempty,max=64"`
	Category       string   `json:"category" validate:"max=100"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL       string   `json:"image_url" validate:"omitempty,url,max=500"`
	Active         *bool    `json:"active"`
}

// RewardInput defines the editable fields of a reward template. ExpiryDays counts from
// now; zero falls back to the configured default.
type RewardInput struct {
	ProductID   uuid.UUID         `json:"product_id"`
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Type        entity.RewardType `json:"type" validate:"required"`
	Value       string            `json:"value" validate:"required,max=100"`
	CouponCode  *string           `json:"coupon_code" validate:"omitempty,max=64"`
	ExpiryDays  int               `json:"expiry_days" validate:"gte=0,lte=3650"`
	Active      *bool             `json:"active"`
}

// ProductQuery narrows the public catalog listing.
type ProductQuery struct {
	Category string
}

// CatalogUsecase defines catalog browsing and brand administration.
type CatalogUsecase interface {
	// ListProducts returns the active catalog.
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// Categories returns the distinct categories of active products.
	Categories(ctx context.Context) ([]string, error)

	// CreateProduct adds a product to the principal's brand together with its default
	// points reward.
	CreateProduct(ctx context.Context, principal entity.Principal, input *ProductInput) (*entity.Product, error)

	// UpdateProduct edits a product of the principal's brand.
	UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// ListBrandProducts returns every product of the principal's brand.
	ListBrandProducts(ctx context.Context, principal entity.Principal) ([]*entity.Product, error)

	// ProductQR renders the activation QR code of a product of the principal's brand.
	ProductQR(ctx context.Context, principal entity.Principal, productID uuid.UUID) ([]byte, error)

	// CreateReward attaches a reward template to a product of the principal's brand.
	CreateReward(ctx context.Context, principal entity.Principal, input *RewardInput) (*entity.RewardTemplate, error)

	// UpdateReward edits a reward template of the principal's brand.
	UpdateReward(ctx context.Context, principal entity.Principal, rewardID uuid.UUID, input *RewardInput) (*entity.RewardTemplate, error)

	// ListBrandRewards returns the reward templates of the principal's brand.
	ListBrandRewards(ctx context.Context, principal entity.Principal) ([]*entity.RewardTemplate, error)
}
