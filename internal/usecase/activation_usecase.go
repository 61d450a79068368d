// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"weev/internal/domain/entity"
)

// --- Input DTOs ---

// ActivateInput defines the data required to activate a product.
type ActivateInput struct {
	ActivationCode string `json:"activation_code" validate:"required,max=64"`
}

// ActivateQRInput carries the raw content of a scanned activation QR code.
type ActivateQRInput struct {
	QRData string `json:"qr_data" validate:"required,max=1024"`
}

// ValidateCodeInput defines the data required to check an activation code.
type ValidateCodeInput struct {
	ActivationCode string `json:"activation_code" validate:"required,max=64"`
}

// --- Output DTOs ---

// ActivateOutput is the result of a successful activation.
type ActivateOutput struct {
	Activation   *entity.Activation    `json:"activation"`
	PointsEarned int                   `json:"puntos_ganados"`
	TotalPoints  int                   `json:"puntos_totales"`
	CurrentLevel int                   `json:"nivel_actual"`
	Rewards      []*entity.RewardGrant `json:"recompensas_otorgadas"`
}

// CodeValidation reports whether an activation code resolves to an active product.
type CodeValidation struct {
	Valid   bool            `json:"valid"`
	Product *entity.Product `json:"producto,omitempty"`
}

// ActivationUsecase defines the product activation workflow.
type ActivationUsecase interface {
	// Activate redeems an activation code for the principal, credits the base points and
	// issues one grant per active reward template of the product, atomically.
	Activate(ctx context.Context, principal entity.Principal, input *ActivateInput) (*ActivateOutput, error)

	// ActivateQR decodes a scanned activation QR payload and activates its code.
	ActivateQR(ctx context.Context, principal entity.Principal, input *ActivateQRInput) (*ActivateOutput, error)

	// ValidateCode checks a code without activating it.
	ValidateCode(ctx context.Context, code string) (*CodeValidation, error)

	// ListActivations returns the principal's activations, newest first.
	ListActivations(ctx context.Context, principal entity.Principal) ([]*entity.Activation, error)
}
