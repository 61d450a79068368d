package usecase

import (
	"context"

	"weev/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required"`
	Name     string      `json:"name" validate:"required,max=100"`
	Role     entity.Role `json:"user_type"`

	// BrandName names the brand created for brand administrators.
	BrandName string `json:"brand_name" validate:"max=200"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the account together with a signed access token.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
}

// UserUsecase defines the account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Me(ctx context.Context, principal entity.Principal) (*entity.User, error)
}
