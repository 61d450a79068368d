// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"weev/internal/domain/entity"
	"weev/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBrandNotFound is returned when no brand matches the query.
	ErrBrandNotFound = errors.New("brand not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks its row until the surrounding
	// transaction ends. Point changes must go through this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePoints writes the user's points together with the derived level.
	UpdatePoints(ctx context.Context, id uuid.UUID, points, level int) error
}

// BrandRepository defines persistence operations for brands.
type BrandRepository interface {
	// FindByAdmin returns the brand owned by the given administrator.
	FindByAdmin(ctx context.Context, adminID uuid.UUID) (*entity.Brand, error)

	// Create persists a new brand.
	Create(ctx context.Context, brand *entity.Brand) error
}
