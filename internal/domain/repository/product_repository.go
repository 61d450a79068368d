package repository

import (
	"context"

	"weev/internal/domain/entity"
	"weev/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when no product matches the query.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateActivationCode is returned when an activation code is already taken.
	ErrDuplicateActivationCode = errors.New("activation code already exists")
)

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	// FindActiveByCode returns the active product with the given normalized activation code.
	FindActiveByCode(ctx context.Context, code string) (*entity.Product, error)

	// FindByID retrieves a product by ID regardless of its state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDAndBrand retrieves a product only when it belongs to brandID.
	FindByIDAndBrand(ctx context.Context, id, brandID uuid.UUID) (*entity.Product, error)

	// ExistsByCode reports whether any product, active or not, uses the code.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// List returns products matching the filter, newest first.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// Categories returns the distinct non-empty categories of active products.
	Categories(ctx context.Context) ([]string, error)

	// Create persists a new product. A taken code yields ErrDuplicateActivationCode.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves the mutable fields of a product.
	Update(ctx context.Context, product *entity.Product) error
}
