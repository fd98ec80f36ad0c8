package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines category and brand storage.
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateBrand(ctx context.Context, b *Brand) error
	GetBrand(ctx context.Context, id uuid.UUID) (*Brand, error)
	GetBrandByName(ctx context.Context, name string, categoryID uuid.UUID) (*Brand, error)
	// ListBrands returns all brands, or only those of categoryID when it is not nil.
	ListBrands(ctx context.Context, categoryID *uuid.UUID) ([]*Brand, error)
	UpdateBrand(ctx context.Context, b *Brand) error
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}
