package inventory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines product storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, f Filter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	DashboardStats(ctx context.Context) (*DashboardStats, error)
	// AdjustStock adds delta to the stored quantity and returns the result.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int, error)
}
