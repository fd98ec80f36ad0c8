package sales

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines sale storage and reporting.
type Repository interface {
	// Create inserts s and takes its quantity out of the product's stock in
	// one transaction.
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
	// Update and Delete leave product stock untouched.
	Update(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id uuid.UUID) error

	Analytics(ctx context.Context) (*Analytics, error)
}
