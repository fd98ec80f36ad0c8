package user

import (
	"context"

	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/google/uuid"
)

// Repository defines user data storage.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error

	auth.CredentialStore
}
