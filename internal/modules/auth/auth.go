package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

// Session is returned to a caller after a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      Role      `json:"role"`
}

// Credentials is the stored login material for one user.
type Credentials struct {
	UserID       uuid.UUID
	Username     string
	Role         Role
	PasswordHash string
}

// CredentialStore looks up credentials by username.
type CredentialStore interface {
	Credentials(ctx context.Context, username string) (*Credentials, error)
}
