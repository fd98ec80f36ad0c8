package auth

import (
	"context"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperr.Unauthorized("invalid credentials")

type service struct {
	store  CredentialStore
	tokens *Tokens
}

// NewService creates a new auth service.
func NewService(store CredentialStore, tokens *Tokens) Service {
	return &service{store: store, tokens: tokens}
}

func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	creds, err := s.store.Credentials(ctx, username)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(Principal{
		UserID:   creds.UserID,
		Username: creds.Username,
		Role:     creds.Role,
	})
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expires, Role: creds.Role}, nil
}
