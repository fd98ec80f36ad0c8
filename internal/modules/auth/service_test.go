package auth

import (
	"context"
	"testing"
	"time"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeStore map[string]*Credentials

func (f fakeStore) Credentials(_ context.Context, username string) (*Credentials, error) {
	c, ok := f[username]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return c, nil
}

func newStore(t *testing.T) fakeStore {
	hash, err := bcrypt.GenerateFromPassword([]byte("pa55word"), bcrypt.MinCost)
	require.NoError(t, err)
	return fakeStore{"ravi": {UserID: uuid.New(), Username: "ravi", Role: RoleAdmin, PasswordHash: string(hash)}}
}

func TestLogin(t *testing.T) {
	store := newStore(t)
	tokens := NewTokens("secret", time.Hour)
	svc := NewService(store, tokens)

	session, err := svc.Login(context.Background(), "ravi", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, session.Role)

	p, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, store["ravi"].UserID, p.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(newStore(t), NewTokens("secret", time.Hour))

	_, err := svc.Login(context.Background(), "ravi", "wrong")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Login(context.Background(), "nobody", "pa55word")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
