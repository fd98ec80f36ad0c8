package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Role is the single access level attached to a user and to its session.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleManager, RoleStaff:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Principal is the authenticated caller. It is immutable for the lifetime of a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func (p *Principal) IsAdmin() bool   { return p != nil && p.Role == RoleAdmin }
func (p *Principal) IsManager() bool { return p != nil && p.Role == RoleManager }

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller attached by Middleware, or nil.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
