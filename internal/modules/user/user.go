package user

import (
	"time"

	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/google/uuid"
)

// User represents an account that can sign in to the inventory API.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Role         auth.Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View is the wire representation of a User. The password hash is never serialized
// and the role flags are derived from Role.
type View struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      auth.Role `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	IsManager bool      `json:"is_manager"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToWire(u *User) View {
	return View{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsAdmin:   u.Role == auth.RoleAdmin,
		IsManager: u.Role == auth.RoleManager,
		IsStaff:   u.Role == auth.RoleStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toWireList(users []*User) []View {
	out := make([]View, 0, len(users))
	for _, u := range users {
		out = append(out, ToWire(u))
	}
	return out
}
