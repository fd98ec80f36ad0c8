package user

import (
	"context"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service defines user management. Every call is made on behalf of caller;
// non-admin callers only ever see their own record.
type Service interface {
	List(ctx context.Context, caller *auth.Principal) ([]*User, error)
	Get(ctx context.Context, caller *auth.Principal, id string) (*User, error)
	Create(ctx context.Context, caller *auth.Principal, in Input) (*User, error)
	Update(ctx context.Context, caller *auth.Principal, id string, in Input, partial bool) (*User, error)
	Delete(ctx context.Context, caller *auth.Principal, id string) error

	// EnsureAdmin creates the bootstrap administrator unless the username exists.
	EnsureAdmin(ctx context.Context, username, email, password string) (*User, bool, error)
}

// Input is the write representation of a User. Nil fields are left untouched
// on partial updates.
type Input struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

type service struct {
	repo Repository
	cost int
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo, cost: bcrypt.DefaultCost}
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.NotFound("user")
	}
	return uid, nil
}

// visible reports whether caller may see the user with the given id.
func visible(caller *auth.Principal, id uuid.UUID) bool {
	return caller.IsAdmin() || (caller != nil && caller.UserID == id)
}

func (s *service) List(ctx context.Context, caller *auth.Principal) ([]*User, error) {
	if caller.IsAdmin() {
		return s.repo.List(ctx)
	}
	u, err := s.repo.GetByID(ctx, caller.UserID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return []*User{}, nil
		}
		return nil, err
	}
	return []*User{u}, nil
}

func (s *service) Get(ctx context.Context, caller *auth.Principal, id string) (*User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if !visible(caller, uid) {
		return nil, apperr.NotFound("user")
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) Create(ctx context.Context, caller *auth.Principal, in Input) (*User, error) {
	u := &User{ID: uuid.New(), Role: auth.RoleStaff}
	if err := s.apply(caller, u, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, caller *auth.Principal, id string, in Input, partial bool) (*User, error) {
	u, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(caller, u, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, caller *auth.Principal, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	if !visible(caller, uid) {
		return apperr.NotFound("user")
	}
	return s.repo.Delete(ctx, uid)
}

func (s *service) EnsureAdmin(ctx context.Context, username, email, password string) (*User, bool, error) {
	existing, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, false, err
	}
	role := string(auth.RoleAdmin)
	u := &User{ID: uuid.New()}
	in := Input{Username: &username, Email: &email, Role: &role, Password: &password}
	if err := s.apply(&auth.Principal{Role: auth.RoleAdmin}, u, in, false); err != nil {
		return nil, false, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// apply validates in and copies it onto u. A full write (partial=false)
// requires username, and password when u has none yet.
func (s *service) apply(caller *auth.Principal, u *User, in Input, partial bool) error {
	fields := apperr.Fields{}

	switch {
	case in.Username != nil:
		u.Username = strings.TrimSpace(*in.Username)
		if u.Username == "" {
			fields.Add("username", "This field may not be blank.")
		}
	case !partial:
		fields.Add("username", "This field is required.")
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
		if u.Email != "" && !strings.Contains(u.Email, "@") {
			fields.Add("email", "Enter a valid email address.")
		}
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Role != nil {
		role, err := auth.ParseRole(*in.Role)
		switch {
		case err != nil:
			fields.Add("role", "Select a valid choice: admin, manager or staff.")
		case role == auth.RoleAdmin && u.Role != auth.RoleAdmin && !caller.IsAdmin():
			return apperr.Forbidden("only administrators can grant the admin role")
		default:
			u.Role = role
		}
	}
	if in.Password != nil {
		if *in.Password == "" {
			fields.Add("password", "This field may not be blank.")
		}
	} else if u.PasswordHash == "" {
		fields.Add("password", "This field is required.")
	}
	if err := fields.Err(); err != nil {
		return err
	}

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.cost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	return nil
}
