package user

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/inventory-backend/internal/modules/auth"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
)

const userColumns = `id, username, email, first_name, last_name, role, password_hash, created_at, updated_at`

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanUser(row rowScanner) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, email, first_name, last_name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.PasswordHash,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	return apperr.FromDB(err, "user")
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, apperr.FromDB(err, "user")
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	return u, apperr.FromDB(err, "user")
}

func (r *postgresRepository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4,
		    role = $5, password_hash = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`,
		u.Username, u.Email, u.FirstName, u.LastName, u.Role, u.PasswordHash, u.ID,
	).Scan(&u.UpdatedAt)
	return apperr.FromDB(err, "user")
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperr.FromDB(err, "user")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

func (r *postgresRepository) Credentials(ctx context.Context, username string) (*auth.Credentials, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return &auth.Credentials{
		UserID:       u.ID,
		Username:     u.Username,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
	}, nil
}
