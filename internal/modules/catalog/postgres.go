package catalog

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

type rowScanner interface{ Scan(dest ...interface{}) error }

// ── categories ───────────────────────────────────────────────────────────────

func scanCategory(row rowScanner) (*Category, error) {
	c := &Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Description)
	return apperr.FromDB(err, "category")
}

func (r *postgresRepo) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, id))
	return c, apperr.FromDB(err, "category")
}

func (r *postgresRepo) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE name = $1`, name))
	return c, apperr.FromDB(err, "category")
}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, apperr.FromDB(err, "category")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepo) UpdateCategory(ctx context.Context, c *Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1, description = $2 WHERE id = $3`,
		c.Name, c.Description, c.ID)
	return affectedOne(res, err, "category")
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return affectedOne(res, err, "category")
}

// ── brands ───────────────────────────────────────────────────────────────────

const brandSelect = `
	SELECT b.id, b.name, b.description, b.category_id, c.name, c.description
	FROM brands b
	JOIN categories c ON c.id = b.category_id`

func scanBrand(row rowScanner) (*Brand, error) {
	b := &Brand{Category: &Category{}}
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.CategoryID,
		&b.Category.Name, &b.Category.Description); err != nil {
		return nil, err
	}
	b.Category.ID = b.CategoryID
	return b, nil
}

func (r *postgresRepo) CreateBrand(ctx context.Context, b *Brand) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO brands (id, name, description, category_id) VALUES ($1, $2, $3, $4)`,
		b.ID, b.Name, b.Description, b.CategoryID)
	return apperr.FromDB(err, "brand")
}

func (r *postgresRepo) GetBrand(ctx context.Context, id uuid.UUID) (*Brand, error) {
	b, err := scanBrand(r.db.QueryRowContext(ctx, brandSelect+` WHERE b.id = $1`, id))
	return b, apperr.FromDB(err, "brand")
}

func (r *postgresRepo) GetBrandByName(ctx context.Context, name string, categoryID uuid.UUID) (*Brand, error) {
	b, err := scanBrand(r.db.QueryRowContext(ctx,
		brandSelect+` WHERE b.name = $1 AND b.category_id = $2`, name, categoryID))
	return b, apperr.FromDB(err, "brand")
}

func (r *postgresRepo) ListBrands(ctx context.Context, categoryID *uuid.UUID) ([]*Brand, error) {
	query := brandSelect
	args := []interface{}{}
	if categoryID != nil {
		query += ` WHERE b.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY b.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromDB(err, "brand")
	}
	defer rows.Close()

	brands := []*Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *postgresRepo) UpdateBrand(ctx context.Context, b *Brand) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE brands SET name = $1, description = $2, category_id = $3 WHERE id = $4`,
		b.Name, b.Description, b.CategoryID, b.ID)
	return affectedOne(res, err, "brand")
}

func (r *postgresRepo) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	return affectedOne(res, err, "brand")
}

func affectedOne(res sql.Result, err error, what string) error {
	if err != nil {
		return apperr.FromDB(err, what)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound(what)
	}
	return nil
}
