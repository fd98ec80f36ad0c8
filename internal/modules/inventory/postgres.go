package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/modules/catalog"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

type rowScanner interface{ Scan(dest ...interface{}) error }

// ProductColumns selects a product with its category, its brand and the
// brand's own category. Queries using it must include ProductJoins and alias
// products as p.
const ProductColumns = `
	p.id, p.name, p.category_id, p.brand_id, p.model_number, p.serial_number, p.hsn_code,
	p.purchase_price, p.selling_price, p.quantity, p.low_stock_threshold, p.last_updated, p.is_active,
	c.name, c.description,
	b.name, b.description, b.category_id, bc.name, bc.description`

const ProductJoins = `
	JOIN categories c ON c.id = p.category_id
	JOIN brands b ON b.id = p.brand_id
	JOIN categories bc ON bc.id = b.category_id`

const productSelect = `SELECT` + ProductColumns + ` FROM products p` + ProductJoins

// ScanInto returns the scan destinations matching ProductColumns. Call link
// once the scan succeeded to fill in the relation ids.
func ScanInto(p *Product) (dest []interface{}, link func()) {
	p.Category = &catalog.Category{}
	p.Brand = &catalog.Brand{Category: &catalog.Category{}}
	dest = []interface{}{
		&p.ID, &p.Name, &p.CategoryID, &p.BrandID, &p.ModelNumber, &p.SerialNumber, &p.HSNCode,
		&p.PurchasePrice, &p.SellingPrice, &p.Quantity, &p.LowStockThreshold, &p.LastUpdated, &p.IsActive,
		&p.Category.Name, &p.Category.Description,
		&p.Brand.Name, &p.Brand.Description, &p.Brand.CategoryID,
		&p.Brand.Category.Name, &p.Brand.Category.Description,
	}
	link = func() {
		p.Category.ID = p.CategoryID
		p.Brand.ID = p.BrandID
		p.Brand.Category.ID = p.Brand.CategoryID
	}
	return dest, link
}

func scanProduct(row rowScanner) (*Product, error) {
	p := &Product{}
	dest, link := ScanInto(p)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	link()
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products
		  (id, name, category_id, brand_id, model_number, serial_number, hsn_code,
		   purchase_price, selling_price, quantity, low_stock_threshold, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING last_updated`,
		p.ID, p.Name, p.CategoryID, p.BrandID, p.ModelNumber, p.SerialNumber, p.HSNCode,
		p.PurchasePrice, p.SellingPrice, p.Quantity, p.LowStockThreshold, p.IsActive,
	).Scan(&p.LastUpdated)
	return apperr.FromDB(err, "product")
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	return p, apperr.FromDB(err, "product")
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	var (
		where []string
		args  []interface{}
	)
	switch f.Status {
	case LowStock:
		where = append(where, `p.quantity <= p.low_stock_threshold`)
	case OutOfStock:
		where = append(where, `p.quantity = 0`)
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf(`p.category_id = $%d`, len(args)))
	}
	if f.BrandID != nil {
		args = append(args, *f.BrandID)
		where = append(where, fmt.Sprintf(`p.brand_id = $%d`, len(args)))
	}

	query := productSelect
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY p.last_updated DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.FromDB(err, "product")
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE products SET
		  name = $1, category_id = $2, brand_id = $3, model_number = $4, serial_number = $5,
		  hsn_code = $6, purchase_price = $7, selling_price = $8, quantity = $9,
		  low_stock_threshold = $10, is_active = $11, last_updated = NOW()
		WHERE id = $12
		RETURNING last_updated`,
		p.Name, p.CategoryID, p.BrandID, p.ModelNumber, p.SerialNumber,
		p.HSNCode, p.PurchasePrice, p.SellingPrice, p.Quantity,
		p.LowStockThreshold, p.IsActive, p.ID,
	).Scan(&p.LastUpdated)
	return apperr.FromDB(err, "product")
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperr.FromDB(err, "product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("product")
	}
	return nil
}

// DashboardStats computes every figure in a single pass over products.
func (r *postgresRepo) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	s := &DashboardStats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity * selling_price), 0),
		       COUNT(*) FILTER (WHERE quantity <= low_stock_threshold),
		       COUNT(*) FILTER (WHERE quantity = 0)
		FROM products`,
	).Scan(&s.TotalProducts, &s.TotalInventoryValue, &s.LowStockCount, &s.OutOfStockCount)
	if err != nil {
		return nil, apperr.FromDB(err, "product")
	}
	return s, nil
}

func (r *postgresRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var qty int
	err := r.db.QueryRowContext(ctx, `
		UPDATE products SET quantity = quantity + $1, last_updated = NOW()
		WHERE id = $2
		RETURNING quantity`, delta, id).Scan(&qty)
	if err != nil {
		return 0, apperr.FromDB(err, "product")
	}
	return qty, nil
}
