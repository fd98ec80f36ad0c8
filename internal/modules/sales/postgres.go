package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/inventory-backend/internal/modules/inventory"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

type rowScanner interface{ Scan(dest ...interface{}) error }

const saleSelect = `
	SELECT s.id, s.product_id, s.quantity, s.sale_price, s.sold_at, s.reason, s.payment_method,
	       s.amount_paid, s.customer_name, s.contact_number,` + inventory.ProductColumns + `
	FROM sales s
	JOIN products p ON p.id = s.product_id` + inventory.ProductJoins

func scanSale(row rowScanner) (*Sale, error) {
	s := &Sale{Product: &inventory.Product{}}
	productDest, link := inventory.ScanInto(s.Product)
	dest := append([]interface{}{
		&s.ID, &s.ProductID, &s.Quantity, &s.SalePrice, &s.SoldAt, &s.Reason, &s.PaymentMethod,
		&s.AmountPaid, &s.CustomerName, &s.ContactNumber,
	}, productDest...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	link()
	return s, nil
}

// Create inserts the sale and decrements the product's stock inside a single
// transaction. The decrement is relative so concurrent sales cannot lose updates.
func (r *postgresRepo) Create(ctx context.Context, s *Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO sales
		  (id, product_id, quantity, sale_price, reason, payment_method,
		   amount_paid, customer_name, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING sold_at`,
		s.ID, s.ProductID, s.Quantity, s.SalePrice, s.Reason, s.PaymentMethod,
		s.AmountPaid, s.CustomerName, s.ContactNumber,
	).Scan(&s.SoldAt)
	if err != nil {
		return apperr.FromDB(err, "sale")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE products SET quantity = quantity - $1, last_updated = NOW()
		WHERE id = $2`, s.Quantity, s.ProductID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "products_quantity_check" {
			return apperr.Conflict("insufficient stock for this sale", err)
		}
		return apperr.FromDB(err, "product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("product")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sale: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	s, err := scanSale(r.db.QueryRowContext(ctx, saleSelect+` WHERE s.id = $1`, id))
	return s, apperr.FromDB(err, "sale")
}

func (r *postgresRepo) List(ctx context.Context) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, saleSelect+` ORDER BY s.sold_at DESC`)
	if err != nil {
		return nil, apperr.FromDB(err, "sale")
	}
	defer rows.Close()

	sales := []*Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, s *Sale) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sales SET
		  product_id = $1, quantity = $2, sale_price = $3, reason = $4, payment_method = $5,
		  amount_paid = $6, customer_name = $7, contact_number = $8
		WHERE id = $9`,
		s.ProductID, s.Quantity, s.SalePrice, s.Reason, s.PaymentMethod,
		s.AmountPaid, s.CustomerName, s.ContactNumber, s.ID)
	if err != nil {
		return apperr.FromDB(err, "sale")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("sale")
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return apperr.FromDB(err, "sale")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("sale")
	}
	return nil
}

const (
	salesByCategory = `
		SELECT c.name, SUM(s.quantity * s.sale_price) AS total_sales, SUM(s.quantity)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN categories c ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY total_sales DESC`

	salesByMonth = `
		SELECT to_char(s.sold_at, 'YYYY-MM') AS month, SUM(s.quantity * s.sale_price), SUM(s.quantity)
		FROM sales s
		GROUP BY month
		ORDER BY month`

	topProducts = `
		SELECT p.name, b.name, SUM(s.quantity * s.sale_price) AS total_sales, SUM(s.quantity)
		FROM sales s
		JOIN products p ON p.id = s.product_id
		JOIN brands b ON b.id = p.brand_id
		GROUP BY p.name, b.name
		ORDER BY total_sales DESC
		LIMIT $1`
)

// Analytics runs one grouped query per section of the report.
func (r *postgresRepo) Analytics(ctx context.Context) (*Analytics, error) {
	a := &Analytics{}

	err := r.each(ctx, salesByCategory, nil, func(row rowScanner) error {
		var c CategorySales
		if err := row.Scan(&c.Category, &c.Sales, &c.Quantity); err != nil {
			return err
		}
		a.ByCategory = append(a.ByCategory, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, salesByMonth, nil, func(row rowScanner) error {
		var m MonthlySales
		if err := row.Scan(&m.Month, &m.Sales, &m.Quantity); err != nil {
			return err
		}
		a.MonthlySales = append(a.MonthlySales, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.each(ctx, topProducts, []interface{}{TopProductsLimit}, func(row rowScanner) error {
		var p ProductSales
		if err := row.Scan(&p.ProductName, &p.BrandName, &p.Sales, &p.Quantity); err != nil {
			return err
		}
		a.TopProducts = append(a.TopProducts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *postgresRepo) each(ctx context.Context, query string, args []interface{}, fn func(rowScanner) error) error {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return apperr.FromDB(err, "sale")
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
