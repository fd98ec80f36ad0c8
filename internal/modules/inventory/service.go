package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/modules/catalog"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/georgemunganga/inventory-backend/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CatalogLookup resolves the category and brand a product refers to.
// catalog.Repository satisfies it.
type CatalogLookup interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*catalog.Brand, error)
}

// Service defines product management and stock reporting.
type Service interface {
	Create(ctx context.Context, in ProductInput) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q ListQuery) ([]*Product, error)
	Update(ctx context.Context, id string, in ProductInput, partial bool) (*Product, error)
	Delete(ctx context.Context, id string) error

	DashboardStats(ctx context.Context) (*DashboardStats, error)
	// AdjustStock applies a signed delta and returns the new quantity.
	AdjustStock(ctx context.Context, id string, delta int) (int, error)
}

type service struct {
	repo    Repository
	catalog CatalogLookup
	log     logrus.FieldLogger
}

func NewService(repo Repository, lookup CatalogLookup, log logrus.FieldLogger) Service {
	return &service{repo: repo, catalog: lookup, log: log}
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.NotFound("product")
	}
	return uid, nil
}

func (s *service) Create(ctx context.Context, in ProductInput) (*Product, error) {
	p := &Product{
		ID:                uuid.New(),
		LowStockThreshold: DefaultLowStockThreshold,
		IsActive:          true,
	}
	if err := s.apply(ctx, p, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) List(ctx context.Context, q ListQuery) ([]*Product, error) {
	var f Filter
	switch StockStatus(q.Status) {
	case LowStock, OutOfStock:
		f.Status = StockStatus(q.Status)
	}
	fields := apperr.Fields{}
	f.CategoryID = parseFilterID(fields, "category_id", q.CategoryID)
	f.BrandID = parseFilterID(fields, "brand_id", q.BrandID)
	if err := fields.Err(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, f)
}

func parseFilterID(fields apperr.Fields, name, raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		fields.Add(name, fmt.Sprintf("%q is not a valid UUID.", raw))
		return nil
	}
	return &id
}

func (s *service) Update(ctx context.Context, id string, in ProductInput, partial bool) (*Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, p, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

func (s *service) AdjustStock(ctx context.Context, id string, delta int) (int, error) {
	uid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	qty, err := s.repo.AdjustStock(ctx, uid, delta)
	if err != nil {
		return 0, err
	}
	metrics.RecordStockAdjustment(delta)
	s.log.WithFields(logrus.Fields{
		"product_id":   uid,
		"delta":        delta,
		"new_quantity": qty,
	}).Info("stock adjusted")
	return qty, nil
}

// maxPrice is the first value that no longer fits NUMERIC(10,2).
var maxPrice = decimal.New(1, 8)

// apply validates in and copies it onto p. Referenced ids are resolved only
// once the plain fields are valid.
func (s *service) apply(ctx context.Context, p *Product, in ProductInput, partial bool) error {
	fields := apperr.Fields{}
	text := func(name string, src *string, dst *string, max int) {
		if src == nil {
			if !partial {
				fields.Add(name, "This field is required.")
			}
			return
		}
		*dst = strings.TrimSpace(*src)
		if *dst == "" {
			fields.Add(name, "This field may not be blank.")
		}
		if len(*dst) > max {
			fields.Add(name, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
		}
	}
	price := func(name string, src *decimal.Decimal, dst *decimal.Decimal) {
		if src == nil {
			if !partial {
				fields.Add(name, "This field is required.")
			}
			return
		}
		switch {
		case src.IsNegative():
			fields.Add(name, "Ensure this value is greater than or equal to 0.")
		case !src.Equal(src.Round(2)):
			fields.Add(name, "Ensure that there are no more than 2 decimal places.")
		case src.GreaterThanOrEqual(maxPrice):
			fields.Add(name, "Ensure that there are no more than 10 digits in total.")
		}
		*dst = *src
	}
	count := func(name string, src *int, dst *int) {
		if src == nil {
			return
		}
		if *src < 0 {
			fields.Add(name, "Ensure this value is greater than or equal to 0.")
		}
		*dst = *src
	}

	text("name", in.Name, &p.Name, 200)
	text("model_number", in.ModelNumber, &p.ModelNumber, 100)
	text("serial_number", in.SerialNumber, &p.SerialNumber, 100)
	text("hsn_code", in.HSNCode, &p.HSNCode, 50)
	price("purchase_price", in.PurchasePrice, &p.PurchasePrice)
	price("selling_price", in.SellingPrice, &p.SellingPrice)
	count("quantity", in.Quantity, &p.Quantity)
	count("low_stock_threshold", in.LowStockThreshold, &p.LowStockThreshold)
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if !partial {
		if in.CategoryID == nil {
			fields.Add("category_id", "This field is required.")
		}
		if in.BrandID == nil {
			fields.Add("brand_id", "This field is required.")
		}
	}
	if err := fields.Err(); err != nil {
		return err
	}

	if in.CategoryID != nil {
		c, err := apperr.Resolve(ctx, "category_id", *in.CategoryID, s.catalog.GetCategory)
		if err != nil {
			return err
		}
		p.CategoryID, p.Category = c.ID, c
	}
	if in.BrandID != nil {
		b, err := apperr.Resolve(ctx, "brand_id", *in.BrandID, s.catalog.GetBrand)
		if err != nil {
			return err
		}
		p.BrandID, p.Brand = b.ID, b
	}
	return nil
}
