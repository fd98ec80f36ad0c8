package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
)

// Service defines catalog business logic for categories and brands.
type Service interface {
	CreateCategory(ctx context.Context, in CategoryInput) (*Category, error)
	GetCategory(ctx context.Context, id string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput, partial bool) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateBrand(ctx context.Context, in BrandInput) (*Brand, error)
	GetBrand(ctx context.Context, id string) (*Brand, error)
	// ListBrands filters by category when categoryID is non-empty.
	ListBrands(ctx context.Context, categoryID string) ([]*Brand, error)
	UpdateBrand(ctx context.Context, id string, in BrandInput, partial bool) (*Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func parseID(id, what string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.NotFound(what)
	}
	return uid, nil
}

// ── categories ───────────────────────────────────────────────────────────────

func (s *service) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	c := &Category{ID: uuid.New()}
	if err := applyCategory(c, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCategory(ctx context.Context, id string) (*Category, error) {
	uid, err := parseID(id, "category")
	if err != nil {
		return nil, err
	}
	return s.repo.GetCategory(ctx, uid)
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) UpdateCategory(ctx context.Context, id string, in CategoryInput, partial bool) (*Category, error) {
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCategory(c, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	uid, err := parseID(id, "category")
	if err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, uid)
}

func applyCategory(c *Category, in CategoryInput, partial bool) error {
	fields := apperr.Fields{}
	switch {
	case in.Name != nil:
		c.Name = strings.TrimSpace(*in.Name)
		if c.Name == "" {
			fields.Add("name", "This field may not be blank.")
		}
	case !partial:
		fields.Add("name", "This field is required.")
	}
	if len(c.Name) > 100 {
		fields.Add("name", "Ensure this field has no more than 100 characters.")
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	return fields.Err()
}

// ── brands ───────────────────────────────────────────────────────────────────

func (s *service) CreateBrand(ctx context.Context, in BrandInput) (*Brand, error) {
	b := &Brand{ID: uuid.New()}
	if err := s.applyBrand(ctx, b, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBrand(ctx context.Context, id string) (*Brand, error) {
	uid, err := parseID(id, "brand")
	if err != nil {
		return nil, err
	}
	return s.repo.GetBrand(ctx, uid)
}

func (s *service) ListBrands(ctx context.Context, categoryID string) ([]*Brand, error) {
	if categoryID == "" {
		return s.repo.ListBrands(ctx, nil)
	}
	cid, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, apperr.Validation("category_id", fmt.Sprintf("%q is not a valid UUID.", categoryID))
	}
	return s.repo.ListBrands(ctx, &cid)
}

func (s *service) UpdateBrand(ctx context.Context, id string, in BrandInput, partial bool) (*Brand, error) {
	b, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyBrand(ctx, b, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) DeleteBrand(ctx context.Context, id string) error {
	uid, err := parseID(id, "brand")
	if err != nil {
		return err
	}
	return s.repo.DeleteBrand(ctx, uid)
}

func (s *service) applyBrand(ctx context.Context, b *Brand, in BrandInput, partial bool) error {
	fields := apperr.Fields{}
	switch {
	case in.Name != nil:
		b.Name = strings.TrimSpace(*in.Name)
		if b.Name == "" {
			fields.Add("name", "This field may not be blank.")
		}
	case !partial:
		fields.Add("name", "This field is required.")
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.CategoryID == nil && !partial {
		fields.Add("category_id", "This field is required.")
	}
	if err := fields.Err(); err != nil {
		return err
	}

	if in.CategoryID != nil {
		c, err := apperr.Resolve(ctx, "category_id", *in.CategoryID, s.repo.GetCategory)
		if err != nil {
			return err
		}
		b.CategoryID = c.ID
		b.Category = c
	}
	return nil
}
