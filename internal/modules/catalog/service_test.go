package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	categories map[uuid.UUID]*Category
	brands     map[uuid.UUID]*Brand
}

func newMemRepo() *memRepo {
	return &memRepo{categories: map[uuid.UUID]*Category{}, brands: map[uuid.UUID]*Brand{}}
}

func (m *memRepo) CreateCategory(_ context.Context, c *Category) error {
	for _, existing := range m.categories {
		if existing.Name == c.Name {
			return apperr.Conflict("category already exists", nil)
		}
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memRepo) GetCategory(_ context.Context, id uuid.UUID) (*Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, apperr.NotFound("category")
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) GetCategoryByName(_ context.Context, name string) (*Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperr.NotFound("category")
}

func (m *memRepo) ListCategories(_ context.Context) ([]*Category, error) {
	out := []*Category{}
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) UpdateCategory(_ context.Context, c *Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return apperr.NotFound("category")
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return apperr.NotFound("category")
	}
	for _, b := range m.brands {
		if b.CategoryID == id {
			return apperr.Conflict("category is still referenced by other records", nil)
		}
	}
	delete(m.categories, id)
	return nil
}

func (m *memRepo) withCategory(b *Brand) *Brand {
	cp := *b
	if c, ok := m.categories[b.CategoryID]; ok {
		cc := *c
		cp.Category = &cc
	}
	return &cp
}

func (m *memRepo) CreateBrand(_ context.Context, b *Brand) error {
	for _, existing := range m.brands {
		if existing.Name == b.Name && existing.CategoryID == b.CategoryID {
			return apperr.Conflict("brand already exists", nil)
		}
	}
	cp := *b
	m.brands[b.ID] = &cp
	return nil
}

func (m *memRepo) GetBrand(_ context.Context, id uuid.UUID) (*Brand, error) {
	b, ok := m.brands[id]
	if !ok {
		return nil, apperr.NotFound("brand")
	}
	return m.withCategory(b), nil
}

func (m *memRepo) GetBrandByName(_ context.Context, name string, categoryID uuid.UUID) (*Brand, error) {
	for _, b := range m.brands {
		if b.Name == name && b.CategoryID == categoryID {
			return m.withCategory(b), nil
		}
	}
	return nil, apperr.NotFound("brand")
}

func (m *memRepo) ListBrands(_ context.Context, categoryID *uuid.UUID) ([]*Brand, error) {
	out := []*Brand{}
	for _, b := range m.brands {
		if categoryID != nil && b.CategoryID != *categoryID {
			continue
		}
		out = append(out, m.withCategory(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) UpdateBrand(_ context.Context, b *Brand) error {
	if _, ok := m.brands[b.ID]; !ok {
		return apperr.NotFound("brand")
	}
	cp := *b
	m.brands[b.ID] = &cp
	return nil
}

func (m *memRepo) DeleteBrand(_ context.Context, id uuid.UUID) error {
	if _, ok := m.brands[id]; !ok {
		return apperr.NotFound("brand")
	}
	delete(m.brands, id)
	return nil
}

func str(s string) *string { return &s }

func fieldErrors(t *testing.T, err error) apperr.Fields {
	t.Helper()
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, apperr.KindValidation, e.Kind)
	return e.Fields
}

func TestCreateCategory(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, CategoryInput{Name: str("  Television "), Description: str("TVs")})
	require.NoError(t, err)
	assert.Equal(t, "Television", c.Name)
	assert.NotEqual(t, uuid.Nil, c.ID)

	_, err = svc.CreateCategory(ctx, CategoryInput{Name: str("Television")})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.CreateCategory(ctx, CategoryInput{})
	assert.Contains(t, fieldErrors(t, err), "name")
}

func TestUpdateCategoryPartial(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	c, err := svc.CreateCategory(ctx, CategoryInput{Name: str("Refrigerator"), Description: str("old")})
	require.NoError(t, err)

	got, err := svc.UpdateCategory(ctx, c.ID.String(), CategoryInput{Description: str("new")}, true)
	require.NoError(t, err)
	assert.Equal(t, "Refrigerator", got.Name)
	assert.Equal(t, "new", got.Description)

	_, err = svc.UpdateCategory(ctx, c.ID.String(), CategoryInput{Description: str("x")}, false)
	assert.Contains(t, fieldErrors(t, err), "name")

	_, err = svc.UpdateCategory(ctx, "nope", CategoryInput{Name: str("x")}, false)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateBrandResolvesCategory(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()
	ac, err := svc.CreateCategory(ctx, CategoryInput{Name: str("Air Conditioner")})
	require.NoError(t, err)

	b, err := svc.CreateBrand(ctx, BrandInput{Name: str("LG"), CategoryID: str(ac.ID.String())})
	require.NoError(t, err)
	require.NotNil(t, b.Category)
	assert.Equal(t, "Air Conditioner", b.Category.Name)

	_, err = svc.CreateBrand(ctx, BrandInput{Name: str("LG"), CategoryID: str(ac.ID.String())})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.CreateBrand(ctx, BrandInput{Name: str("Godrej"), CategoryID: str(uuid.NewString())})
	assert.Contains(t, fieldErrors(t, err), "category_id")

	_, err = svc.CreateBrand(ctx, BrandInput{Name: str("Godrej"), CategoryID: str("12")})
	assert.Contains(t, fieldErrors(t, err), "category_id")

	_, err = svc.CreateBrand(ctx, BrandInput{Name: str("Godrej")})
	assert.Contains(t, fieldErrors(t, err), "category_id")
	assert.Len(t, repo.brands, 1)
}

func TestListBrandsFiltersByCategory(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	ac, _ := svc.CreateCategory(ctx, CategoryInput{Name: str("Air Conditioner")})
	wm, _ := svc.CreateCategory(ctx, CategoryInput{Name: str("Washing Machine")})
	_, err := svc.CreateBrand(ctx, BrandInput{Name: str("Samsung"), CategoryID: str(ac.ID.String())})
	require.NoError(t, err)
	_, err = svc.CreateBrand(ctx, BrandInput{Name: str("Whirlpool"), CategoryID: str(wm.ID.String())})
	require.NoError(t, err)

	all, err := svc.ListBrands(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only, err := svc.ListBrands(ctx, wm.ID.String())
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "Whirlpool", only[0].Name)

	_, err = svc.ListBrands(ctx, "bad")
	assert.Contains(t, fieldErrors(t, err), "category_id")
}

func TestDeleteReferencedCategoryConflicts(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	tv, _ := svc.CreateCategory(ctx, CategoryInput{Name: str("Television")})
	b, err := svc.CreateBrand(ctx, BrandInput{Name: str("Tansui"), CategoryID: str(tv.ID.String())})
	require.NoError(t, err)

	err = svc.DeleteCategory(ctx, tv.ID.String())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	require.NoError(t, svc.DeleteBrand(ctx, b.ID.String()))
	require.NoError(t, svc.DeleteCategory(ctx, tv.ID.String()))
	_, err = svc.GetCategory(ctx, tv.ID.String())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
