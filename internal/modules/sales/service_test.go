package sales

import (
	"context"
	"io"
	"testing"

	"github.com/georgemunganga/inventory-backend/internal/modules/inventory"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps sales and products together so Create can mirror the
// transactional decrement.
type memStore struct {
	products map[uuid.UUID]*inventory.Product
	sales    map[uuid.UUID]*Sale
}

func newMemStore(products ...*inventory.Product) *memStore {
	m := &memStore{products: map[uuid.UUID]*inventory.Product{}, sales: map[uuid.UUID]*Sale{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*inventory.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, apperr.NotFound("product")
	}
	cp := *p
	return &cp, nil
}

// repo exposes the store as a sale Repository.
func (m *memStore) repo() *memSales { return &memSales{m} }

type memSales struct{ *memStore }

func (m *memSales) Create(_ context.Context, s *Sale) error {
	p, ok := m.products[s.ProductID]
	if !ok {
		return apperr.NotFound("product")
	}
	if p.Quantity < s.Quantity {
		return apperr.Conflict("insufficient stock for this sale", nil)
	}
	p.Quantity -= s.Quantity
	cp := *s
	m.sales[s.ID] = &cp
	return nil
}

func (m *memSales) GetByID(_ context.Context, id uuid.UUID) (*Sale, error) {
	s, ok := m.sales[id]
	if !ok {
		return nil, apperr.NotFound("sale")
	}
	cp := *s
	product := *m.products[s.ProductID]
	cp.Product = &product
	return &cp, nil
}

func (m *memSales) List(ctx context.Context) ([]*Sale, error) {
	out := []*Sale{}
	for id := range m.sales {
		s, _ := m.GetByID(ctx, id)
		out = append(out, s)
	}
	return out, nil
}

func (m *memSales) Update(_ context.Context, s *Sale) error {
	if _, ok := m.sales[s.ID]; !ok {
		return apperr.NotFound("sale")
	}
	cp := *s
	m.sales[s.ID] = &cp
	return nil
}

func (m *memSales) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.sales[id]; !ok {
		return apperr.NotFound("sale")
	}
	delete(m.sales, id)
	return nil
}

func (m *memSales) Analytics(context.Context) (*Analytics, error) { return &Analytics{}, nil }

func str(s string) *string { return &s }
func num(n int) *int       { return &n }
func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestService(products ...*inventory.Product) (Service, *memStore) {
	store := newMemStore(products...)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(store.repo(), store, log), store
}

func stocked(qty int) *inventory.Product {
	return &inventory.Product{
		ID:                uuid.New(),
		Name:              "Top Load 6.5kg",
		SellingPrice:      decimal.RequireFromString("16990.00"),
		Quantity:          qty,
		LowStockThreshold: 5,
	}
}

func fieldErrors(t *testing.T, err error) apperr.Fields {
	t.Helper()
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, apperr.KindValidation, e.Kind)
	return e.Fields
}

func TestCreateDecrementsStockAndAppliesDefaults(t *testing.T) {
	p := stocked(10)
	svc, store := newTestService(p)

	s, err := svc.Create(context.Background(), SaleInput{
		ProductID: str(p.ID.String()),
		Quantity:  num(3),
		SalePrice: money("16500.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultReason, s.Reason)
	assert.Equal(t, PaymentCash, s.PaymentMethod)
	assert.False(t, s.AmountPaid.Valid)
	assert.Equal(t, 7, store.products[p.ID].Quantity)
	require.NotNil(t, s.Product)
	assert.Equal(t, 7, s.Product.Quantity)
	assert.Equal(t, "49500.00", s.TotalAmount().StringFixed(2))
}

func TestCreateValidatesBeforeWriting(t *testing.T) {
	p := stocked(10)
	svc, store := newTestService(p)
	ctx := context.Background()

	for _, qty := range []int{0, -2} {
		_, err := svc.Create(ctx, SaleInput{ProductID: str(p.ID.String()), Quantity: num(qty), SalePrice: money("1")})
		assert.Equal(t, "Quantity must be positive", fieldErrors(t, err)["quantity"])
	}

	_, err := svc.Create(ctx, SaleInput{ProductID: str(uuid.NewString()), Quantity: num(1), SalePrice: money("1")})
	assert.Contains(t, fieldErrors(t, err), "product_id")

	_, err = svc.Create(ctx, SaleInput{
		ProductID:     str(p.ID.String()),
		Quantity:      num(1),
		SalePrice:     money("1"),
		PaymentMethod: str("pinelabs"),
		ContactNumber: str("+91 98765 43210 ext 5"),
	})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "payment_method")
	assert.Contains(t, fields, "contact_number")

	_, err = svc.Create(ctx, SaleInput{})
	fields = fieldErrors(t, err)
	for _, name := range []string{"product_id", "quantity", "sale_price"} {
		assert.Contains(t, fields, name)
	}

	assert.Empty(t, store.sales)
	assert.Equal(t, 10, store.products[p.ID].Quantity)
}

func TestCreateFinanceSaleTracksPending(t *testing.T) {
	p := stocked(4)
	svc, _ := newTestService(p)

	s, err := svc.Create(context.Background(), SaleInput{
		ProductID:     str(p.ID.String()),
		Quantity:      num(1),
		SalePrice:     money("16990.00"),
		PaymentMethod: str("finance"),
		AmountPaid:    money("5000"),
		CustomerName:  str("Meena"),
	})
	require.NoError(t, err)
	assert.Equal(t, "11990.00", s.PendingAmount().StringFixed(2))
}

func TestUpdateAndDeleteLeaveStockAlone(t *testing.T) {
	p := stocked(10)
	svc, store := newTestService(p)
	ctx := context.Background()
	s, err := svc.Create(ctx, SaleInput{ProductID: str(p.ID.String()), Quantity: num(3), SalePrice: money("100")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, s.ID.String(), SaleInput{Quantity: num(5)}, true)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 7, store.products[p.ID].Quantity)

	require.NoError(t, svc.Delete(ctx, s.ID.String()))
	assert.Equal(t, 7, store.products[p.ID].Quantity)

	_, err = svc.Get(ctx, s.ID.String())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateRejectsOverselling(t *testing.T) {
	p := stocked(2)
	svc, store := newTestService(p)

	_, err := svc.Create(context.Background(), SaleInput{ProductID: str(p.ID.String()), Quantity: num(3), SalePrice: money("1")})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, 2, store.products[p.ID].Quantity)
	assert.Empty(t, store.sales)
}
