package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		qty, threshold int
		want           StockStatus
	}{
		{0, 5, OutOfStock},
		{0, 0, OutOfStock},
		{1, 5, LowStock},
		{5, 5, LowStock},
		{6, 5, InStock},
		{1, 0, InStock},
		{100, 5, InStock},
	}
	for _, tt := range tests {
		p := &Product{Quantity: tt.qty, LowStockThreshold: tt.threshold}
		assert.Equal(t, tt.want, p.StockStatus(), "qty=%d threshold=%d", tt.qty, tt.threshold)
	}
}

func TestTotalValueIsExact(t *testing.T) {
	p := &Product{SellingPrice: decimal.RequireFromString("19999.99"), Quantity: 3}
	assert.Equal(t, "59999.97", p.TotalValue().StringFixed(2))

	p = &Product{SellingPrice: decimal.RequireFromString("0.10"), Quantity: 3}
	assert.True(t, p.TotalValue().Equal(decimal.RequireFromString("0.30")))
}

func TestToWire(t *testing.T) {
	p := &Product{
		Name:              "Split AC 1.5T",
		PurchasePrice:     decimal.RequireFromString("30000"),
		SellingPrice:      decimal.RequireFromString("35000.5"),
		Quantity:          2,
		LowStockThreshold: 5,
	}
	v := ToWire(p)
	assert.Equal(t, "30000.00", v.PurchasePrice)
	assert.Equal(t, "35000.50", v.SellingPrice)
	assert.Equal(t, "70001.00", v.TotalValue)
	assert.Equal(t, LowStock, v.StockStatus)
	assert.Nil(t, v.Category)
	assert.Nil(t, v.Brand)
}
