package inventory

import (
	"time"

	"github.com/georgemunganga/inventory-backend/internal/modules/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockStatus classifies a product's quantity against its low-stock threshold.
type StockStatus string

const (
	OutOfStock StockStatus = "out_of_stock"
	LowStock   StockStatus = "low_stock"
	InStock    StockStatus = "in_stock"
)

const DefaultLowStockThreshold = 5

// Product is a stocked item. Category and Brand are populated on reads.
type Product struct {
	ID                uuid.UUID
	Name              string
	CategoryID        uuid.UUID
	BrandID           uuid.UUID
	Category          *catalog.Category
	Brand             *catalog.Brand
	ModelNumber       string
	SerialNumber      string
	HSNCode           string
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	Quantity          int
	LowStockThreshold int
	LastUpdated       time.Time
	IsActive          bool
}

// StockStatus reports out_of_stock at zero, low_stock at or below the
// threshold and in_stock otherwise.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return OutOfStock
	case p.Quantity <= p.LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// TotalValue is the selling value of the units on hand.
func (p *Product) TotalValue() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// DashboardStats summarises the whole product table.
type DashboardStats struct {
	TotalProducts       int
	TotalInventoryValue decimal.Decimal
	LowStockCount       int
	OutOfStockCount     int
}

type StatsView struct {
	TotalProducts       int    `json:"total_products"`
	TotalInventoryValue string `json:"total_inventory_value"`
	LowStockCount       int    `json:"low_stock_count"`
	OutOfStockCount     int    `json:"out_of_stock_count"`
}

func StatsToWire(s *DashboardStats) StatsView {
	return StatsView{
		TotalProducts:       s.TotalProducts,
		TotalInventoryValue: s.TotalInventoryValue.StringFixed(2),
		LowStockCount:       s.LowStockCount,
		OutOfStockCount:     s.OutOfStockCount,
	}
}

type ProductView struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Category          *catalog.CategoryView `json:"category"`
	Brand             *catalog.BrandView    `json:"brand"`
	ModelNumber       string                `json:"model_number"`
	SerialNumber      string                `json:"serial_number"`
	HSNCode           string                `json:"hsn_code"`
	PurchasePrice     string                `json:"purchase_price"`
	SellingPrice      string                `json:"selling_price"`
	Quantity          int                   `json:"quantity"`
	LowStockThreshold int                   `json:"low_stock_threshold"`
	LastUpdated       time.Time             `json:"last_updated"`
	IsActive          bool                  `json:"is_active"`
	StockStatus       StockStatus           `json:"stock_status"`
	TotalValue        string                `json:"total_value"`
}

// ToWire expands the category and brand when they were loaded.
func ToWire(p *Product) ProductView {
	v := ProductView{
		ID:                p.ID,
		Name:              p.Name,
		ModelNumber:       p.ModelNumber,
		SerialNumber:      p.SerialNumber,
		HSNCode:           p.HSNCode,
		PurchasePrice:     p.PurchasePrice.StringFixed(2),
		SellingPrice:      p.SellingPrice.StringFixed(2),
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		LastUpdated:       p.LastUpdated,
		IsActive:          p.IsActive,
		StockStatus:       p.StockStatus(),
		TotalValue:        p.TotalValue().StringFixed(2),
	}
	if p.Category != nil {
		cv := catalog.CategoryToWire(p.Category)
		v.Category = &cv
	}
	if p.Brand != nil {
		bv := catalog.BrandToWire(p.Brand)
		v.Brand = &bv
	}
	return v
}

// ProductInput is the write representation of a Product. Relations are named
// by id; stock status and total value are never accepted.
type ProductInput struct {
	Name              *string          `json:"name"`
	CategoryID        *string          `json:"category_id"`
	BrandID           *string          `json:"brand_id"`
	ModelNumber       *string          `json:"model_number"`
	SerialNumber      *string          `json:"serial_number"`
	HSNCode           *string          `json:"hsn_code"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	Quantity          *int             `json:"quantity"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	IsActive          *bool            `json:"is_active"`
}

// ListQuery carries the raw list filters. Unknown status values are ignored.
type ListQuery struct {
	Status     string
	CategoryID string
	BrandID    string
}

// Filter is the parsed form of ListQuery.
type Filter struct {
	Status     StockStatus
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
}
