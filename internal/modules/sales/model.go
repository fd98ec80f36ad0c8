package sales

import (
	"fmt"
	"time"

	"github.com/georgemunganga/inventory-backend/internal/modules/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "cash"
	PaymentOnline  PaymentMethod = "online"
	PaymentFinance PaymentMethod = "finance"
	PaymentCard    PaymentMethod = "card"
	PaymentUPI     PaymentMethod = "upi"
	PaymentPartial PaymentMethod = "partial"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentCash, PaymentOnline, PaymentFinance, PaymentCard, PaymentUPI, PaymentPartial:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Deferred reports whether part of the price may remain outstanding.
func (m PaymentMethod) Deferred() bool {
	return m == PaymentFinance || m == PaymentPartial
}

const DefaultReason = "Retail Sale"

// Sale records units of one product leaving stock. Product is populated on reads.
type Sale struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Product       *inventory.Product
	Quantity      int
	SalePrice     decimal.Decimal
	SoldAt        time.Time
	Reason        string
	PaymentMethod PaymentMethod
	AmountPaid    decimal.NullDecimal
	CustomerName  string
	ContactNumber string
}

func (s *Sale) TotalAmount() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// PendingAmount is what remains unpaid on finance and partial sales; other
// methods are settled in full.
func (s *Sale) PendingAmount() decimal.Decimal {
	if !s.PaymentMethod.Deferred() {
		return decimal.Zero
	}
	paid := decimal.Zero
	if s.AmountPaid.Valid {
		paid = s.AmountPaid.Decimal
	}
	return s.TotalAmount().Sub(paid)
}

type SaleView struct {
	ID            uuid.UUID              `json:"id"`
	Product       *inventory.ProductView `json:"product"`
	Quantity      int                    `json:"quantity"`
	SalePrice     string                 `json:"sale_price"`
	SoldAt        time.Time              `json:"sold_at"`
	Reason        string                 `json:"reason"`
	PaymentMethod PaymentMethod          `json:"payment_method"`
	AmountPaid    *string                `json:"amount_paid"`
	CustomerName  string                 `json:"customer_name"`
	ContactNumber string                 `json:"contact_number"`
	TotalAmount   string                 `json:"total_amount"`
	PendingAmount string                 `json:"pending_amount"`
}

func ToWire(s *Sale) SaleView {
	v := SaleView{
		ID:            s.ID,
		Quantity:      s.Quantity,
		SalePrice:     s.SalePrice.StringFixed(2),
		SoldAt:        s.SoldAt,
		Reason:        s.Reason,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		ContactNumber: s.ContactNumber,
		TotalAmount:   s.TotalAmount().StringFixed(2),
		PendingAmount: s.PendingAmount().StringFixed(2),
	}
	if s.AmountPaid.Valid {
		paid := s.AmountPaid.Decimal.StringFixed(2)
		v.AmountPaid = &paid
	}
	if s.Product != nil {
		pv := inventory.ToWire(s.Product)
		v.Product = &pv
	}
	return v
}

// SaleInput is the write representation of a Sale; the product is named by
// id. A null amount_paid is treated like an absent one.
type SaleInput struct {
	ProductID     *string          `json:"product_id"`
	Quantity      *int             `json:"quantity"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Reason        *string          `json:"reason"`
	PaymentMethod *string          `json:"payment_method"`
	AmountPaid    *decimal.Decimal `json:"amount_paid"`
	CustomerName  *string          `json:"customer_name"`
	ContactNumber *string          `json:"contact_number"`
}

// Totals aggregates sale value and units.
type Totals struct {
	Sales    decimal.Decimal
	Quantity int
}

type CategorySales struct {
	Category string
	Totals
}

type MonthlySales struct {
	Month string // YYYY-MM
	Totals
}

type ProductSales struct {
	ProductName string
	BrandName   string
	Totals
}

// Analytics is the sales report: per category, per month and the best sellers.
type Analytics struct {
	ByCategory   []CategorySales
	MonthlySales []MonthlySales
	TopProducts  []ProductSales
}

// TopProductsLimit caps Analytics.TopProducts.
const TopProductsLimit = 5

type TotalsView struct {
	TotalSales    string `json:"total_sales"`
	TotalQuantity int    `json:"total_quantity"`
}

type CategorySalesView struct {
	Category string `json:"category"`
	TotalsView
}

type MonthlySalesView struct {
	Month string `json:"month"`
	TotalsView
}

type ProductSalesView struct {
	ProductName string `json:"product_name"`
	BrandName   string `json:"brand_name"`
	TotalsView
}

type AnalyticsView struct {
	ByCategory   []CategorySalesView `json:"by_category"`
	MonthlySales []MonthlySalesView  `json:"monthly_sales"`
	TopProducts  []ProductSalesView  `json:"top_products"`
}

func totalsToWire(t Totals) TotalsView {
	return TotalsView{TotalSales: t.Sales.StringFixed(2), TotalQuantity: t.Quantity}
}

func AnalyticsToWire(a *Analytics) AnalyticsView {
	v := AnalyticsView{
		ByCategory:   make([]CategorySalesView, 0, len(a.ByCategory)),
		MonthlySales: make([]MonthlySalesView, 0, len(a.MonthlySales)),
		TopProducts:  make([]ProductSalesView, 0, len(a.TopProducts)),
	}
	for _, c := range a.ByCategory {
		v.ByCategory = append(v.ByCategory, CategorySalesView{Category: c.Category, TotalsView: totalsToWire(c.Totals)})
	}
	for _, m := range a.MonthlySales {
		v.MonthlySales = append(v.MonthlySales, MonthlySalesView{Month: m.Month, TotalsView: totalsToWire(m.Totals)})
	}
	for _, p := range a.TopProducts {
		v.TopProducts = append(v.TopProducts, ProductSalesView{
			ProductName: p.ProductName,
			BrandName:   p.BrandName,
			TotalsView:  totalsToWire(p.Totals),
		})
	}
	return v
}
