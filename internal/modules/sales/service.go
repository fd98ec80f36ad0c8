package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/inventory-backend/internal/modules/inventory"
	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/georgemunganga/inventory-backend/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductLookup resolves the product a sale refers to. inventory.Repository
// satisfies it.
type ProductLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*inventory.Product, error)
}

// Service defines sale recording and reporting.
type Service interface {
	Create(ctx context.Context, in SaleInput) (*Sale, error)
	Get(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
	Update(ctx context.Context, id string, in SaleInput, partial bool) (*Sale, error)
	Delete(ctx context.Context, id string) error
	Analytics(ctx context.Context) (*Analytics, error)
}

type service struct {
	repo     Repository
	products ProductLookup
	log      logrus.FieldLogger
}

func NewService(repo Repository, products ProductLookup, log logrus.FieldLogger) Service {
	return &service{repo: repo, products: products, log: log}
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.NotFound("sale")
	}
	return uid, nil
}

func (s *service) Create(ctx context.Context, in SaleInput) (*Sale, error) {
	sale := &Sale{
		ID:            uuid.New(),
		Reason:        DefaultReason,
		PaymentMethod: PaymentCash,
	}
	if err := s.apply(ctx, sale, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	metrics.RecordSale(string(sale.PaymentMethod), sale.Quantity)
	s.log.WithFields(logrus.Fields{
		"sale_id":        sale.ID,
		"product_id":     sale.ProductID,
		"quantity":       sale.Quantity,
		"payment_method": sale.PaymentMethod,
	}).Info("sale recorded")

	// Reload so the embedded product reflects the decremented stock.
	return s.repo.GetByID(ctx, sale.ID)
}

func (s *service) Get(ctx context.Context, id string) (*Sale, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

// Update rewrites the sale record only. Stock taken by the original sale is
// not restored or re-applied.
func (s *service) Update(ctx context.Context, id string, in SaleInput, partial bool) (*Sale, error) {
	sale, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, sale, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, uid)
}

func (s *service) Analytics(ctx context.Context) (*Analytics, error) {
	return s.repo.Analytics(ctx)
}

var maxAmount = decimal.New(1, 8)

func checkAmount(fields apperr.Fields, name string, d decimal.Decimal) {
	switch {
	case !d.Equal(d.Round(2)):
		fields.Add(name, "Ensure that there are no more than 2 decimal places.")
	case d.Abs().GreaterThanOrEqual(maxAmount):
		fields.Add(name, "Ensure that there are no more than 10 digits in total.")
	}
}

func (s *service) apply(ctx context.Context, sale *Sale, in SaleInput, partial bool) error {
	fields := apperr.Fields{}
	text := func(name string, src *string, dst *string, max int) {
		if src == nil {
			return
		}
		*dst = strings.TrimSpace(*src)
		if len(*dst) > max {
			fields.Add(name, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
		}
	}

	switch {
	case in.Quantity != nil:
		if *in.Quantity <= 0 {
			fields.Add("quantity", "Quantity must be positive")
		}
		sale.Quantity = *in.Quantity
	case !partial:
		fields.Add("quantity", "This field is required.")
	}

	switch {
	case in.SalePrice != nil:
		checkAmount(fields, "sale_price", *in.SalePrice)
		sale.SalePrice = *in.SalePrice
	case !partial:
		fields.Add("sale_price", "This field is required.")
	}

	switch {
	case in.AmountPaid != nil:
		checkAmount(fields, "amount_paid", *in.AmountPaid)
		sale.AmountPaid = decimal.NewNullDecimal(*in.AmountPaid)
	case !partial:
		sale.AmountPaid = decimal.NullDecimal{}
	}

	if in.PaymentMethod != nil {
		m, err := ParsePaymentMethod(*in.PaymentMethod)
		if err != nil {
			fields.Add("payment_method", fmt.Sprintf("%q is not a valid choice.", *in.PaymentMethod))
		}
		sale.PaymentMethod = m
	}

	text("reason", in.Reason, &sale.Reason, 100)
	if in.Reason != nil && sale.Reason == "" {
		fields.Add("reason", "This field may not be blank.")
	}
	text("customer_name", in.CustomerName, &sale.CustomerName, 100)
	text("contact_number", in.ContactNumber, &sale.ContactNumber, 15)

	if in.ProductID == nil && !partial {
		fields.Add("product_id", "This field is required.")
	}
	if err := fields.Err(); err != nil {
		return err
	}

	if in.ProductID != nil {
		p, err := apperr.Resolve(ctx, "product_id", *in.ProductID, s.products.GetByID)
		if err != nil {
			return err
		}
		sale.ProductID, sale.Product = p.ID, p
	}
	return nil
}
