package catalog

import (
	"context"

	"github.com/georgemunganga/inventory-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCategories are created by Seed.
var DefaultCategories = []string{
	"Air Conditioner",
	"Washing Machine",
	"Refrigerator",
	"Television",
	"ATA Chakki",
}

// DefaultBrands maps each seeded brand to its category name.
var DefaultBrands = []struct{ Name, Category string }{
	{"Godrej", "Air Conditioner"},
	{"LG", "Air Conditioner"},
	{"Samsung", "Air Conditioner"},
	{"Whirlpool", "Washing Machine"},
	{"Tansui", "Television"},
}

// SeedResult counts the rows Seed inserted.
type SeedResult struct {
	Categories int
	Brands     int
}

// Seed inserts the default categories and brands. Rows that already exist are
// left untouched, so it is safe to run repeatedly.
func Seed(ctx context.Context, repo Repository, log logrus.FieldLogger) (SeedResult, error) {
	var res SeedResult
	byName := map[string]*Category{}

	for _, name := range DefaultCategories {
		c, err := repo.GetCategoryByName(ctx, name)
		if apperr.KindOf(err) == apperr.KindNotFound {
			c = &Category{ID: uuid.New(), Name: name}
			if err = repo.CreateCategory(ctx, c); err == nil {
				res.Categories++
				log.WithField("category", name).Info("seeded category")
			}
		}
		if err != nil {
			return res, err
		}
		byName[name] = c
	}

	for _, def := range DefaultBrands {
		c := byName[def.Category]
		_, err := repo.GetBrandByName(ctx, def.Name, c.ID)
		if apperr.KindOf(err) == apperr.KindNotFound {
			b := &Brand{ID: uuid.New(), Name: def.Name, CategoryID: c.ID}
			if err = repo.CreateBrand(ctx, b); err == nil {
				res.Brands++
				log.WithFields(logrus.Fields{"brand": def.Name, "category": def.Category}).Info("seeded brand")
			}
		}
		if err != nil {
			return res, err
		}
	}
	return res, nil
}
