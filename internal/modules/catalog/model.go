package catalog

import "github.com/google/uuid"

// Category groups brands and products, e.g. "Refrigerator".
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Brand is a manufacturer within one category. Category is populated on reads.
type Brand struct {
	ID          uuid.UUID
	Name        string
	Description string
	CategoryID  uuid.UUID
	Category    *Category
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type BrandView struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Category    *CategoryView `json:"category"`
}

func CategoryToWire(c *Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name, Description: c.Description}
}

// BrandToWire expands the brand's category when it was loaded.
func BrandToWire(b *Brand) BrandView {
	v := BrandView{ID: b.ID, Name: b.Name, Description: b.Description}
	if b.Category != nil {
		cv := CategoryToWire(b.Category)
		v.Category = &cv
	}
	return v
}

// CategoryInput is the write representation of a Category.
type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// BrandInput is the write representation of a Brand; the category is named by id.
type BrandInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
}
