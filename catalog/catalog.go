package catalog

import (
	"github.com/defaulths/E-commerceWeb-GERALDO/models"
)

// Catalog is the immutable product list, seeded once at startup. Lookups by
// id return absence rather than an error; callers treat "not found" as a
// normal redirect condition.
type Catalog struct {
	products []models.Product
	byID     map[uint]int
}

// New builds a catalog over the fixed seed list.
func New() *Catalog {
	return NewWith(seedProducts)
}

// NewWith builds a catalog over an explicit product list. The list is copied;
// the catalog never mutates it.
func NewWith(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[uint]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// FindByID returns the product with the given id, or false if none exists.
func (c *Catalog) FindByID(id uint) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// List returns all products in seed order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns products matching the category tag. An empty tag or
// "all" returns the full list.
func (c *Catalog) ByCategory(category string) []models.Product {
	if category == "" || category == "all" {
		return c.List()
	}
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category tags in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
