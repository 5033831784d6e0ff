// Package catalog holds the fixed list of orderable products.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/alexanderramin/milkround/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateProduct indicates two catalog entries share an ID.
	ErrDuplicateProduct = errors.New("duplicate product id")

	// ErrInvalidProduct indicates an entry with an empty ID/name or a price that
	// is not a positive finite number.
	ErrInvalidProduct = errors.New("invalid product")
)

// Catalog is an ordered, immutable product list. Order is the order products
// were supplied in and drives the order of every resolved day.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New validates products and builds a Catalog from them.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.ID == "" || p.Name == "" || !validPrice(p.PricePerLiter) {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrInvalidProduct)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateProduct)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New([]domain.Product{
		{ID: "cow", Name: "Cow Milk", PricePerLiter: 60},
		{ID: "buffalo", Name: "Buffalo Milk", PricePerLiter: 70},
		{ID: "a2", Name: "A2 Cow Milk", PricePerLiter: 90},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Products returns a copy of the products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup finds a product by ID.
func (c *Catalog) Lookup(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Has reports whether id names a catalog product.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Index returns the catalog position of id, or -1.
func (c *Catalog) Index(id string) int {
	i, ok := c.byID[id]
	if !ok {
		return -1
	}
	return i
}

func (c *Catalog) Len() int {
	return len(c.products)
}

type fileSchema struct {
	Products []struct {
		ID            string  `yaml:"id"`
		Name          string  `yaml:"name"`
		PricePerLiter float64 `yaml:"price_per_liter"`
	} `yaml:"products"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("parsing catalog: no products defined")
	}
	products := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, domain.Product{ID: p.ID, Name: p.Name, PricePerLiter: p.PricePerLiter})
	}
	return New(products)
}

// Load reads a YAML catalog file. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}
