// Package catalog provides the read-only product list of the storefront.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/products.yaml
var defaultData []byte

type document struct {
	Products []Product `yaml:"products"`
}

// Catalog is a static, read-only list of products. It is safe for concurrent
// use because nothing mutates it after Load.
type Catalog struct {
	products []Product
	index    map[string]int
}

// Default loads the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultData))
}

// Load decodes a YAML catalog document and validates its entries.
func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Products)
}

// New builds a catalog from products, preserving their order.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for i, p := range products {
		p.ID = strings.TrimSpace(p.ID)
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("%w: product %d has no id", ErrInvalidCatalog, i+1)
		case strings.TrimSpace(p.Name) == "":
			return nil, fmt.Errorf("%w: product %s has no name", ErrInvalidCatalog, p.ID)
		case p.Price < 0:
			return nil, fmt.Errorf("%w: product %s has negative price", ErrInvalidCatalog, p.ID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %s", ErrInvalidCatalog, p.ID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// All returns a copy of the product list in catalog order.
func (c *Catalog) All() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Count returns the number of products.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Get looks a product up by ID.
func (c *Catalog) Get(id string) (Product, error) {
	if c == nil {
		return Product{}, ErrProductNotFound
	}
	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return c.products[i], nil
}

// TotalValue sums the price of one unit of every product.
func (c *Catalog) TotalValue() int64 {
	var total int64
	if c == nil {
		return total
	}
	for _, p := range c.products {
		total += p.Price
	}
	return total
}

// Stats computes price statistics. An empty catalog yields zero values.
func (c *Catalog) Stats() Stats {
	if c.Count() == 0 {
		return Stats{}
	}
	s := Stats{
		Count: len(c.products),
		Min:   c.products[0].Price,
		Max:   c.products[0].Price,
	}
	for _, p := range c.products {
		s.Total += p.Price
		if p.Price < s.Min {
			s.Min = p.Price
		}
		if p.Price > s.Max {
			s.Max = p.Price
		}
	}
	s.Average = s.Total / int64(s.Count)
	return s
}
