package catalog

import "errors"

var (
	// ErrProductNotFound is returned when an ID is not in the catalog.
	ErrProductNotFound = errors.New("catalog: product not found")
	// ErrInvalidCatalog wraps problems found while loading catalog data.
	ErrInvalidCatalog = errors.New("catalog: invalid data")
)

// Product is an immutable catalog entry. Price is in minor currency units.
type Product struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Price       int64  `yaml:"price" json:"price"`
	Icon        string `yaml:"icon" json:"icon"`
}

// Stats summarises catalog prices for the analytics view.
type Stats struct {
	Count   int   `json:"count"`
	Total   int64 `json:"total"`
	Min     int64 `json:"min"`
	Max     int64 `json:"max"`
	Average int64 `json:"average"`
}
