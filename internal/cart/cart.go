// Package cart holds the add-to-cart counter of a storefront visit.
package cart

import (
	"errors"

	"github.com/shopez/shopez/internal/catalog"
)

// ErrNegativeCount is returned when restoring a cart from a negative count.
var ErrNegativeCount = errors.New("cart: negative count")

// Cart counts add-to-cart events. The count is never negative.
type Cart struct {
	count int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from a stored count.
func Restore(count int) (*Cart, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	return &Cart{count: count}, nil
}

// Add records one add-to-cart event. Stock is not tracked, so the product
// only identifies what was clicked.
func (c *Cart) Add(_ catalog.Product) {
	c.count++
}

// Reset empties the cart.
func (c *Cart) Reset() {
	c.count = 0
}

// Count returns the number of items added since the last reset.
func (c *Cart) Count() int {
	return c.count
}
