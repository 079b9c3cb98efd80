package sales

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrForbidden is returned when the requesting user may not act on the sale.
var ErrForbidden = errors.New("not allowed to access this sale")

// ErrInvalidQuantity is returned when a requested line quantity is not a
// positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// InsufficientStockError reports a line whose requested quantity exceeds
// the product's available stock.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}
