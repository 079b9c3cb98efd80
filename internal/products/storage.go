package products

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product with the given ID does not exist.
var ErrNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the guard
// `quantity >= requested` does not hold at write time.
var ErrInsufficientStock = errors.New("insufficient stock")

// Storage is the interface for the product storage layer. All methods join
// the transaction carried in ctx, if any.
type Storage interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error

	// DecrementStock subtracts qty from the product's quantity only if
	// enough stock is available, as a single conditional write.
	DecrementStock(ctx context.Context, id uint, qty int) error
	// RestoreStock adds qty back to the product's quantity. Returns
	// ErrNotFound if the product no longer exists.
	RestoreStock(ctx context.Context, id uint, qty int) error
}
