package sales

import (
	"context"
	"errors"

	"pos_inventory/internal/products"
)

// processLine validates one product/quantity pair against current stock,
// persists a SaleLine with a frozen copy of the unit price and decrements
// the product's stock. It must run inside the coordinator's transaction:
// the stock mutation is only visible if the whole sale commits.
//
// The decrement is a conditional write (quantity >= requested at write
// time), so two concurrent sales on a near-depleted product cannot both
// pass the check, and a later line for the same product within one sale
// sees the decrements of the earlier ones.
func (s *Service) processLine(ctx context.Context, product *products.Product, quantity int, saleID uint) (*SaleLine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if product.Quantity <= 0 || product.Quantity < quantity {
		return nil, &InsufficientStockError{
			ProductName: product.Name,
			Available:   product.Quantity,
			Requested:   quantity,
		}
	}

	line := &SaleLine{
		SaleID:    saleID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Subtotal:  product.Price * float64(quantity),
	}
	if err := s.storage.CreateLine(ctx, line); err != nil {
		return nil, err
	}

	if err := s.products.DecrementStock(ctx, product.ID, quantity); err != nil {
		if errors.Is(err, products.ErrInsufficientStock) {
			available := product.Quantity
			if fresh, ferr := s.products.GetByID(ctx, product.ID); ferr == nil {
				available = fresh.Quantity
			}
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Available:   available,
				Requested:   quantity,
			}
		}
		return nil, err
	}
	return line, nil
}
