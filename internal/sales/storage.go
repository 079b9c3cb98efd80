package sales

import "context"

// Storage is the interface for the sales storage layer. All methods join
// the transaction carried in ctx, if any.
type Storage interface {
	CreateSale(ctx context.Context, s *Sale) error
	GetSale(ctx context.Context, id uint) (*Sale, error)
	UpdateTotal(ctx context.Context, id uint, total float64) error
	ListSales(ctx context.Context) ([]Sale, error)
	ListSalesByUser(ctx context.Context, userID uint) ([]Sale, error)

	CreateLine(ctx context.Context, line *SaleLine) error
	LinesBySale(ctx context.Context, saleID uint) ([]SaleLine, error)
	DeleteLinesBySale(ctx context.Context, saleID uint) error
	DeleteSale(ctx context.Context, id uint) error
}
