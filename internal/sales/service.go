package sales

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pos_inventory/internal/db"
	"pos_inventory/internal/products"
	"pos_inventory/internal/users"
)

// Service orchestrates sale creation and cancellation over the sales,
// products and users storage layers.
type Service struct {
	storage  Storage
	products products.Storage
	users    users.Storage
	tx       db.TxManager
	logger   *zap.Logger
}

// NewService creates a new sales Service.
func NewService(storage Storage, productStorage products.Storage, userStorage users.Storage, tx db.TxManager, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage:  storage,
		products: productStorage,
		users:    userStorage,
		tx:       tx,
		logger:   logger,
	}
}

// CreateSale creates a sale for userID covering every requested line
// inside one atomic transaction: the sale row, every line, every stock
// decrement and the final total update all commit together or not at all.
//
// Lines are processed sequentially so that duplicate product IDs within
// one request are validated against the cumulative decrement, not stale
// stock. An empty line list is accepted and yields a sale with total 0.
func (s *Service) CreateSale(ctx context.Context, userID uint, lineRequests []LineRequest) (*SaleView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		sale  *Sale
		items []LineItem
	)
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sale = &Sale{UserID: userID, Total: 0}
		if err := s.storage.CreateSale(ctx, sale); err != nil {
			return err
		}

		var total float64
		items = make([]LineItem, 0, len(lineRequests))
		for _, req := range lineRequests {
			product, err := s.products.GetByID(ctx, req.ProductID)
			if err != nil {
				return err
			}
			line, err := s.processLine(ctx, product, req.Quantity, sale.ID)
			if err != nil {
				return err
			}
			total += line.Subtotal
			items = append(items, LineItem{Line: *line, Product: *product})
		}

		if err := s.storage.UpdateTotal(ctx, sale.ID, total); err != nil {
			return err
		}
		sale.Total = total
		return nil
	})
	if err != nil {
		s.logger.Warn("sale creation rolled back",
			zap.Uint("user_id", userID),
			zap.Int("requested_lines", len(lineRequests)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale created",
		zap.Uint("sale_id", sale.ID),
		zap.Uint("user_id", userID),
		zap.Float64("total", sale.Total),
		zap.Int("lines", len(items)),
	)
	view := Format(sale, items, user)
	return &view, nil
}

// CancelSale removes a sale and restores the stock of every product it
// touched, in one transaction. Non-admin requesters may only cancel sales
// they own. If a product was deleted since the sale, restoration is
// skipped for that line.
func (s *Service) CancelSale(ctx context.Context, saleID uint, policy AccessPolicy) error {
	sale, err := s.storage.GetSale(ctx, saleID)
	if err != nil {
		return err
	}
	if !policy.CanCancel(sale) {
		return ErrForbidden
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		lines, err := s.storage.LinesBySale(ctx, sale.ID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			err := s.products.RestoreStock(ctx, line.ProductID, line.Quantity)
			if errors.Is(err, products.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
		}
		if err := s.storage.DeleteLinesBySale(ctx, sale.ID); err != nil {
			return err
		}
		return s.storage.DeleteSale(ctx, sale.ID)
	})
	if err != nil {
		s.logger.Error("sale cancellation failed", zap.Uint("sale_id", saleID), zap.Error(err))
		return err
	}

	s.logger.Info("sale cancelled", zap.Uint("sale_id", saleID), zap.Uint("user_id", sale.UserID))
	return nil
}

// ListSales returns the sales visible to the requester: every sale for a
// policy that can view all, otherwise only the requester's own.
func (s *Service) ListSales(ctx context.Context, policy AccessPolicy) ([]Sale, error) {
	if policy.CanViewAll() {
		return s.storage.ListSales(ctx)
	}
	return s.storage.ListSalesByUser(ctx, policy.UserID)
}
