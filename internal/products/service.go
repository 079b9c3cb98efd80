package products

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrInvalidPrice is returned when creating or updating a product with a
// non-positive price.
var ErrInvalidPrice = errors.New("price must be a positive number")

// ErrInvalidQuantity is returned when the stock quantity is negative.
var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Service provides product catalog operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new product Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create validates and stores a new product.
func (s *Service) Create(ctx context.Context, name, description string, price float64, quantity int) (*Product, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	p := &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	}
	if err := s.storage.Create(ctx, p); err != nil {
		s.logger.Error("failed to save product", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("product created", zap.Uint("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Get returns a single product by ID.
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	return s.storage.GetByID(ctx, id)
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.storage.List(ctx)
}

// Update replaces the editable fields of an existing product.
func (s *Service) Update(ctx context.Context, id uint, name, description string, price float64, quantity int) (*Product, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Quantity = quantity

	if err := s.storage.Update(ctx, p); err != nil {
		s.logger.Error("failed to update product", zap.Uint("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// Delete removes a product. Historical sale lines keep their unit price
// snapshot, so deleting a product does not alter past sales.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.Uint("product_id", id))
	return nil
}
