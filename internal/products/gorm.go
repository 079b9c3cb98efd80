package products

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos_inventory/internal/db"
)

// GormStorage persists products in the products table.
type GormStorage struct {
	base *gorm.DB
}

func NewGormStorage(base *gorm.DB) *GormStorage {
	return &GormStorage{base: base}
}

var _ Storage = (*GormStorage)(nil)

func (s *GormStorage) conn(ctx context.Context) *gorm.DB {
	if tx := db.TxFrom(ctx); tx != nil {
		return tx
	}
	return s.base.WithContext(ctx)
}

func (s *GormStorage) Create(ctx context.Context, p *Product) error {
	return s.conn(ctx).Create(p).Error
}

func (s *GormStorage) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	if err := s.conn(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStorage) List(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) Update(ctx context.Context, p *Product) error {
	res := s.conn(ctx).Model(&Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) Delete(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) DecrementStock(ctx context.Context, id uint, qty int) error {
	res := s.conn(ctx).Model(&Product{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (s *GormStorage) RestoreStock(ctx context.Context, id uint, qty int) error {
	res := s.conn(ctx).Model(&Product{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
