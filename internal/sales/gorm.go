package sales

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos_inventory/internal/db"
)

// GormStorage persists sales and sale lines in the sales and sale_lines
// tables.
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

func (s *GormStorage) CreateSale(ctx context.Context, sale *Sale) error {
	return s.conn(ctx).Create(sale).Error
}

func (s *GormStorage) GetSale(ctx context.Context, id uint) (*Sale, error) {
	var sale Sale
	if err := s.conn(ctx).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

func (s *GormStorage) UpdateTotal(ctx context.Context, id uint, total float64) error {
	res := s.conn(ctx).Model(&Sale{}).Where("id = ?", id).Update("total", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStorage) ListSales(ctx context.Context) ([]Sale, error) {
	var out []Sale
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) ListSalesByUser(ctx context.Context, userID uint) ([]Sale, error) {
	var out []Sale
	if err := s.conn(ctx).Where("user_id = ?", userID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) CreateLine(ctx context.Context, line *SaleLine) error {
	return s.conn(ctx).Create(line).Error
}

func (s *GormStorage) LinesBySale(ctx context.Context, saleID uint) ([]SaleLine, error) {
	var out []SaleLine
	if err := s.conn(ctx).Where("sale_id = ?", saleID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) DeleteLinesBySale(ctx context.Context, saleID uint) error {
	return s.conn(ctx).Where("sale_id = ?", saleID).Delete(&SaleLine{}).Error
}

func (s *GormStorage) DeleteSale(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&Sale{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
