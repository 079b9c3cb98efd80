package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pos_inventory/internal/db"
)

// GormStorage persists users in the users table.
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

func (s *GormStorage) Create(ctx context.Context, u *User) error {
	return s.conn(ctx).Create(u).Error
}

func (s *GormStorage) GetByID(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := s.conn(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStorage) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStorage) List(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.conn(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStorage) Delete(ctx context.Context, id uint) error {
	res := s.conn(ctx).Delete(&User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
