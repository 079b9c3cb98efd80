package db

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside one atomic transaction. The transaction
// handle travels in the context passed to fn, so every storage call made
// through that context joins the same transaction. If fn returns an error,
// nothing it did is kept.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// WithTx returns a context carrying the given transaction handle.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFrom extracts the transaction handle from ctx, or nil if the call is
// not running inside a transaction.
func TxFrom(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

// GormTxManager implements TxManager on a gorm connection.
type GormTxManager struct {
	base *gorm.DB
}

func NewGormTxManager(base *gorm.DB) *GormTxManager {
	return &GormTxManager{base: base}
}

func (m *GormTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
