package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs fn inside one database transaction. Per-player exclusivity
// comes from the row-level FOR UPDATE lock the state repo takes inside the
// transaction, so the player id needs no handling here.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInPlayerTx(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
