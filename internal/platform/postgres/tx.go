package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TxFrom returns the transaction stored in ctx, or nil when the request is not
// running inside a unit of work.
func TxFrom(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx
}

// Session resolves the DB handle repositories should use: the ambient
// transaction when present, the supplied base connection otherwise.
func Session(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx := TxFrom(ctx); tx != nil {
		return tx
	}
	if base == nil {
		return nil
	}
	return base.WithContext(ctx)
}

// TxManager runs a function inside a single database transaction. Repository
// calls made with the derived context share that transaction, so every ledger
// debit/credit and record write of one request commits or rolls back together.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if m == nil || m.db == nil {
		return errors.New("postgres tx manager not configured")
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}
