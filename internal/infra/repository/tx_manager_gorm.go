package repository

import (
	"context"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	carts         repo.CartRepository
	orders        repo.OrderRepository
	discountCodes repo.DiscountCodeRepository
	auditLogs     repo.AuditLogRepository
}

func (r *txReposGorm) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) DiscountCodes() repo.DiscountCodeRepository { return r.discountCodes }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository         { return r.auditLogs }

// TxManagerGorm は db.Transaction で包む。
// 接続は1本（db.OpenSQLite）なので Tx は1つずつ走る。
type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			carts:         NewCartGormRepository(tx),
			orders:        NewOrderGormRepository(tx),
			discountCodes: NewDiscountCodeGormRepository(tx),
			auditLogs:     NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
