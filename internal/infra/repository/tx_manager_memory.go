package repository

import (
	"context"

	"storefront/internal/infra/db"
	repo "storefront/internal/repository"
)

type txReposMemory struct {
	carts         repo.CartRepository
	orders        repo.OrderRepository
	discountCodes repo.DiscountCodeRepository
	auditLogs     repo.AuditLogRepository
}

func (r *txReposMemory) Carts() repo.CartRepository                 { return r.carts }
func (r *txReposMemory) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposMemory) DiscountCodes() repo.DiscountCodeRepository { return r.discountCodes }
func (r *txReposMemory) AuditLogs() repo.AuditLogRepository         { return r.auditLogs }

// TxManagerMemory は Store 全体を1つのロックで守る。
// 全操作がここを通るので、途中の状態は他のリクエストから見えない。
type TxManagerMemory struct {
	db    *db.Store
	repos *txReposMemory
}

func NewTxManagerMemory(s *db.Store) *TxManagerMemory {
	return &TxManagerMemory{
		db: s,
		repos: &txReposMemory{
			carts:         NewCartMemoryRepository(s),
			orders:        NewOrderMemoryRepository(s),
			discountCodes: NewDiscountCodeMemoryRepository(s),
			auditLogs:     NewAuditLogMemoryRepository(s),
		},
	}
}

func (tm *TxManagerMemory) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.db.Lock()
	defer tm.db.Unlock()

	return fn(tm.repos)
}
