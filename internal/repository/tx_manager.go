package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Carts() CartRepository
	Orders() OrderRepository
	DiscountCodes() DiscountCodeRepository
	AuditLogs() AuditLogRepository
}

// Usecaseからロックの取得/解放を隠す。
// fn の実行中は他の WithinTx は走らない。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
