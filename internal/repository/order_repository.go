package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 注文は追記のみ。古い順に並ぶ。
type OrderRepository interface {
	// 追加後の注文数を返す
	Append(ctx context.Context, order model.Order) (int64, error)
	Count(ctx context.Context) (int64, error)
	// [offset, offset+limit) を返す。範囲外は空。
	Slice(ctx context.Context, offset int, limit int) ([]model.Order, error)
}
