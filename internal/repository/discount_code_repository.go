package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type DiscountCodeRepository interface {
	FindByCode(ctx context.Context, code string) (model.DiscountCode, error)
	// 同じコード名があれば上書き（並び順は最初の登録時のまま）
	Upsert(ctx context.Context, code model.DiscountCode) error
	// 使用済みにする。無ければ ErrNotFound
	Invalidate(ctx context.Context, code string) error
	// 発行順
	List(ctx context.Context) ([]model.DiscountCode, error)
}
