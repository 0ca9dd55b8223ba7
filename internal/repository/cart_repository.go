package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CartRepository interface {
	// 無ければ空のカートを作って返す
	GetOrCreateByUserID(ctx context.Context, userID string) (*model.Cart, error)
	// 無ければ ErrNotFound
	FindByUserID(ctx context.Context, userID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, userID string) error
}
