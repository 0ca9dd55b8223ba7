package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
)

type OrderMemoryRepository struct {
	db *db.Store
}

func NewOrderMemoryRepository(s *db.Store) *OrderMemoryRepository {
	return &OrderMemoryRepository{db: s}
}

func (r *OrderMemoryRepository) Append(ctx context.Context, order model.Order) (int64, error) {
	r.db.Orders = append(r.db.Orders, order)
	return int64(len(r.db.Orders)), nil
}

func (r *OrderMemoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.db.Orders)), nil
}

func (r *OrderMemoryRepository) Slice(ctx context.Context, offset int, limit int) ([]model.Order, error) {
	n := len(r.db.Orders)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= n {
		return []model.Order{}, nil
	}

	end := offset + limit
	if end > n {
		end = n
	}

	out := make([]model.Order, end-offset)
	copy(out, r.db.Orders[offset:end])
	return out, nil
}
