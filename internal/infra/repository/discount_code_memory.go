package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"
)

type DiscountCodeMemoryRepository struct {
	db *db.Store
}

func NewDiscountCodeMemoryRepository(s *db.Store) *DiscountCodeMemoryRepository {
	return &DiscountCodeMemoryRepository{db: s}
}

func (r *DiscountCodeMemoryRepository) FindByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	dc, ok := r.db.DiscountCodes[code]
	if !ok {
		return model.DiscountCode{}, repo.ErrNotFound
	}
	return dc, nil
}

func (r *DiscountCodeMemoryRepository) Upsert(ctx context.Context, code model.DiscountCode) error {
	if _, ok := r.db.DiscountCodes[code.Code]; !ok {
		r.db.DiscountOrder = append(r.db.DiscountOrder, code.Code)
	}
	r.db.DiscountCodes[code.Code] = code
	return nil
}

func (r *DiscountCodeMemoryRepository) Invalidate(ctx context.Context, code string) error {
	dc, ok := r.db.DiscountCodes[code]
	if !ok {
		return repo.ErrNotFound
	}
	dc.IsValid = false
	r.db.DiscountCodes[code] = dc
	return nil
}

func (r *DiscountCodeMemoryRepository) List(ctx context.Context) ([]model.DiscountCode, error) {
	out := make([]model.DiscountCode, 0, len(r.db.DiscountOrder))
	for _, code := range r.db.DiscountOrder {
		out = append(out, r.db.DiscountCodes[code])
	}
	return out, nil
}
