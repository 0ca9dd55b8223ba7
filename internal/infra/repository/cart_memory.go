package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"
)

type CartMemoryRepository struct {
	db *db.Store
}

func NewCartMemoryRepository(s *db.Store) *CartMemoryRepository {
	return &CartMemoryRepository{db: s}
}

func (r *CartMemoryRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	if c, ok := r.db.Carts[userID]; ok {
		return c.Clone(), nil
	}
	c := model.NewCart(userID)
	r.db.Carts[userID] = c
	return c.Clone(), nil
}

func (r *CartMemoryRepository) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	c, ok := r.db.Carts[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return c.Clone(), nil
}

func (r *CartMemoryRepository) Save(ctx context.Context, cart *model.Cart) error {
	r.db.Carts[cart.UserID] = cart.Clone()
	return nil
}

func (r *CartMemoryRepository) Delete(ctx context.Context, userID string) error {
	if _, ok := r.db.Carts[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.db.Carts, userID)
	return nil
}
