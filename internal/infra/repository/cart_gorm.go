package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := r.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	// 無ければ作る
	if err := r.db.WithContext(ctx).Create(&db.CartRow{UserID: userID}).Error; err != nil {
		return nil, err
	}
	return model.NewCart(userID), nil
}

func (r *CartGormRepository) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	var row db.CartRow
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var items []db.CartItemRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}

	cart := model.NewCart(userID)
	cart.Total = row.Total
	for _, it := range items {
		cart.Items[it.ItemID] = model.CartItem{Quantity: it.Quantity, TotalPrice: it.TotalPrice}
	}
	return cart, nil
}

// 明細は丸ごと入れ替える
func (r *CartGormRepository) Save(ctx context.Context, cart *model.Cart) error {
	q := r.db.WithContext(ctx)

	if err := q.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&db.CartRow{UserID: cart.UserID, Total: cart.Total}).Error; err != nil {
		return err
	}

	if err := q.Where("user_id = ?", cart.UserID).Delete(&db.CartItemRow{}).Error; err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return nil
	}

	rows := make([]db.CartItemRow, 0, len(cart.Items))
	for id, it := range cart.Items {
		rows = append(rows, db.CartItemRow{
			UserID:     cart.UserID,
			ItemID:     id,
			Quantity:   it.Quantity,
			TotalPrice: it.TotalPrice,
		})
	}
	return q.Create(&rows).Error
}

func (r *CartGormRepository) Delete(ctx context.Context, userID string) error {
	q := r.db.WithContext(ctx)

	res := q.Where("user_id = ?", userID).Delete(&db.CartRow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}

	//cart_itemsも全削除
	return q.Where("user_id = ?", userID).Delete(&db.CartItemRow{}).Error
}
