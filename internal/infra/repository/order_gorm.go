package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Append(ctx context.Context, order model.Order) (int64, error) {
	q := r.db.WithContext(ctx)

	row := db.OrderRow{
		OrderID:      order.ID,
		UserID:       order.UserID,
		TotalAmount:  order.TotalAmount,
		DiscountCode: order.DiscountCode,
		CreatedAt:    order.CreatedAt,
	}
	if err := q.Create(&row).Error; err != nil {
		return 0, err
	}

	if len(order.Items) > 0 {
		items := make([]db.OrderItemRow, 0, len(order.Items))
		for id, it := range order.Items {
			items = append(items, db.OrderItemRow{
				OrderSeq:   row.Seq,
				ItemID:     id,
				Quantity:   it.Quantity,
				TotalPrice: it.TotalPrice,
			})
		}
		if err := q.Create(&items).Error; err != nil {
			return 0, err
		}
	}

	return r.Count(ctx)
}

func (r *OrderGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&db.OrderRow{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *OrderGormRepository) Slice(ctx context.Context, offset int, limit int) ([]model.Order, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return []model.Order{}, nil
	}

	var rows []db.OrderRow
	if err := r.db.WithContext(ctx).
		Order("seq asc").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return []model.Order{}, err
	}
	if len(rows) == 0 {
		return []model.Order{}, nil
	}

	seqs := make([]int64, 0, len(rows))
	for _, o := range rows {
		seqs = append(seqs, o.Seq)
	}
	var items []db.OrderItemRow
	if err := r.db.WithContext(ctx).Where("order_seq IN ?", seqs).Find(&items).Error; err != nil {
		return []model.Order{}, err
	}

	bySeq := make(map[int64]map[string]model.OrderItem, len(rows))
	for _, it := range items {
		if bySeq[it.OrderSeq] == nil {
			bySeq[it.OrderSeq] = make(map[string]model.OrderItem)
		}
		bySeq[it.OrderSeq][it.ItemID] = model.OrderItem{Quantity: it.Quantity, TotalPrice: it.TotalPrice}
	}

	out := make([]model.Order, 0, len(rows))
	for _, o := range rows {
		its := bySeq[o.Seq]
		if its == nil {
			its = map[string]model.OrderItem{}
		}
		out = append(out, model.Order{
			ID:           o.OrderID,
			UserID:       o.UserID,
			Items:        its,
			TotalAmount:  o.TotalAmount,
			DiscountCode: o.DiscountCode,
			CreatedAt:    o.CreatedAt,
		})
	}
	return out, nil
}
