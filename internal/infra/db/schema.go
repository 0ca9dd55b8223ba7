package db

import "time"

// carts / cart_items は model.Cart を行に分けたもの。

type CartRow struct {
	UserID string `gorm:"primaryKey"`
	Total  int64  `gorm:"not null"`
}

func (CartRow) TableName() string { return "carts" }

type CartItemRow struct {
	UserID     string `gorm:"primaryKey"`
	ItemID     string `gorm:"primaryKey"`
	Quantity   int64  `gorm:"not null"`
	TotalPrice int64  `gorm:"not null"`
}

func (CartItemRow) TableName() string { return "cart_items" }

// Seq が注文順。len(orders) と同じ数だけ振られる。
type OrderRow struct {
	Seq          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID      string    `gorm:"column:order_id;not null;uniqueIndex"`
	UserID       string    `gorm:"not null;index"`
	TotalAmount  float64   `gorm:"not null"`
	DiscountCode string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (OrderRow) TableName() string { return "orders" }

type OrderItemRow struct {
	OrderSeq   int64  `gorm:"primaryKey"`
	ItemID     string `gorm:"primaryKey"`
	Quantity   int64  `gorm:"not null"`
	TotalPrice int64  `gorm:"not null"`
}

func (OrderItemRow) TableName() string { return "order_items" }

// Seq は最初に登録された順。再登録（upsert）では変わらない。
type DiscountCodeRow struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	Code      string    `gorm:"not null;uniqueIndex"`
	IsValid   bool      `gorm:"not null"`
	Source    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (DiscountCodeRow) TableName() string { return "discount_codes" }
