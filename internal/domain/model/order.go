package model

import "time"

// 確定済みの注文。作成後は変更しない。
type Order struct {
	ID           string               `json:"id"`
	UserID       string               `json:"userId"`
	Items        map[string]OrderItem `json:"items"`
	TotalAmount  float64              `json:"totalAmount"`
	DiscountCode string               `json:"discountCode,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// ItemCount は全明細の数量合計。
func (o Order) ItemCount() int64 {
	var n int64
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
