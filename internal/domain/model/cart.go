package model

import (
	"errors"
	"math"
)

// 合計が int64 に収まらない追加
var ErrAmountOverflow = errors.New("cart amount overflow")

// ユーザーごとに1つ。初回の追加で作られ、checkoutで消える。
// Total は常に Items の TotalPrice の合計。
type Cart struct {
	UserID string              `json:"userId"`
	Items  map[string]CartItem `json:"items"`
	Total  int64               `json:"total"`
}

func NewCart(userID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  make(map[string]CartItem),
	}
}

// Add は数量と金額を明細とTotalの両方に加算する。
// 桁あふれする場合は何も変えずに ErrAmountOverflow。
func (c *Cart) Add(itemID string, qty int64, unitPrice int64) error {
	if qty > MaxQuantity(unitPrice) {
		return ErrAmountOverflow
	}
	amount := qty * unitPrice

	it := c.Items[itemID]
	if it.Quantity > math.MaxInt64-qty || it.TotalPrice > math.MaxInt64-amount || c.Total > math.MaxInt64-amount {
		return ErrAmountOverflow
	}
	it.Quantity += qty
	it.TotalPrice += amount
	c.Items[itemID] = it

	c.Total += amount
	return nil
}

// MaxQuantity は1回の追加で金額が int64 に収まる最大数量。
func MaxQuantity(unitPrice int64) int64 {
	if unitPrice <= 0 {
		return math.MaxInt64
	}
	return math.MaxInt64 / unitPrice
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Clone はリポジトリ外へ渡すためのコピー。
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	out := &Cart{
		UserID: c.UserID,
		Items:  make(map[string]CartItem, len(c.Items)),
		Total:  c.Total,
	}
	for k, v := range c.Items {
		out.Items[k] = v
	}
	return out
}
