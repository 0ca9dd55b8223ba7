package model

// カートの明細
// TotalPrice は追加ごとに quantity * unit price を積み上げた値。
type CartItem struct {
	Quantity   int64 `json:"quantity"`
	TotalPrice int64 `json:"totalPrice"`
}
