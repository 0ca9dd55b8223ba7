package model

// 注文時点のカート明細のスナップショット
type OrderItem struct {
	Quantity   int64 `json:"quantity"`
	TotalPrice int64 `json:"totalPrice"`
}

// SnapshotItems はカート明細をコピーして注文明細にする。
func SnapshotItems(c *Cart) map[string]OrderItem {
	out := make(map[string]OrderItem, len(c.Items))
	for id, it := range c.Items {
		out[id] = OrderItem{Quantity: it.Quantity, TotalPrice: it.TotalPrice}
	}
	return out
}
