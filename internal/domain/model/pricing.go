package model

const (
	// 全商品一律の単価
	DefaultUnitPrice int64 = 100

	// N件目ごとに報酬コードを発行
	DefaultNthOrder int64 = 5

	// 割引適用時に掛ける率（10%引き）
	DiscountMultiplier = 0.9
)

// ApplyDiscount は合計に割引率を掛ける。
func ApplyDiscount(total int64) float64 {
	return float64(total) * DiscountMultiplier
}
