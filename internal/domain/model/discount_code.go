package model

import (
	"strconv"
	"time"
)

type DiscountSource string

const (
	DiscountSourceReward DiscountSource = "REWARD"
	DiscountSourceAdmin  DiscountSource = "ADMIN"
)

// DiscountCodePrefix + 注文数 がコード名になる。
const DiscountCodePrefix = "DISCOUNT"

// 割引コード。valid -> invalid は一度だけ（checkoutで使われた時）。
type DiscountCode struct {
	Code      string         `json:"code"`
	IsValid   bool           `json:"isValid"`
	Source    DiscountSource `json:"source"`
	CreatedAt time.Time      `json:"createdAt"`
}

// DiscountCodeFor は注文数からコード名を作る（報酬・管理者共通）。
func DiscountCodeFor(orderCount int64) string {
	return DiscountCodePrefix + strconv.FormatInt(orderCount, 10)
}
