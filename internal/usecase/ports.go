package usecase

import (
	"time"

	"storefront/internal/domain/model"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 業務イベントのカウンター。
type Metrics interface {
	ItemsAdded(qty int64)
	CheckoutCompleted(discounted bool)
	CheckoutRejected(reason string)
	DiscountCodeIssued(source model.DiscountSource)
}

// NopMetrics は何もしない Metrics。
type NopMetrics struct{}

func (NopMetrics) ItemsAdded(int64)                        {}
func (NopMetrics) CheckoutCompleted(bool)                  {}
func (NopMetrics) CheckoutRejected(string)                 {}
func (NopMetrics) DiscountCodeIssued(model.DiscountSource) {}
