package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/rs/zerolog"
)

type CheckoutUsecase struct {
	tx       repo.TransactionManager
	idGen    IDGenerator
	clock    Clock
	nthOrder int64
	metrics  Metrics
}

func NewCheckoutUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, nthOrder int64, metrics Metrics) *CheckoutUsecase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &CheckoutUsecase{
		tx:       tx,
		idGen:    idGen,
		clock:    clock,
		nthOrder: nthOrder,
		metrics:  metrics,
	}
}

type CheckoutInput struct {
	UserID string
	// 空なら割引なし
	DiscountCode string
}

type CheckoutOutput struct {
	Message     string  `json:"message"`
	TotalAmount float64 `json:"totalAmount"`
	// この注文で報酬コードが発行された時だけ入る
	DiscountCode string `json:"discountCode,omitempty"`
}

// Checkout はカートを注文にする。
// 割引コードは受理した時点で使用済み。N件目の注文なら報酬コードを発行する。
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	if strings.TrimSpace(in.UserID) == "" {
		u.metrics.CheckoutRejected("empty_cart")
		return CheckoutOutput{}, emptyCart()
	}

	var (
		out        CheckoutOutput
		orderCount int64
	)

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, in.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return emptyCart()
		}
		if err != nil {
			return storeError(err)
		}
		if cart.IsEmpty() {
			return emptyCart()
		}

		finalAmount := float64(cart.Total)

		//割引コードの確認。受理したらすぐ使用済みにする
		if in.DiscountCode != "" {
			dc, err := r.DiscountCodes().FindByCode(ctx, in.DiscountCode)
			if errors.Is(err, repo.ErrNotFound) {
				return invalidDiscount()
			}
			if err != nil {
				return storeError(err)
			}
			if !dc.IsValid {
				return invalidDiscount()
			}

			if err := r.DiscountCodes().Invalidate(ctx, dc.Code); err != nil {
				return storeError(err)
			}
			finalAmount = model.ApplyDiscount(cart.Total)
		}

		now := u.clock.Now()

		// 注文作成
		orderCount, err = r.Orders().Append(ctx, model.Order{
			ID:           u.idGen.NewID(),
			UserID:       in.UserID,
			Items:        model.SnapshotItems(cart),
			TotalAmount:  finalAmount,
			DiscountCode: in.DiscountCode,
			CreatedAt:    now,
		})
		if err != nil {
			return storeError(err)
		}

		if in.DiscountCode != "" {
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				Action:     model.AuditActionConsumeCode,
				Code:       in.DiscountCode,
				OrderCount: orderCount,
				UserID:     in.UserID,
				CreatedAt:  now,
			}); err != nil {
				return storeError(err)
			}
		}

		//N件目なら報酬コード
		var reward string
		if u.nthOrder > 0 && orderCount%u.nthOrder == 0 {
			reward = model.DiscountCodeFor(orderCount)
			if err := r.DiscountCodes().Upsert(ctx, model.DiscountCode{
				Code:      reward,
				IsValid:   true,
				Source:    model.DiscountSourceReward,
				CreatedAt: now,
			}); err != nil {
				return storeError(err)
			}
			if err := r.AuditLogs().Create(ctx, model.AuditLog{
				Action:     model.AuditActionIssueRewardCode,
				Code:       reward,
				OrderCount: orderCount,
				UserID:     in.UserID,
				CreatedAt:  now,
			}); err != nil {
				return storeError(err)
			}
		}

		//カートは消す（次の追加で空から作り直す）
		if err := r.Carts().Delete(ctx, in.UserID); err != nil {
			return storeError(err)
		}

		out = CheckoutOutput{
			Message:      "Order placed successfully.",
			TotalAmount:  finalAmount,
			DiscountCode: reward,
		}
		return nil
	})
	if err != nil {
		u.recordRejection(err)
		return CheckoutOutput{}, err
	}

	u.metrics.CheckoutCompleted(in.DiscountCode != "")
	if out.DiscountCode != "" {
		u.metrics.DiscountCodeIssued(model.DiscountSourceReward)
	}

	zerolog.Ctx(ctx).Info().
		Str("user_id", in.UserID).
		Int64("order_count", orderCount).
		Float64("total_amount", out.TotalAmount).
		Str("discount_used", in.DiscountCode).
		Str("reward_code", out.DiscountCode).
		Msg("order placed")

	return out, nil
}

func (u *CheckoutUsecase) recordRejection(err error) {
	switch {
	case errors.Is(err, ErrEmptyCart):
		u.metrics.CheckoutRejected("empty_cart")
	case errors.Is(err, ErrInvalidDiscount):
		u.metrics.CheckoutRejected("invalid_discount")
	default:
		u.metrics.CheckoutRejected("internal")
	}
}
