package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/rs/zerolog"
)

// CartUsecase は /cart の業務ロジックです。
type CartUsecase struct {
	tx        repo.TransactionManager
	unitPrice int64
	metrics   Metrics
}

func NewCartUsecase(tx repo.TransactionManager, unitPrice int64, metrics Metrics) *CartUsecase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &CartUsecase{
		tx:        tx,
		unitPrice: unitPrice,
		metrics:   metrics,
	}
}

type AddItemInput struct {
	UserID   string
	ItemID   string
	Quantity int64
}

type MessageOutput struct {
	Message string `json:"message"`
}

// AddItem はカートに追加（同一商品は数量と金額を加算）。
// カートが無ければ空で作る。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (MessageOutput, error) {
	//変更前に全部チェック
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.ItemID) == "" || in.Quantity <= 0 {
		return MessageOutput{}, invalidInput()
	}
	if in.Quantity > model.MaxQuantity(u.unitPrice) {
		return MessageOutput{}, invalidInput()
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().GetOrCreateByUserID(ctx, in.UserID)
		if err != nil {
			return storeError(err)
		}

		//既存の明細と合わせて桁あふれするなら入力エラー
		if err := cart.Add(in.ItemID, in.Quantity, u.unitPrice); err != nil {
			if errors.Is(err, model.ErrAmountOverflow) {
				return invalidInput()
			}
			return storeError(err)
		}

		if err := r.Carts().Save(ctx, cart); err != nil {
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return MessageOutput{}, err
	}

	u.metrics.ItemsAdded(in.Quantity)
	zerolog.Ctx(ctx).Debug().
		Str("user_id", in.UserID).
		Str("item_id", in.ItemID).
		Int64("quantity", in.Quantity).
		Msg("item added to cart")

	return MessageOutput{Message: "Item added to cart successfully."}, nil
}
