package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/rs/zerolog"
)

const (
	DefaultStatsPage  = 1
	DefaultStatsLimit = 10
)

type AdminUsecase struct {
	tx      repo.TransactionManager
	clock   Clock
	metrics Metrics
}

func NewAdminUsecase(tx repo.TransactionManager, clock Clock, metrics Metrics) *AdminUsecase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &AdminUsecase{tx: tx, clock: clock, metrics: metrics}
}

type DiscountCodeOutput struct {
	DiscountCode string `json:"discountCode"`
}

// GenerateDiscountCode は「現在の注文数」でコードを作る。
// 同じ注文数で報酬コードが出ていれば同じ名前になり、有効に戻る。
func (u *AdminUsecase) GenerateDiscountCode(ctx context.Context) (DiscountCodeOutput, error) {
	var code string
	var count int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		count, err = r.Orders().Count(ctx)
		if err != nil {
			return storeError(err)
		}

		now := u.clock.Now()
		code = model.DiscountCodeFor(count)
		if err := r.DiscountCodes().Upsert(ctx, model.DiscountCode{
			Code:      code,
			IsValid:   true,
			Source:    model.DiscountSourceAdmin,
			CreatedAt: now,
		}); err != nil {
			return storeError(err)
		}

		// ★監査ログ
		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			Action:     model.AuditActionIssueAdminCode,
			Code:       code,
			OrderCount: count,
			CreatedAt:  now,
		}); err != nil {
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return DiscountCodeOutput{}, err
	}

	u.metrics.DiscountCodeIssued(model.DiscountSourceAdmin)
	zerolog.Ctx(ctx).Info().Str("code", code).Int64("order_count", count).Msg("admin discount code issued")

	return DiscountCodeOutput{DiscountCode: code}, nil
}

type StatsInput struct {
	Page  int
	Limit int
}

type DiscountCodeStatus struct {
	Code    string `json:"code"`
	IsValid bool   `json:"isValid"`
}

type StatsOutput struct {
	TotalItemsPurchased int64                `json:"totalItemsPurchased"`
	TotalPurchaseAmount float64              `json:"totalPurchaseAmount"`
	DiscountCodes       []DiscountCodeStatus `json:"discountCodes"`
	CurrentPage         int                  `json:"currentPage"`
	TotalPages          int64                `json:"totalPages"`
}

// Stats は指定ページの注文だけを集計する。
// 割引コード一覧と totalPages はページに関係なく全体から出す。
// page が1未満なら集計は空で、currentPage はそのまま返す。
func (u *AdminUsecase) Stats(ctx context.Context, in StatsInput) (StatsOutput, error) {
	page := in.Page
	// limit は割り算に使うので1未満はデフォルト
	limit := in.Limit
	if limit < 1 {
		limit = DefaultStatsLimit
	}

	var out StatsOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		total, err := r.Orders().Count(ctx)
		if err != nil {
			return storeError(err)
		}

		orders := []model.Order{}
		//範囲外のページはオーバーフローさせずに空にする
		if page >= 1 && int64(page-1) < ceilDiv(total, int64(limit)) {
			orders, err = r.Orders().Slice(ctx, (page-1)*limit, limit)
			if err != nil {
				return storeError(err)
			}
		}

		var items int64
		var amount float64
		for _, o := range orders {
			items += o.ItemCount()
			amount += o.TotalAmount
		}

		codes, err := r.DiscountCodes().List(ctx)
		if err != nil {
			return storeError(err)
		}
		statuses := make([]DiscountCodeStatus, 0, len(codes))
		for _, c := range codes {
			statuses = append(statuses, DiscountCodeStatus{Code: c.Code, IsValid: c.IsValid})
		}

		out = StatsOutput{
			TotalItemsPurchased: items,
			TotalPurchaseAmount: amount,
			DiscountCodes:       statuses,
			CurrentPage:         page,
			TotalPages:          ceilDiv(total, int64(limit)),
		}
		return nil
	})
	if err != nil {
		return StatsOutput{}, err
	}
	return out, nil
}

type AuditLogListInput struct {
	Action string
	Limit  int
	Offset int
}

// 監査ログ一覧（新しい順）
func (u *AdminUsecase) ListAuditLogs(ctx context.Context, in AuditLogListInput) ([]model.AuditLog, error) {
	f := repo.AuditLogFilter{Limit: in.Limit, Offset: in.Offset}

	switch a := model.AuditAction(in.Action); a {
	case "":
	case model.AuditActionIssueRewardCode, model.AuditActionIssueAdminCode, model.AuditActionConsumeCode:
		f.Action = &a
	default:
		return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid action")
	}

	var logs []model.AuditLog
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		logs, err = r.AuditLogs().List(ctx, f)
		if err != nil {
			return storeError(err)
		}
		return nil
	})
	if err != nil {
		return []model.AuditLog{}, err
	}
	return logs, nil
}

func ceilDiv(n int64, d int64) int64 {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}
