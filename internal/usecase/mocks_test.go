package usecase_test

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	carts         repo.CartRepository
	orders        repo.OrderRepository
	discountCodes repo.DiscountCodeRepository
	auditLogs     repo.AuditLogRepository
}

func (r *TxReposMock) Carts() repo.CartRepository                 { return r.carts }
func (r *TxReposMock) Orders() repo.OrderRepository               { return r.orders }
func (r *TxReposMock) DiscountCodes() repo.DiscountCodeRepository { return r.discountCodes }
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository         { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepoMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Append(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Slice(ctx context.Context, offset int, limit int) ([]model.Order, error) {
	args := m.Called(ctx, offset, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type DiscountCodeRepoMock struct{ mock.Mock }

func (m *DiscountCodeRepoMock) FindByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	args := m.Called(ctx, code)
	dc, _ := args.Get(0).(model.DiscountCode)
	return dc, args.Error(1)
}

func (m *DiscountCodeRepoMock) Upsert(ctx context.Context, code model.DiscountCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *DiscountCodeRepoMock) Invalidate(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *DiscountCodeRepoMock) List(ctx context.Context) ([]model.DiscountCode, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).([]model.DiscountCode)
	return codes, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// =====================
// Metrics mock / 固定の時計とID
// =====================

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) ItemsAdded(qty int64)                      { m.Called(qty) }
func (m *MetricsMock) CheckoutCompleted(d bool)                  { m.Called(d) }
func (m *MetricsMock) CheckoutRejected(r string)                 { m.Called(r) }
func (m *MetricsMock) DiscountCodeIssued(s model.DiscountSource) { m.Called(s) }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("order-%d", g.n)
}

var testNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
