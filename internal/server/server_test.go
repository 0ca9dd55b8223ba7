package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/metrics"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// レスポンス確認用（any禁止）
// =====================

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type checkoutResponse struct {
	Message      string  `json:"message"`
	TotalAmount  float64 `json:"totalAmount"`
	DiscountCode string  `json:"discountCode"`
}

type discountCodeResponse struct {
	DiscountCode string `json:"discountCode"`
}

type statsResponse struct {
	TotalItemsPurchased int64   `json:"totalItemsPurchased"`
	TotalPurchaseAmount float64 `json:"totalPurchaseAmount"`
	DiscountCodes       []struct {
		Code    string `json:"code"`
		IsValid bool   `json:"isValid"`
	} `json:"discountCodes"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
}

type auditLogResponse struct {
	ID         int64  `json:"id"`
	Action     string `json:"action"`
	Code       string `json:"code"`
	OrderCount int64  `json:"orderCount"`
}

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("order-%d", g.n)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	tx := infraRepo.NewTxManagerMemory(db.NewStore())

	return server.New(zerolog.Nop(), reg, server.Handlers{
		Cart:     handler.NewCartHandler(usecase.NewCartUsecase(tx, model.DefaultUnitPrice, m)),
		Checkout: handler.NewCheckoutHandler(usecase.NewCheckoutUsecase(tx, &seqIDs{}, fixedClock{}, model.DefaultNthOrder, m)),
		Admin:    handler.NewAdminHandler(usecase.NewAdminUsecase(tx, fixedClock{}, m)),
	})
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func addItem(t *testing.T, e *echo.Echo, userID, itemID string, qty int) {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/cart", fmt.Sprintf(`{"userId":%q,"itemId":%q,"quantity":%d}`, userID, itemID, qty))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCart_AddItem_OK(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/cart", `{"userId":"user1","itemId":"item1","quantity":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Item added to cart successfully.", decode[messageResponse](t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCart_AddItem_InvalidInput(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing userId", `{"itemId":"item1","quantity":1}`},
		{"blank itemId", `{"userId":"user1","itemId":"  ","quantity":1}`},
		{"zero quantity", `{"userId":"user1","itemId":"item1","quantity":0}`},
		{"negative quantity", `{"userId":"user1","itemId":"item1","quantity":-2}`},
		{"quantity is a string", `{"userId":"user1","itemId":"item1","quantity":"abc"}`},
		{"fractional quantity", `{"userId":"user1","itemId":"item1","quantity":1.5}`},
		{"total would overflow", `{"userId":"user1","itemId":"item1","quantity":92233720368547759}`},
		{"beyond int64", `{"userId":"user1","itemId":"item1","quantity":1e19}`},
		{"broken json", `{"userId":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/cart", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, usecase.MsgInvalidInput, decode[errorResponse](t, rec).Error)
		})
	}
}

func TestCart_AddItem_IntegralFloatQuantity(t *testing.T) {
	e := newTestServer(t)

	addItemRaw := func(qty string) {
		rec := do(t, e, http.MethodPost, "/cart", `{"userId":"user1","itemId":"item1","quantity":`+qty+`}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	addItemRaw("2.0")
	addItemRaw("1e2")

	rec := do(t, e, http.MethodPost, "/checkout", `{"userId":"user1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(10200), decode[checkoutResponse](t, rec).TotalAmount)
}

func TestCart_AddItem_OverflowKeepsCart(t *testing.T) {
	e := newTestServer(t)
	addItem(t, e, "user1", "item1", 1)

	rec := do(t, e, http.MethodPost, "/cart", `{"userId":"user1","itemId":"item1","quantity":92233720368547759}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// カートは壊れず、合計は正のまま
	rec = do(t, e, http.MethodPost, "/checkout", `{"userId":"user1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(100), decode[checkoutResponse](t, rec).TotalAmount)
}

func TestCheckout_Flow(t *testing.T) {
	e := newTestServer(t)

	// カートが無い
	rec := do(t, e, http.MethodPost, "/checkout", `{"userId":"nobody"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.MsgEmptyCart, decode[errorResponse](t, rec).Error)

	addItem(t, e, "user1", "item1", 2)

	// 存在しないコードではカートは残る
	rec = do(t, e, http.MethodPost, "/checkout", `{"userId":"user1","discountCode":"BOGUS"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.MsgInvalidDiscount, decode[errorResponse](t, rec).Error)

	rec = do(t, e, http.MethodPost, "/checkout", `{"userId":"user1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[checkoutResponse](t, rec)
	assert.Equal(t, "Order placed successfully.", out.Message)
	assert.Equal(t, float64(200), out.TotalAmount)
	assert.Empty(t, out.DiscountCode)
	// 報酬コードが無い時はキー自体を出さない
	assert.NotContains(t, rec.Body.String(), "discountCode")
}

func TestCheckout_FifthOrderReward_ThenDiscounted(t *testing.T) {
	e := newTestServer(t)

	var reward string
	for i := 1; i <= 5; i++ {
		user := fmt.Sprintf("user%d", i)
		addItem(t, e, user, "item1", 1)
		rec := do(t, e, http.MethodPost, "/checkout", fmt.Sprintf(`{"userId":%q}`, user))
		require.Equal(t, http.StatusOK, rec.Code)
		reward = decode[checkoutResponse](t, rec).DiscountCode
	}
	require.Equal(t, "DISCOUNT5", reward)

	addItem(t, e, "user6", "item1", 2)
	rec := do(t, e, http.MethodPost, "/checkout", `{"userId":"user6","discountCode":"DISCOUNT5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 180.0, decode[checkoutResponse](t, rec).TotalAmount, 1e-9)

	// 2回目は使えない
	addItem(t, e, "user7", "item1", 1)
	rec = do(t, e, http.MethodPost, "/checkout", `{"userId":"user7","discountCode":"DISCOUNT5"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, usecase.MsgInvalidDiscount, decode[errorResponse](t, rec).Error)
}

func TestCheckout_InvalidBody(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/checkout", `{"userId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid body", decode[errorResponse](t, rec).Error)
}

func TestAdmin_DiscountCode_And_Stats(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodPost, "/admin/discount-code", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DISCOUNT0", decode[discountCodeResponse](t, rec).DiscountCode)

	addItem(t, e, "a", "item1", 2)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/checkout", `{"userId":"a","discountCode":"DISCOUNT0"}`).Code)
	addItem(t, e, "b", "item1", 1)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/checkout", `{"userId":"b"}`).Code)

	rec = do(t, e, http.MethodGet, "/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[statsResponse](t, rec)
	assert.Equal(t, int64(3), stats.TotalItemsPurchased)
	assert.InDelta(t, 280.0, stats.TotalPurchaseAmount, 1e-9)
	require.Len(t, stats.DiscountCodes, 1)
	assert.Equal(t, "DISCOUNT0", stats.DiscountCodes[0].Code)
	assert.False(t, stats.DiscountCodes[0].IsValid)
	assert.Equal(t, 1, stats.CurrentPage)
	assert.Equal(t, int64(1), stats.TotalPages)

	// 2ページ目（limit=1）は2件目の注文だけ
	rec = do(t, e, http.MethodGet, "/admin/stats?page=2&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decode[statsResponse](t, rec)
	assert.Equal(t, int64(1), stats.TotalItemsPurchased)
	assert.Equal(t, float64(100), stats.TotalPurchaseAmount)
	assert.Equal(t, 2, stats.CurrentPage)
	assert.Equal(t, int64(2), stats.TotalPages)

	// 数値でなければデフォルト
	rec = do(t, e, http.MethodGet, "/admin/stats?page=abc&limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decode[statsResponse](t, rec)
	assert.Equal(t, 1, stats.CurrentPage)
	assert.Equal(t, int64(3), stats.TotalItemsPurchased)
	assert.Equal(t, int64(1), stats.TotalPages)

	// page=0 は空のページ
	rec = do(t, e, http.MethodGet, "/admin/stats?page=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decode[statsResponse](t, rec)
	assert.Equal(t, 0, stats.CurrentPage)
	assert.Zero(t, stats.TotalItemsPurchased)
	assert.Zero(t, stats.TotalPurchaseAmount)
	assert.Equal(t, int64(1), stats.TotalPages)
}

func TestAdmin_Stats_EmptyStore(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalItemsPurchased":0,"totalPurchaseAmount":0,"discountCodes":[],"currentPage":1,"totalPages":0}`, rec.Body.String())
}

func TestAdmin_AuditLogs(t *testing.T) {
	e := newTestServer(t)

	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/admin/discount-code", "").Code)
	addItem(t, e, "a", "item1", 1)
	require.Equal(t, http.StatusOK, do(t, e, http.MethodPost, "/checkout", `{"userId":"a","discountCode":"DISCOUNT0"}`).Code)

	rec := do(t, e, http.MethodGet, "/admin/audit-logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decode[[]auditLogResponse](t, rec)
	require.Len(t, logs, 2)
	assert.Equal(t, "CONSUME_CODE", logs[0].Action)
	assert.Equal(t, int64(1), logs[0].OrderCount)
	assert.Equal(t, "ISSUE_ADMIN_CODE", logs[1].Action)

	rec = do(t, e, http.MethodGet, "/admin/audit-logs?action=ISSUE_ADMIN_CODE", "")
	require.Equal(t, http.StatusOK, rec.Code)
	logs = decode[[]auditLogResponse](t, rec)
	require.Len(t, logs, 1)
	assert.Equal(t, "DISCOUNT0", logs[0].Code)

	rec = do(t, e, http.MethodGet, "/admin/audit-logs?action=NOPE", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid action", decode[errorResponse](t, rec).Error)
}

func TestNotFound(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/nope"},
		{"wrong method on cart", http.MethodGet, "/cart"},
		{"wrong method on stats", http.MethodPost, "/admin/stats"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, e, tc.method, tc.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not Found", decode[errorResponse](t, rec).Error)
		})
	}
}

func TestHealth_And_Metrics(t *testing.T) {
	e := newTestServer(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	addItem(t, e, "user1", "item1", 3)

	rec = do(t, e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_cart_items_added_total 3")
}
