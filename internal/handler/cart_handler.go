package handler

import (
	"math"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	UserID   string  `json:"userId"`
	ItemID   string  `json:"itemId"`
	// 2.0 や 1e2 も数値として受ける（整数値のみ有効）
	Quantity float64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/cart", h.addToCart)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		//quantityが数値でない等も入力エラー扱い
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.MsgInvalidInput})
	}

	qty, ok := wholeQuantity(req.Quantity)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: usecase.MsgInvalidInput})
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		UserID:   req.UserID,
		ItemID:   req.ItemID,
		Quantity: qty,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: out.Message})
}

// wholeQuantity は整数値の数量だけ int64 にする。
// 0以下のチェックは usecase 側。
func wholeQuantity(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// 2^63 以上は int64 に入らない
	if f >= math.Exp2(63) || f < -math.Exp2(63) {
		return 0, false
	}
	return int64(f), true
}
