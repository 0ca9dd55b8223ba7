package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// クライアント入力のエラー。errors.Is で判定できる。
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyCart       = errors.New("empty cart")
	ErrInvalidDiscount = errors.New("invalid discount")
)

// レスポンスに出すメッセージ
const (
	MsgInvalidInput    = "Invalid input. Provide a valid userId, itemId, and quantity > 0."
	MsgEmptyCart       = "User does not exist or cart is empty."
	MsgInvalidDiscount = "Invalid or expired discount code."
)

type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func invalidInput() error {
	return &HTTPError{Status: http.StatusBadRequest, Message: MsgInvalidInput, Err: ErrInvalidInput}
}

func emptyCart() error {
	return &HTTPError{Status: http.StatusBadRequest, Message: MsgEmptyCart, Err: ErrEmptyCart}
}

func invalidDiscount() error {
	return &HTTPError{Status: http.StatusBadRequest, Message: MsgInvalidDiscount, Err: ErrInvalidDiscount}
}

// 想定外（ストア側）のエラー
func storeError(err error) error {
	return &HTTPError{Status: http.StatusInternalServerError, Message: "store error", Err: err}
}
