package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse は { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok && he.Status < http.StatusInternalServerError {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unexpected error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
