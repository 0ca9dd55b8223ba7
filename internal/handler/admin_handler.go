package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")

	admin.POST("/discount-code", h.generateDiscountCode)
	admin.GET("/stats", h.stats)
	admin.GET("/audit-logs", h.auditLogs)
}

func (h *AdminHandler) generateDiscountCode(c echo.Context) error {
	out, err := h.uc.GenerateDiscountCode(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) stats(c echo.Context) error {
	// 数値でなければデフォルト（400にはしない）
	out, err := h.uc.Stats(c.Request().Context(), usecase.StatsInput{
		Page:  queryInt(c, "page", usecase.DefaultStatsPage),
		Limit: queryInt(c, "limit", usecase.DefaultStatsLimit),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) auditLogs(c echo.Context) error {
	out, err := h.uc.ListAuditLogs(c.Request().Context(), usecase.AuditLogListInput{
		Action: c.QueryParam("action"),
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
