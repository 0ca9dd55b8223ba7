package server

import (
	"net/http"

	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Admin    *handler.AdminHandler
}

func RegisterRoutes(e *echo.Echo, gatherer prometheus.Gatherer, h Handlers) {
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Admin.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
