package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// New はルートとミドルウェアを登録した echo を返す。
func New(logger zerolog.Logger, gatherer prometheus.Gatherer, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, gatherer, h)
	return e
}

// Start は ctx が終わるまで listen し、終わったら timeout 付きで止める。
func Start(ctx context.Context, e *echo.Echo, addr string, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(sctx)
	})

	return g.Wait()
}

// 未定義のルートは全部 404 {"error":"Not Found"}。
// メソッド違い（405）も同じ扱い。
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			status, msg = http.StatusNotFound, "Not Found"
		default:
			status, msg = he.Code, http.StatusText(he.Code)
		}
	}

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, handler.ErrorResponse{Error: msg})
}
