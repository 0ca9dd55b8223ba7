package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id" // string
)

// RequestLogger はリクエストごとのloggerをcontextに入れて、終了時に1行出す。
// handler/usecase からは zerolog.Ctx(ctx) で取り出す。
func RequestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			//リクエストIDはヘッダ優先、無ければ採番
			reqID := c.Request().Header.Get(HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(CtxRequestIDKey, reqID)
			c.Response().Header().Set(HeaderRequestID, reqID)

			logger := base.With().Str("request_id", reqID).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

			err := next(c)
			if err != nil {
				//ステータスを確定させる
				c.Error(err)
			}

			ev := logger.Info()
			status := c.Response().Status
			if status >= 500 {
				ev = logger.Error()
			} else if status >= 400 {
				ev = logger.Warn()
			}
			ev.Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return nil
		}
	}
}
