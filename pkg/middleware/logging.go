package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/logger"
)

// RequestLogger logs every request, at warn for 4xx and error for 5xx.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			status := res.Status
			event := logger.Info()
			if status >= 400 {
				event = logger.Warn()
			}
			if status >= 500 {
				event = logger.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("ip", c.RealIP()).
				Str("user_id", UserID(c)).
				Int64("body_size", res.Size).
				Msg("request")
			return nil
		}
	}
}
