package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/logging"
)

// Logger injects a request-scoped logger into the request context, carrying
// the id assigned by the RequestID middleware. It must be placed after
// RequestID in the chain.
func Logger(base *slog.Logger) echo.MiddlewareFunc {
	if base == nil {
		base = slog.Default()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			requestLogger := base.With("request_id", reqID)

			ctx := logging.WithLogger(c.Request().Context(), requestLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
