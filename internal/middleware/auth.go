package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/handoff"
)

// RequireHandoff refuses requests from sessions that have not started a
// password reset. It guards endpoints that cannot show a notification, such
// as the countdown socket; pages rely on the flow controller instead.
func RequireHandoff(f handoff.Factory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok, err := f.For(c).Get(c.Request().Context(), domain.ResetEmailKey)
			if err != nil {
				return err
			}
			if !ok || email == "" {
				return echo.NewHTTPError(http.StatusForbidden, "no password reset in progress")
			}
			return next(c)
		}
	}
}
