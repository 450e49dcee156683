package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/countdown"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/logging"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
)

// CountdownWS pushes the resend control once per second until the countdown
// reaches zero (GET /validate-email/countdown). Closing the socket stops the
// ticker. Sessions without a handoff record are refused before the upgrade.
func (h *AuthHandler) CountdownWS(c echo.Context) error {
	status, ok, err := h.flow.ResendStatus(c.Request().Context(), h.handoff.For(c))
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, "no password reset in progress")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the error response.
		logging.FromContext(c.Request().Context()).Warn("WebSocket upgrade failed", "error", err)
		return nil
	}
	defer conn.CloseNow()

	// CloseRead discards client messages and cancels ctx when the peer goes away.
	ctx := conn.CloseRead(c.Request().Context())
	logger := logging.FromContext(ctx)

	push := func(remaining int) error {
		resending := status.Resending
		if cur, ok, err := h.flow.ResendStatus(ctx, h.handoff.For(c)); err == nil && ok {
			resending = cur.Resending
		}
		b, err := h.renderer.RenderComponent(ctx, components.ResendControl(flow.RouteResendCode, auth.ResendData{
			Remaining: remaining,
			Resending: resending,
		}))
		if err != nil {
			return err
		}
		return conn.Write(ctx, websocket.MessageText, b)
	}

	if err := push(status.Remaining); err != nil {
		logger.Debug("Countdown push failed", "error", err)
		return nil
	}
	err = countdown.Run(ctx, status.Remaining, h.tick, push)
	switch {
	case err == nil:
		conn.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, context.Canceled):
		logger.Debug("Countdown stopped by client")
	default:
		logger.Debug("Countdown ended", "error", err)
	}
	return nil
}
