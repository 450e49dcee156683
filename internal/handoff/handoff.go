// Package handoff provides the per-session store the reset flow uses to
// pass the email address from one step to the next.
package handoff

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
)

// SessionName is the cookie session that carries handoff values, or the
// server-side session id when a server backend is configured.
const SessionName = "authflow-session"

// Factory hands out the store bound to the session of one request.
type Factory interface {
	For(c echo.Context) domain.HandoffStore
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(c echo.Context) domain.HandoffStore

// For calls f(c).
func (f FactoryFunc) For(c echo.Context) domain.HandoffStore { return f(c) }

// save writes the session back to the response. It must run before the
// response body is written.
func save(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
