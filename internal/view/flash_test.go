package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler behind the session middleware so the session is
	// initialized in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Notify and read back", func(t *testing.T) {
		c, _ := setupTestContext()

		view.Notify(c, domain.Notification{Title: "Check your email", Description: "We've sent you a verification code."})
		view.NewFlashNotifier(c).Notify(domain.Notification{Title: "Invalid request", Severity: domain.SeverityDestructive})

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Messages, 2)
		assert.Equal(t, "Check your email", flashes.Messages[0].Title)
		assert.False(t, flashes.Messages[0].IsDestructive())
		assert.True(t, flashes.Messages[1].IsDestructive())

		again := view.GetFlashData(c)
		assert.True(t, again.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("Form email pre-fill", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.Empty(t, view.FormEmail(c))

		view.SetFormEmail(c, "a@b.com")
		assert.Equal(t, "a@b.com", view.FormEmail(c))
		assert.Empty(t, view.FormEmail(c))
	})

	t.Run("Resume marker is read once", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.False(t, view.TakeResume(c))

		view.MarkResume(c)
		assert.True(t, view.TakeResume(c))
		assert.False(t, view.TakeResume(c))
	})

	t.Run("Saving writes the flash cookie", func(t *testing.T) {
		c, rec := setupTestContext()
		view.Notify(c, domain.Notification{Title: "hi"})

		var names []string
		for _, ck := range rec.Result().Cookies() {
			names = append(names, ck.Name)
		}
		assert.Contains(t, names, "flash-session")
	})
}
