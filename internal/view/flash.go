package view

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
)

const (
	flashSessionName     = "flash-session"
	flashKeyNotification = "notification"
	flashKeyFormEmail    = "form_email"
)

// FlashData holds the notifications queued for the next rendered page.
type FlashData struct {
	Messages []domain.Notification
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool { return len(f.Messages) == 0 }

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("Failed to load flash session", "error", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Warn("Failed to save flash session", "error", err)
	}
}

// takeFlashes retrieves and clears the flashes stored under key.
func takeFlashes(c echo.Context, key string) []interface{} {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return nil
	}
	// Flashes() clears what it returns; the session must be saved to persist that.
	flashes := sess.Flashes(key)
	if len(flashes) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return flashes
}

// Notify queues n for display on the next rendered page.
func Notify(c echo.Context, n domain.Notification) {
	b, err := json.Marshal(n)
	if err != nil {
		slog.Warn("Failed to encode notification", "error", err)
		return
	}
	setFlash(c, flashKeyNotification, string(b))
}

// GetFlashData retrieves and clears the queued notifications.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	for _, raw := range takeFlashes(c, flashKeyNotification) {
		s, ok := raw.(string)
		if !ok {
			continue
		}
		var n domain.Notification
		if err := json.Unmarshal([]byte(s), &n); err != nil {
			continue
		}
		data.Messages = append(data.Messages, n)
	}
	return data
}

// SetFormEmail remembers an email so the next render of a form can pre-fill it.
func SetFormEmail(c echo.Context, email string) {
	setFlash(c, flashKeyFormEmail, email)
}

// FormEmail returns and clears the email stored by SetFormEmail.
func FormEmail(c echo.Context) string {
	flashes := takeFlashes(c, flashKeyFormEmail)
	if len(flashes) == 0 {
		return ""
	}
	email, _ := flashes[0].(string)
	return email
}

// FlashNotifier delivers notifications as flash messages of one request.
type FlashNotifier struct {
	c echo.Context
}

// NewFlashNotifier returns a domain.Notifier bound to c.
func NewFlashNotifier(c echo.Context) *FlashNotifier {
	return &FlashNotifier{c: c}
}

// Notify implements domain.Notifier.
func (n *FlashNotifier) Notify(msg domain.Notification) {
	Notify(n.c, msg)
}

const flashKeyResume = "resume"

// MarkResume records that the next render of a step follows an action taken
// on that same step rather than a fresh visit.
func MarkResume(c echo.Context) {
	setFlash(c, flashKeyResume, "1")
}

// TakeResume reports and clears the marker set by MarkResume.
func TakeResume(c echo.Context) bool {
	return len(takeFlashes(c, flashKeyResume)) > 0
}
