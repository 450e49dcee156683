package layouts

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Set new password - Acme Inc", CalculateTitle("Set new password"))
	assert.Equal(t, "Acme Inc", CalculateTitle(""))
}

func TestAuthLayout(t *testing.T) {
	now = func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	flashes := view.FlashData{Messages: []domain.Notification{
		{Title: "Invalid request", Description: "Please start the password reset process again.", Severity: domain.SeverityDestructive},
	}}
	var buf bytes.Buffer
	err := AuthLayout("Reset <your> password", "Enter your email", flashes,
		g.P(cmp.Text("body")),
		g.Meta(cmp.Attr("http-equiv", "refresh"), g.Content("1;url=/signin")),
	).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Reset &lt;your&gt; password - Acme Inc</title>")
	assert.Contains(t, html, `<meta http-equiv="refresh" content="1;url=/signin">`)
	assert.Contains(t, html, "© 2031 Acme Inc. All rights reserved.")
	assert.Contains(t, html, "Transform the way you work with our platform")
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Invalid request")
	assert.Contains(t, html, "<p>body</p>")
}

func TestBaseWithoutFlashes(t *testing.T) {
	var buf bytes.Buffer
	err := Standalone("Page not found", view.FlashData{}, g.H1(cmp.Text("404"))).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `id="toasts"`)
	assert.Contains(t, buf.String(), "<h1>404</h1>")
}
