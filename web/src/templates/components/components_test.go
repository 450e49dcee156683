package components_test

import (
	"bytes"
	"testing"

	"github.com/nfrund/authflow/internal/password"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestResendLabel(t *testing.T) {
	assert.Equal(t, "Resend code in 60s", components.ResendLabel(auth.ResendData{Remaining: 60}))
	assert.Equal(t, "Resend code in 1s", components.ResendLabel(auth.ResendData{Remaining: 1}))
	assert.Equal(t, "Resend code", components.ResendLabel(auth.ResendData{}))
	assert.Equal(t, "Resending...", components.ResendLabel(auth.ResendData{Remaining: 12, Resending: true}))
}

func TestResendControl(t *testing.T) {
	html := render(t, components.ResendControl("/validate-email/resend", auth.ResendData{Remaining: 5}))
	assert.Contains(t, html, `id="resend-control"`)
	assert.Contains(t, html, "disabled>")
	assert.Contains(t, html, "Resend code in 5s")

	html = render(t, components.ResendControl("/validate-email/resend", auth.ResendData{}))
	assert.NotContains(t, html, "disabled>")
}

func TestStrengthChecklist(t *testing.T) {
	t.Run("weak password keeps submit disabled", func(t *testing.T) {
		html := render(t, components.StrengthChecklist(auth.StrengthData{Result: password.Evaluate("abc", "")}))
		assert.Contains(t, html, `id="password-strength"`)
		assert.Contains(t, html, "Strength: Weak")
		assert.Contains(t, html, "disabled>")
		assert.NotContains(t, html, "Passwords")
	})

	t.Run("strong matching password enables submit", func(t *testing.T) {
		html := render(t, components.StrengthChecklist(auth.StrengthData{
			Result:     password.Evaluate("Aa1!aaaa", "Aa1!aaaa"),
			Confirming: true,
		}))
		assert.Contains(t, html, "Strength: Very strong")
		assert.Contains(t, html, "Passwords match")
		assert.NotContains(t, html, "disabled>")
	})

	t.Run("mismatch is shown", func(t *testing.T) {
		html := render(t, components.StrengthChecklist(auth.StrengthData{
			Result:     password.Evaluate("Aa1!aaaa", "Aa1!"),
			Confirming: true,
		}))
		assert.Contains(t, html, "Passwords don&#39;t match")
		assert.Contains(t, html, "disabled>")
	})
}
