package pages

import (
	"strconv"

	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/verification"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ValidateEmailSubtitle names the address the code was sent to.
func ValidateEmailSubtitle(email string) string {
	if email == "" {
		email = "your email"
	}
	return "Enter the verification code sent to " + email
}

// ValidateEmail is the verification code form with the resend control. The
// control is kept current by the countdown WebSocket.
func ValidateEmail(data auth.ValidateEmailData) cmp.Node {
	return g.Div(
		components.Card(
			g.Form(
				g.Method("post"),
				g.Action(flow.RouteValidateEmail),
				g.Class("space-y-4"),
				components.Field("verificationCode", "Verification Code",
					g.Name("code"),
					g.Placeholder("123456"),
					cmp.Attr("pattern", "[0-9]{6}"),
					cmp.Attr("inputmode", "numeric"),
					cmp.Attr("maxlength", strconv.Itoa(verification.CodeLength)),
					cmp.Attr("autocomplete", "one-time-code"),
					g.Required(),
				),
				components.Hint("Enter the 6-digit verification code that was sent to your email address."),
				components.SubmitButton("Verify Code"),
			),
			g.Div(
				g.Class("mt-4"),
				cmp.Attr("hx-ext", "ws"),
				cmp.Attr("ws-connect", flow.RouteCountdown),
				components.ResendControl(flow.RouteResendCode, data.Resend),
			),
		),
		components.FooterLink("", flow.RouteForgotPassword, "← Back to reset request"),
	)
}
