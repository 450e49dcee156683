package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ForgotPassword asks for the address the verification code is sent to.
func ForgotPassword(data auth.ForgotPasswordData) cmp.Node {
	return g.Div(
		components.Card(
			g.Form(
				g.Method("post"),
				g.Action(flow.RouteForgotPassword),
				g.Class("space-y-4"),
				components.Field("email", "Email",
					g.Type("email"), g.Name("email"), g.Placeholder("name@example.com"), g.Value(data.Email), g.Required()),
				components.Hint("We'll send you a verification code. If you don't see it, check your spam folder."),
				components.SubmitButton("Send verification code"),
			),
		),
		components.FooterLink("", flow.RouteSignIn, "← Back to sign in"),
	)
}
