package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SignIn is the sign-in form and the completion target of the reset flow.
func SignIn(data auth.SignInData) cmp.Node {
	return g.Div(
		components.Card(
			g.Form(
				g.Method("post"),
				g.Action(flow.RouteSignIn),
				g.Class("space-y-4"),
				components.Field("email", "Email",
					g.Type("email"), g.Name("email"), g.Placeholder("name@example.com"), g.Value(data.Email), g.Required()),
				components.Field("password", "Password",
					g.Type("password"), g.Name("password"), g.Placeholder("••••••••"), g.Required()),
				g.Div(
					g.Class("text-right text-sm"),
					g.A(g.Href(flow.RouteForgotPassword), g.Class("underline"), cmp.Text("Forgot password?")),
				),
				components.SubmitButton("Sign in"),
			),
		),
		components.FooterLink("Don't have an account?", flow.RouteSignUp, "Sign up"),
	)
}
