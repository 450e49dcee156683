// Package pages holds the body of every auth page. Handlers place them in
// a layout.
package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// SignUp is the account creation form.
func SignUp(data auth.SignUpData) cmp.Node {
	return g.Div(
		components.Card(
			g.Form(
				g.Method("post"),
				g.Action(flow.RouteSignUp),
				g.Class("space-y-4"),
				components.Field("fullName", "Full Name",
					g.Name("full_name"), g.Placeholder("John Doe"), g.Value(data.FullName), g.Required()),
				components.Field("email", "Email",
					g.Type("email"), g.Name("email"), g.Placeholder("name@example.com"), g.Value(data.Email), g.Required()),
				components.Field("password", "Password",
					g.Type("password"), g.Name("password"), g.Placeholder("••••••••"), g.Required(), cmp.Attr("minlength", "8")),
				g.Div(
					g.Class("flex items-center space-x-2"),
					g.Input(g.Type("checkbox"), g.ID("agreeToTerms"), g.Name("agree_to_terms"), g.Value("true"),
						cmp.If(data.AgreeToTerms, g.Checked())),
					g.Label(
						g.For("agreeToTerms"),
						g.Class("text-sm font-medium"),
						cmp.Text("I agree to the "),
						g.A(g.Href(flow.RouteTerms), g.Class("underline"), cmp.Text("Terms of Service")),
						cmp.Text(" and "),
						g.A(g.Href(flow.RoutePrivacy), g.Class("underline"), cmp.Text("Privacy Policy")),
					),
				),
				components.SubmitButton("Create account"),
			),
		),
		components.FooterLink("Already have an account?", flow.RouteSignIn, "Sign in"),
	)
}
