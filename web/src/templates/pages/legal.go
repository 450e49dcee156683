package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func legal(heading string, paragraphs ...string) cmp.Node {
	return g.Div(
		g.Class("max-w-2xl space-y-4"),
		g.H1(g.Class("text-3xl font-bold"), cmp.Text(heading)),
		cmp.Map(paragraphs, func(p string) cmp.Node {
			return g.P(g.Class("text-slate-600"), cmp.Text(p))
		}),
		g.A(g.Href(flow.RouteSignUp), g.Class("underline text-sm"), cmp.Text("Back to sign up")),
	)
}

// Terms is the placeholder terms of service.
func Terms() cmp.Node {
	return legal("Terms of Service",
		"By creating an account you agree to use Acme Inc services in accordance with applicable law.",
		"This is a template. Replace this text with your own terms before going live.",
	)
}

// Privacy is the placeholder privacy policy.
func Privacy() cmp.Node {
	return legal("Privacy Policy",
		"Acme Inc only processes the information you enter in these forms to provide the service.",
		"This is a template. Replace this text with your own policy before going live.",
	)
}
