package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NotFound is shown for any unknown path.
func NotFound() cmp.Node {
	return g.Div(
		g.Class("text-center max-w-md"),
		g.H1(g.Class("text-6xl font-bold mb-4"), cmp.Text("404")),
		g.P(g.Class("text-xl text-slate-500 mb-8"), cmp.Text("Oops! We couldn't find the page you're looking for.")),
		g.A(
			g.Href(flow.RouteSignIn),
			g.Class("rounded-md bg-slate-900 px-4 py-2 text-sm font-medium text-white"),
			cmp.Text("Return to Sign In"),
		),
	)
}
