// Package components holds the small gomponents building blocks shared by
// the auth pages.
package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Logo renders the Acme Inc mark and name. class is appended to the wrapper.
func Logo(class string) cmp.Node {
	return g.Div(
		g.Class("flex items-center gap-2 "+class),
		g.Div(
			g.Class("relative h-10 w-10 overflow-hidden rounded-lg bg-slate-900 flex items-center justify-center"),
			g.Div(g.Class("h-3 w-3 rounded-full bg-white")),
		),
		g.Span(g.Class("text-xl font-semibold"), cmp.Text("Acme Inc")),
	)
}
