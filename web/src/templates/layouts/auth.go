package layouts

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/nfrund/authflow/internal/view"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// now is swapped in tests.
var now = time.Now

// AuthLayout places content in the right-hand form pane next to the brand
// pane shared by every auth page.
func AuthLayout(title, subtitle string, flashes view.FlashData, content cmp.Node, head ...cmp.Node) templ.Component {
	page := g.Div(
		g.Class("min-h-screen w-full flex"),
		brandPane(),
		g.Div(
			g.Class("w-full lg:w-1/2 flex items-center justify-center p-6 sm:p-12"),
			g.Div(
				g.Class("w-full max-w-md space-y-8"),
				g.Div(g.Class("flex lg:hidden mb-8 justify-center"), components.Logo("")),
				g.Div(
					g.Class("text-center lg:text-left space-y-2"),
					g.H1(g.Class("text-2xl font-bold tracking-tight"), cmp.Text(title)),
					cmp.If(subtitle != "", g.P(g.Class("text-slate-500"), cmp.Text(subtitle))),
				),
				content,
			),
		),
	)
	return Base(title, flashes, view.AdaptGomponentToTempl(page), head...)
}

func brandPane() cmp.Node {
	return g.Div(
		g.Class("hidden lg:flex lg:w-1/2 relative overflow-hidden bg-slate-900"),
		g.Div(
			g.Class("relative z-10 flex flex-col justify-between h-full p-12"),
			components.Logo("text-white"),
			g.Div(
				g.Class("max-w-md"),
				g.H2(g.Class("text-3xl font-bold text-white mb-6"), cmp.Text("Transform the way you work with our platform")),
				g.P(g.Class("text-white/80"), cmp.Text("Join thousands of professionals who have already upgraded their workflow.")),
			),
			g.Div(
				g.Class("text-sm text-white/60"),
				cmp.Text("© "+strconv.Itoa(now().Year())+" Acme Inc. All rights reserved."),
			),
		),
	)
}

// Standalone renders content centered on the page without the brand pane.
func Standalone(title string, flashes view.FlashData, content cmp.Node) templ.Component {
	page := g.Div(
		g.Class("min-h-screen flex flex-col items-center justify-center p-6"),
		components.Logo("mb-8"),
		content,
	)
	return Base(title, flashes, view.AdaptGomponentToTempl(page))
}
