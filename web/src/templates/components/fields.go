package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Field is a labelled input.
func Field(id, label string, input ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("space-y-2"),
		g.Label(g.For(id), g.Class("text-sm font-medium"), cmp.Text(label)),
		g.Input(append([]cmp.Node{
			g.ID(id),
			g.Class("w-full rounded-md border px-3 py-2 text-sm"),
		}, input...)...),
	)
}

// Hint is the muted help text under a field.
func Hint(text string) cmp.Node {
	return g.P(g.Class("text-xs text-slate-500"), cmp.Text(text))
}

// Card wraps a form.
func Card(children ...cmp.Node) cmp.Node {
	return g.Div(append([]cmp.Node{g.Class("p-6 shadow-sm border rounded-lg")}, children...)...)
}

// SubmitButton is the full-width primary action of a form.
func SubmitButton(label string, attrs ...cmp.Node) cmp.Node {
	return g.Button(append([]cmp.Node{
		g.Type("submit"),
		g.Class("w-full rounded-md bg-slate-900 px-4 py-2 text-sm font-medium text-white disabled:opacity-50"),
		cmp.Text(label),
	}, attrs...)...)
}

// FooterLink renders "prompt link" under a card.
func FooterLink(prompt, href, label string) cmp.Node {
	return g.Div(
		g.Class("mt-4 text-center text-sm text-slate-500"),
		cmp.If(prompt != "", cmp.Text(prompt+" ")),
		g.A(g.Href(href), g.Class("text-slate-900 underline"), cmp.Text(label)),
	)
}
