package components

import (
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Toasts renders queued notifications. Nothing is rendered when there are none.
func Toasts(flashes view.FlashData) cmp.Node {
	if flashes.Empty() {
		return cmp.Group(nil)
	}
	return g.Div(
		g.ID("toasts"),
		g.Class("fixed top-4 right-4 z-50 flex flex-col gap-2 w-80"),
		cmp.Map(flashes.Messages, toast),
	)
}

func toast(n domain.Notification) cmp.Node {
	class := "rounded-md border p-4 shadow-lg bg-white"
	role := "status"
	if n.IsDestructive() {
		class = "rounded-md border p-4 shadow-lg bg-red-600 text-white"
		role = "alert"
	}
	return g.Div(
		g.Class(class),
		g.Role(role),
		cmp.Attr("data-severity", string(n.Severity)),
		g.P(g.Class("text-sm font-semibold"), cmp.Text(n.Title)),
		cmp.If(n.Description != "", g.P(g.Class("text-sm opacity-90"), cmp.Text(n.Description))),
	)
}
