package components

import (
	"fmt"

	"github.com/nfrund/authflow/internal/view/dto/auth"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ResendID is the element replaced by every countdown push.
const ResendID = "resend-control"

// ResendLabel returns the text of the resend button.
func ResendLabel(r auth.ResendData) string {
	switch {
	case r.Resending:
		return "Resending..."
	case r.Remaining > 0:
		return fmt.Sprintf("Resend code in %ds", r.Remaining)
	default:
		return "Resend code"
	}
}

// ResendControl renders the resend form. It is disabled while the countdown
// runs or a resend is in flight.
func ResendControl(action string, r auth.ResendData) cmp.Node {
	return g.Form(
		g.ID(ResendID),
		g.Method("post"),
		g.Action(action),
		g.Class("text-center"),
		g.Button(
			g.Type("submit"),
			g.Class("text-xs text-slate-600 hover:text-slate-900 disabled:opacity-50"),
			cmp.If(r.Disabled(), g.Disabled()),
			cmp.Text(ResendLabel(r)),
		),
	)
}
