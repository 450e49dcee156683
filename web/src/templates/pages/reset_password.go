package pages

import (
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ResetPassword is the set-new-password form. Every input is posted to the
// strength endpoint, which swaps the checklist and the submit button.
func ResetPassword(data auth.ResetPasswordData) cmp.Node {
	return g.Div(
		components.Card(
			g.Form(
				g.Method("post"),
				g.Action(flow.RouteResetPassword),
				g.Class("space-y-4"),
				hx.Post(flow.RouteStrength),
				hx.Trigger("input"),
				hx.Target("#"+components.StrengthID),
				hx.Swap("outerHTML"),
				components.Field("password", "New Password",
					g.Type("password"), g.Name("password"), g.Placeholder("••••••••"), g.Required()),
				components.Hint("Meet at least 4 of the 5 rules below"),
				components.Field("confirmPassword", "Confirm Password",
					g.Type("password"), g.Name("confirm_password"), g.Placeholder("••••••••"), g.Required()),
				components.StrengthChecklist(data.Strength),
			),
		),
		components.FooterLink("Remember your password?", flow.RouteSignIn, "Sign in"),
	)
}

// ResetComplete confirms the reset and moves on after a short delay.
func ResetComplete(data auth.ResetCompleteData) cmp.Node {
	return g.Div(
		components.Card(
			g.Div(
				g.Class("text-center space-y-2"),
				g.H3(g.Class("text-lg font-medium"), cmp.Text("Password reset successful")),
				g.P(g.Class("text-sm text-slate-500"), cmp.Text("Redirecting you to sign in...")),
			),
		),
		components.FooterLink("", data.Next, "Continue to sign in"),
	)
}
