package components

import (
	"strconv"

	"github.com/nfrund/authflow/internal/password"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// StrengthID is the element swapped by the strength fragment endpoint.
const StrengthID = "password-strength"

// StrengthChecklist renders the rule checklist, the match indicator and the
// submit button, which stays disabled until the form can be submitted.
func StrengthChecklist(data auth.StrengthData) cmp.Node {
	r := data.Result
	return g.Div(
		g.ID(StrengthID),
		g.Class("space-y-3"),
		g.Ul(
			g.Class("space-y-1 text-xs"),
			cmp.Map(r.Rules(), rule),
		),
		cmp.If(r.Label() != "",
			g.P(g.Class("text-xs font-medium"), cmp.Attr("data-score", scoreAttr(r)), cmp.Text("Strength: "+r.Label())),
		),
		cmp.If(data.Confirming, matchIndicator(r.Matches)),
		SubmitButton("Reset password", cmp.If(!r.CanSubmit(), g.Disabled())),
	)
}

func rule(r password.Rule) cmp.Node {
	mark, class := "○", "text-slate-500"
	if r.Satisfied {
		mark, class = "✓", "text-green-600"
	}
	return g.Li(
		g.Class(class),
		cmp.Attr("data-satisfied", boolAttr(r.Satisfied)),
		cmp.Text(mark+" "+r.Label),
	)
}

func matchIndicator(matches bool) cmp.Node {
	if matches {
		return g.P(g.Class("text-xs text-green-600"), cmp.Text("Passwords match"))
	}
	return g.P(g.Class("text-xs text-red-600"), cmp.Text("Passwords don't match"))
}

func scoreAttr(r password.Result) string {
	return strconv.Itoa(r.Score())
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
