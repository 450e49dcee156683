// Package flow drives the sign-up, sign-in and multi-step password reset
// flows. It knows nothing about HTTP: every operation receives the
// request-scoped handoff store and notifier and returns the step the user
// should see next.
package flow

// Step is one screen of the authentication flows.
type Step string

const (
	StepSignUp           Step = "sign_up"
	StepSignIn           Step = "sign_in"
	StepRequestEmail     Step = "request_email"
	StepValidateIdentity Step = "validate_identity"
	StepSetNewPassword   Step = "set_new_password"
	StepComplete         Step = "complete"
	StepNotFound         Step = "not_found"
)

// Routes of the auth flows.
const (
	RouteSignIn         = "/signin"
	RouteSignUp         = "/signup"
	RouteForgotPassword = "/forgot-password"
	RouteValidateEmail  = "/validate-email"
	RouteResetPassword  = "/reset-password"
	RouteResendCode     = "/validate-email/resend"
	RouteCountdown      = "/validate-email/countdown"
	RouteStrength       = "/reset-password/strength"
	RouteTerms          = "/terms"
	RoutePrivacy        = "/privacy"
)

var stepRoutes = map[Step]string{
	StepSignUp:           RouteSignUp,
	StepSignIn:           RouteSignIn,
	StepRequestEmail:     RouteForgotPassword,
	StepValidateIdentity: RouteValidateEmail,
	StepSetNewPassword:   RouteResetPassword,
	StepComplete:         RouteSignIn,
}

// Route returns the path that renders s. StepNotFound has no route and
// returns the empty string.
func (s Step) Route() string {
	return stepRoutes[s]
}

// StepForRoute maps a request path back to its step. Completion shares the
// sign-in route and is reported as StepSignIn. Unknown paths are StepNotFound.
func StepForRoute(path string) Step {
	switch path {
	case RouteSignUp:
		return StepSignUp
	case RouteSignIn:
		return StepSignIn
	case RouteForgotPassword:
		return StepRequestEmail
	case RouteValidateEmail:
		return StepValidateIdentity
	case RouteResetPassword:
		return StepSetNewPassword
	default:
		return StepNotFound
	}
}

// Gated reports whether entering s requires a handoff record.
func (s Step) Gated() bool {
	return s == StepValidateIdentity || s == StepSetNewPassword
}
