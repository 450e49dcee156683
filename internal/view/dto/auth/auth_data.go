package auth

import "github.com/nfrund/authflow/internal/password"

// SignUpData re-populates the sign-up form after a refused submission.
type SignUpData struct {
	FullName     string
	Email        string
	AgreeToTerms bool
}

// SignInData carries a pre-filled email to the sign-in form.
type SignInData struct {
	Email string
}

// ForgotPasswordData carries a pre-filled email to the request form.
type ForgotPasswordData struct {
	Email string
}

// ValidateEmailData is what the validate-email page shows.
type ValidateEmailData struct {
	Email string
	// Resend is the initial state of the resend control.
	Resend ResendData
}

// ResendData drives the resend control label and its disabled state.
type ResendData struct {
	Remaining int
	Resending bool
}

// Disabled reports whether the resend button must not be clicked.
func (r ResendData) Disabled() bool {
	return r.Remaining > 0 || r.Resending
}

// ResetPasswordData is what the set-new-password page shows.
type ResetPasswordData struct {
	Email    string
	Strength StrengthData
}

// StrengthData drives the live strength checklist.
type StrengthData struct {
	Result password.Result
	// Confirming is true once the confirmation field holds any input.
	Confirming bool
}

// ResetCompleteData drives the completion page.
type ResetCompleteData struct {
	// Next is where the browser goes once DelaySeconds have elapsed.
	Next         string
	DelaySeconds int
}
