package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for every way a step of the flow can refuse to advance.
var (
	// ErrInvalidEmail is returned when the submitted address is not a syntactically valid email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidCode is returned when a verification code is not exactly six decimal digits.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrPasswordMismatch is returned when the password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrWeakPassword is returned when fewer than four strength rules are satisfied.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrMissingHandoff is returned when a gated step is entered without a handoff record.
	ErrMissingHandoff = errors.New("password reset was not started in this session")

	// ErrTermsNotAccepted is returned when a sign-up is submitted without agreeing to the terms.
	ErrTermsNotAccepted = errors.New("terms of service not accepted")

	// ErrResendUnavailable is returned while the resend countdown is running or a resend is in flight.
	ErrResendUnavailable = errors.New("verification code resend is not available yet")

	// ErrSimulatedFailure is returned by the simulated backend when failures are forced.
	ErrSimulatedFailure = errors.New("simulated remote call failed")
)
