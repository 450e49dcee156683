package flow

import (
	"fmt"

	"github.com/nfrund/authflow/internal/domain"
)

func info(title, description string) domain.Notification {
	return domain.Notification{Title: title, Description: description, Severity: domain.SeverityDefault}
}

func failure(title, description string) domain.Notification {
	return domain.Notification{Title: title, Description: description, Severity: domain.SeverityDestructive}
}

var (
	notifyInvalidRequest = failure("Invalid request", "Please start the password reset process again.")

	notifyInvalidEmail = failure("Invalid email", "Please enter a valid email address.")
	notifyCodeSent     = info("Check your email", "We've sent you a verification code.")
	notifyRequestFail  = failure("Something went wrong", "We couldn't send a verification code. Please try again.")

	notifyVerified           = info("Verification successful", "You can now reset your password.")
	notifyVerificationFailed = failure("Verification failed", "The code you entered is invalid. Please try again.")

	notifyResent     = info("Verification code resent", "Please check your email for a new code.")
	notifyResendFail = failure("Something went wrong", "We couldn't resend the verification code. Please try again.")

	notifyMismatch     = failure("Passwords don't match", "Please ensure both passwords match.")
	notifyWeak         = failure("Password too weak", "Use at least 4 of: 8+ characters, an uppercase letter, a lowercase letter, a number, a special character.")
	notifyResetDone    = info("Password reset successful", "Your password has been reset. You can now sign in with your new password.")
	notifyResetFailure = failure("Password reset failed", "We couldn't reset your password. Please try again.")

	notifyTerms        = failure("Please agree to terms", "You must agree to the terms and conditions to create an account.")
	notifyAccount      = info("Account created!", "We've created your account for you.")
	notifySignUpFail   = failure("Something went wrong", "Your sign up request failed. Please try again.")
	notifySignInFail   = failure("Sign in failed", "We couldn't sign you in. Please try again.")
	notifyInvalidLogin = failure("Invalid email or password", "Please check your details and try again.")
)

func notifyResendWait(seconds int) domain.Notification {
	return failure("Please wait", fmt.Sprintf("You can request a new code in %ds.", seconds))
}

func notifyResendBusy() domain.Notification {
	return failure("Please wait", "A new code is already on its way.")
}

func notifyInvalidField(description string) domain.Notification {
	return failure("Check your details", description)
}

func notifySignedIn(email string) domain.Notification {
	return info("Signed in", "Welcome back, "+email+".")
}
