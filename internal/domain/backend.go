package domain

import "context"

// Backend is the remote side of the authentication flows. Every method may
// block and must honour ctx cancellation.
type Backend interface {
	SignUp(ctx context.Context, req SignUpRequest) error
	SignIn(ctx context.Context, email, password string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, password string) error
}
