// Package backend holds the remote side of the auth flows. There is no real
// identity provider behind this service: every call waits for a fixed delay,
// logs what a real backend would have received, and succeeds unless failures
// are forced.
package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/authflow/internal/domain"
)

// Simulated implements domain.Backend with artificial latency.
type Simulated struct {
	delay  time.Duration
	fail   bool
	logger *slog.Logger
}

// Option configures a Simulated backend.
type Option func(*Simulated)

// WithFailures makes every call return domain.ErrSimulatedFailure after the delay.
func WithFailures(fail bool) Option {
	return func(s *Simulated) { s.fail = fail }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulated) { s.logger = logger }
}

// NewSimulated creates a backend whose calls take delay to complete.
func NewSimulated(delay time.Duration, opts ...Option) *Simulated {
	s := &Simulated{delay: delay, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// call waits for the configured delay. A cancelled ctx aborts the wait and
// the call is reported as failed.
func (s *Simulated) call(ctx context.Context, op string, attrs ...any) error {
	s.logger.InfoContext(ctx, "Simulated backend call", append([]any{"op", op}, attrs...)...)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if s.fail {
		s.logger.WarnContext(ctx, "Simulated backend call failed", "op", op)
		return domain.ErrSimulatedFailure
	}
	return nil
}

// SignUp pretends to create an account. The password is never logged.
func (s *Simulated) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	return s.call(ctx, "sign_up", "full_name", req.FullName, "email", req.Email, "agree_to_terms", req.AgreeToTerms)
}

// SignIn pretends to authenticate a user.
func (s *Simulated) SignIn(ctx context.Context, email, _ string) error {
	return s.call(ctx, "sign_in", "email", email)
}

// RequestPasswordReset pretends to send a verification code to email.
func (s *Simulated) RequestPasswordReset(ctx context.Context, email string) error {
	return s.call(ctx, "request_password_reset", "email", email)
}

// ResendVerificationCode pretends to send a fresh verification code.
func (s *Simulated) ResendVerificationCode(ctx context.Context, email string) error {
	return s.call(ctx, "resend_verification_code", "email", email)
}

// VerifyCode pretends to check code. Any well-formed code is accepted
// because no code is ever issued.
func (s *Simulated) VerifyCode(ctx context.Context, email, code string) error {
	return s.call(ctx, "verify_code", "email", email, "code", code)
}

// ResetPassword pretends to store a new password for email.
func (s *Simulated) ResetPassword(ctx context.Context, email, _ string) error {
	return s.call(ctx, "reset_password", "email", email)
}
