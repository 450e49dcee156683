package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nfrund/authflow/internal/countdown"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/logging"
	"github.com/nfrund/authflow/internal/password"
	"github.com/nfrund/authflow/internal/pubsub"
	"github.com/nfrund/authflow/internal/verification"
)

// Transition is published every time an action moves a user to another step.
type Transition struct {
	From  Step      `json:"from"`
	To    Step      `json:"to"`
	Email string    `json:"email,omitempty"`
	At    time.Time `json:"at"`
}

// TransitionEvent is the topic every Transition is published on.
var TransitionEvent = pubsub.NewEvent[Transition]("authflow.transition")

// Env carries the collaborators scoped to one request.
type Env struct {
	Store  domain.HandoffStore
	Notify domain.Notifier
}

// NotificationObserver is told about every notification the controller emits.
type NotificationObserver interface {
	ObserveNotification(severity string)
}

// ValidateView is what the validate-email step needs to render.
type ValidateView struct {
	Email     string
	Remaining int
	Resending bool
}

// Controller implements the flow operations. It is safe for concurrent use;
// the only state it owns is the set of resends currently in flight.
type Controller struct {
	backend   domain.Backend
	publisher pubsub.Publisher
	observer  NotificationObserver
	validate  *validator.Validate
	now       func() time.Time
	cooldown  time.Duration

	// inflight holds the reset flow ids with a resend call in progress.
	inflight sync.Map
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher publishes a Transition for every successful action.
func WithPublisher(p pubsub.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithObserver reports every notification to o.
func WithObserver(o NotificationObserver) Option {
	return func(c *Controller) { c.observer = o }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithCooldown sets how long the resend control stays disabled.
func WithCooldown(d time.Duration) Option {
	return func(c *Controller) { c.cooldown = d }
}

// WithValidator shares an existing validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(c *Controller) { c.validate = v }
}

// New creates a Controller backed by b.
func New(b domain.Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:  b,
		now:      time.Now,
		cooldown: countdown.DefaultDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.validate == nil {
		c.validate = validator.New()
	}
	return c
}

// RequestReset starts the reset flow for email.
func (c *Controller) RequestReset(ctx context.Context, env Env, email string) (Step, error) {
	email = strings.TrimSpace(email)
	if err := c.validate.Var(email, "required,email"); err != nil {
		c.notify(env, notifyInvalidEmail)
		return StepRequestEmail, nil
	}

	if err := c.backend.RequestPasswordReset(ctx, email); err != nil {
		logging.FromContext(ctx).Warn("Password reset request failed", "email", email, "error", err)
		c.notify(env, notifyRequestFail)
		return StepRequestEmail, nil
	}

	if err := env.Store.Set(ctx, domain.ResetEmailKey, email); err != nil {
		return StepRequestEmail, fmt.Errorf("store handoff: %w", err)
	}
	if err := env.Store.Set(ctx, domain.ResetFlowKey, uuid.NewString()); err != nil {
		return StepRequestEmail, fmt.Errorf("store handoff: %w", err)
	}
	if _, err := c.restartCountdown(ctx, env); err != nil {
		return StepRequestEmail, err
	}
	c.notify(env, notifyCodeSent)
	c.publish(ctx, StepRequestEmail, StepValidateIdentity, email)
	return StepValidateIdentity, nil
}

// EnterValidateIdentity is called when the validate-email step is shown.
// Without a handoff record the user is sent back to the request step.
// Otherwise the resend countdown restarts from the full cooldown.
func (c *Controller) EnterValidateIdentity(ctx context.Context, env Env) (ValidateView, Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return ValidateView{}, StepRequestEmail, err
	}

	deadline, err := c.restartCountdown(ctx, env)
	if err != nil {
		return ValidateView{}, StepValidateIdentity, err
	}
	resending, err := c.resending(ctx, env, email)
	if err != nil {
		return ValidateView{}, StepValidateIdentity, err
	}
	return ValidateView{
		Email:     email,
		Remaining: countdown.Remaining(deadline, c.now()),
		Resending: resending,
	}, StepValidateIdentity, nil
}

// ResumeValidateIdentity shows the validate-email step again after an action
// taken on it. The countdown keeps running instead of restarting.
func (c *Controller) ResumeValidateIdentity(ctx context.Context, env Env) (ValidateView, Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return ValidateView{}, StepRequestEmail, err
	}
	remaining, err := c.resendRemaining(ctx, env)
	if err != nil {
		return ValidateView{}, StepValidateIdentity, err
	}
	resending, err := c.resending(ctx, env, email)
	if err != nil {
		return ValidateView{}, StepValidateIdentity, err
	}
	return ValidateView{Email: email, Remaining: remaining, Resending: resending}, StepValidateIdentity, nil
}

// VerifyCode checks the shape of raw after clamping it to six characters.
func (c *Controller) VerifyCode(ctx context.Context, env Env, raw string) (Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return StepRequestEmail, err
	}

	code := verification.Clamp(raw)
	if err := verification.Validate(code); err != nil {
		c.notify(env, notifyVerificationFailed)
		return StepValidateIdentity, nil
	}

	if err := c.backend.VerifyCode(ctx, email, code); err != nil {
		logging.FromContext(ctx).Warn("Code verification failed", "email", email, "error", err)
		c.notify(env, notifyVerificationFailed)
		return StepValidateIdentity, nil
	}

	c.notify(env, notifyVerified)
	c.publish(ctx, StepValidateIdentity, StepSetNewPassword, email)
	return StepSetNewPassword, nil
}

// ResendCode asks the backend for a new code. It is refused while the
// countdown is running or another resend of the same reset flow is in flight.
// The countdown restarts once the call returns, whatever its outcome.
func (c *Controller) ResendCode(ctx context.Context, env Env) (Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return StepRequestEmail, err
	}

	remaining, err := c.resendRemaining(ctx, env)
	if err != nil {
		return StepValidateIdentity, err
	}
	if remaining > 0 {
		c.notify(env, notifyResendWait(remaining))
		return StepValidateIdentity, nil
	}

	id, err := c.flowID(ctx, env, email)
	if err != nil {
		return StepValidateIdentity, err
	}
	if _, busy := c.inflight.LoadOrStore(id, struct{}{}); busy {
		c.notify(env, notifyResendBusy())
		return StepValidateIdentity, nil
	}
	callErr := c.backend.ResendVerificationCode(ctx, email)
	c.inflight.Delete(id)

	if _, err := c.restartCountdown(ctx, env); err != nil {
		return StepValidateIdentity, err
	}
	if callErr != nil {
		logging.FromContext(ctx).Warn("Resending verification code failed", "email", email, "error", callErr)
		c.notify(env, notifyResendFail)
		return StepValidateIdentity, nil
	}
	c.notify(env, notifyResent)
	return StepValidateIdentity, nil
}

// ResendStatus reports the countdown state without notifying. ok is false
// when the session holds no handoff record.
func (c *Controller) ResendStatus(ctx context.Context, store domain.HandoffStore) (view ValidateView, ok bool, err error) {
	email, ok, err := store.Get(ctx, domain.ResetEmailKey)
	if err != nil || !ok || email == "" {
		return ValidateView{}, false, err
	}
	env := Env{Store: store}
	remaining, err := c.resendRemaining(ctx, env)
	if err != nil {
		return ValidateView{}, false, err
	}
	resending, err := c.resending(ctx, env, email)
	if err != nil {
		return ValidateView{}, false, err
	}
	return ValidateView{Email: email, Remaining: remaining, Resending: resending}, true, nil
}

// EnterSetNewPassword is called when the set-new-password step is shown.
func (c *Controller) EnterSetNewPassword(ctx context.Context, env Env) (string, Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return "", StepRequestEmail, err
	}
	return email, StepSetNewPassword, nil
}

// ResetPassword sets the new password. Submission is refused unless the
// password is strong and matches its confirmation. On success the handoff
// record is removed and the flow is complete.
func (c *Controller) ResetPassword(ctx context.Context, env Env, pw, confirm string) (Step, error) {
	email, ok, err := c.requireHandoff(ctx, env)
	if err != nil || !ok {
		return StepRequestEmail, err
	}

	result := password.Evaluate(pw, confirm)
	switch {
	case pw != confirm:
		c.notify(env, notifyMismatch)
		return StepSetNewPassword, nil
	case !result.CanSubmit():
		c.notify(env, notifyWeak)
		return StepSetNewPassword, nil
	}

	if err := c.backend.ResetPassword(ctx, email, pw); err != nil {
		logging.FromContext(ctx).Warn("Password reset failed", "email", email, "error", err)
		c.notify(env, notifyResetFailure)
		return StepSetNewPassword, nil
	}

	if err := env.Store.Remove(ctx, domain.ResetEmailKey); err != nil {
		return StepSetNewPassword, fmt.Errorf("clear handoff: %w", err)
	}
	if err := env.Store.Remove(ctx, domain.ResendAvailableAtKey); err != nil {
		return StepSetNewPassword, fmt.Errorf("clear countdown: %w", err)
	}
	if err := env.Store.Remove(ctx, domain.ResetFlowKey); err != nil {
		return StepSetNewPassword, fmt.Errorf("clear handoff: %w", err)
	}
	c.notify(env, notifyResetDone)
	c.publish(ctx, StepSetNewPassword, StepComplete, email)
	return StepComplete, nil
}

// SignUp creates an account. The user stays on the sign-up step whatever
// the outcome.
func (c *Controller) SignUp(ctx context.Context, env Env, req domain.SignUpRequest) (Step, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	switch {
	case req.FullName == "":
		c.notify(env, notifyInvalidField("Please enter your full name."))
		return StepSignUp, nil
	case c.validate.Var(req.Email, "required,email") != nil:
		c.notify(env, notifyInvalidEmail)
		return StepSignUp, nil
	case utf8.RuneCountInString(req.Password) < password.MinLength:
		c.notify(env, notifyInvalidField("Password must be at least 8 characters long."))
		return StepSignUp, nil
	case !req.AgreeToTerms:
		c.notify(env, notifyTerms)
		return StepSignUp, nil
	}

	if err := c.backend.SignUp(ctx, req); err != nil {
		logging.FromContext(ctx).Warn("Sign up failed", "email", req.Email, "error", err)
		c.notify(env, notifySignUpFail)
		return StepSignUp, nil
	}
	c.notify(env, notifyAccount)
	c.publish(ctx, StepSignUp, StepSignUp, req.Email)
	return StepSignUp, nil
}

// SignIn authenticates against the backend.
func (c *Controller) SignIn(ctx context.Context, env Env, email, pw string) (Step, error) {
	email = strings.TrimSpace(email)
	if c.validate.Var(email, "required,email") != nil || pw == "" {
		c.notify(env, notifyInvalidLogin)
		return StepSignIn, nil
	}

	if err := c.backend.SignIn(ctx, email, pw); err != nil {
		logging.FromContext(ctx).Warn("Sign in failed", "email", email, "error", err)
		c.notify(env, notifySignInFail)
		return StepSignIn, nil
	}
	c.notify(env, notifySignedIn(email))
	c.publish(ctx, StepSignIn, StepSignIn, email)
	return StepSignIn, nil
}

// requireHandoff returns the handoff email. When the record is missing the
// user is notified exactly once and ok is false.
func (c *Controller) requireHandoff(ctx context.Context, env Env) (email string, ok bool, err error) {
	email, ok, err = env.Store.Get(ctx, domain.ResetEmailKey)
	if err != nil {
		return "", false, fmt.Errorf("read handoff: %w", err)
	}
	if !ok || email == "" {
		c.notify(env, notifyInvalidRequest)
		return "", false, nil
	}
	return email, true, nil
}

func (c *Controller) restartCountdown(ctx context.Context, env Env) (time.Time, error) {
	deadline := countdown.Deadline(c.now(), c.cooldown)
	if err := env.Store.Set(ctx, domain.ResendAvailableAtKey, strconv.FormatInt(deadline.UnixMilli(), 10)); err != nil {
		return time.Time{}, fmt.Errorf("store countdown: %w", err)
	}
	return deadline, nil
}

// resendRemaining returns the seconds left on the countdown. A missing or
// unreadable deadline counts as expired.
func (c *Controller) resendRemaining(ctx context.Context, env Env) (int, error) {
	raw, ok, err := env.Store.Get(ctx, domain.ResendAvailableAtKey)
	if err != nil {
		return 0, fmt.Errorf("read countdown: %w", err)
	}
	if !ok {
		return 0, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return countdown.Remaining(time.UnixMilli(ms), c.now()), nil
}

// flowID returns the id of the reset flow held by the session. Records
// written without one fall back to the email.
func (c *Controller) flowID(ctx context.Context, env Env, email string) (string, error) {
	id, ok, err := env.Store.Get(ctx, domain.ResetFlowKey)
	if err != nil {
		return "", fmt.Errorf("read handoff: %w", err)
	}
	if !ok || id == "" {
		return "email:" + email, nil
	}
	return id, nil
}

func (c *Controller) resending(ctx context.Context, env Env, email string) (bool, error) {
	id, err := c.flowID(ctx, env, email)
	if err != nil {
		return false, err
	}
	_, busy := c.inflight.Load(id)
	return busy, nil
}

func (c *Controller) notify(env Env, n domain.Notification) {
	if env.Notify != nil {
		env.Notify.Notify(n)
	}
	if c.observer != nil {
		c.observer.ObserveNotification(string(n.Severity))
	}
}

func (c *Controller) publish(ctx context.Context, from, to Step, email string) {
	if c.publisher == nil {
		return
	}
	t := Transition{From: from, To: to, Email: email, At: c.now().UTC()}
	if err := pubsub.Publish(ctx, c.publisher, TransitionEvent, t); err != nil {
		logging.FromContext(ctx).Warn("Failed to publish transition", "from", from, "to", to, "error", err)
	}
}
