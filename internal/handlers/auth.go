package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/countdown"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/handoff"
	"github.com/nfrund/authflow/internal/password"
	"github.com/nfrund/authflow/internal/rendering"
	"github.com/nfrund/authflow/internal/view"
	"github.com/nfrund/authflow/internal/view/dto/auth"
	"github.com/nfrund/authflow/web/src/templates/components"
	"github.com/nfrund/authflow/web/src/templates/layouts"
	"github.com/nfrund/authflow/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AuthHandler serves every step of the sign-up, sign-in and reset flows.
type AuthHandler struct {
	flow          *flow.Controller
	handoff       handoff.Factory
	renderer      rendering.Renderer
	redirectDelay time.Duration
	tick          time.Duration
}

// AuthOption configures an AuthHandler.
type AuthOption func(*AuthHandler)

// WithCountdownInterval sets the time between two countdown pushes.
func WithCountdownInterval(d time.Duration) AuthOption {
	return func(h *AuthHandler) { h.tick = d }
}

// NewAuthHandler creates a new AuthHandler. redirectDelay is how long the
// completion page is shown before the browser moves on to sign in.
func NewAuthHandler(ctl *flow.Controller, hf handoff.Factory, r rendering.Renderer, redirectDelay time.Duration, opts ...AuthOption) *AuthHandler {
	h := &AuthHandler{
		flow:          ctl,
		handoff:       hf,
		renderer:      r,
		redirectDelay: redirectDelay,
		tick:          countdown.DefaultInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *AuthHandler) env(c echo.Context) flow.Env {
	return flow.Env{Store: h.handoff.For(c), Notify: view.NewFlashNotifier(c)}
}

// page renders an auth page inside the two-pane layout.
func (h *AuthHandler) page(c echo.Context, status int, title, subtitle string, content cmp.Node, head ...cmp.Node) error {
	flashes := view.GetFlashData(c)
	return h.renderer.RenderPage(c, status, layouts.AuthLayout(title, subtitle, flashes, content, head...))
}

// --- Sign up ---

// SignUpGet renders the registration page (GET /signup).
func (h *AuthHandler) SignUpGet(c echo.Context) error {
	data := auth.SignUpData{Email: view.FormEmail(c)}
	return h.page(c, http.StatusOK, "Create an account", "Enter your information to get started", pages.SignUp(data))
}

// SignUpPost handles the registration form. The user stays on the page
// whatever the outcome.
func (h *AuthHandler) SignUpPost(c echo.Context) error {
	var form SignUpForm
	ok, err := bindForm(c, &form)
	if err != nil {
		return err
	}
	if ok {
		req := domain.SignUpRequest{
			FullName:     form.FullName,
			Email:        form.Email,
			Password:     form.Password,
			AgreeToTerms: form.AgreeToTerms,
		}
		if _, err := h.flow.SignUp(c.Request().Context(), h.env(c), req); err != nil {
			return err
		}
	}
	view.SetFormEmail(c, form.Email)
	return redirect(c, flow.RouteSignUp)
}

// --- Sign in ---

// SignInGet renders the sign-in page (GET /signin).
func (h *AuthHandler) SignInGet(c echo.Context) error {
	data := auth.SignInData{Email: view.FormEmail(c)}
	return h.page(c, http.StatusOK, "Welcome back", "Sign in to your account", pages.SignIn(data))
}

// SignInPost handles the sign-in form.
func (h *AuthHandler) SignInPost(c echo.Context) error {
	var form SignInForm
	ok, err := bindForm(c, &form)
	if err != nil {
		return err
	}
	if ok {
		if _, err := h.flow.SignIn(c.Request().Context(), h.env(c), form.Email, form.Password); err != nil {
			return err
		}
	}
	view.SetFormEmail(c, form.Email)
	return redirect(c, flow.RouteSignIn)
}

// --- Request reset ---

// ForgotPasswordGet renders the reset request page (GET /forgot-password).
func (h *AuthHandler) ForgotPasswordGet(c echo.Context) error {
	data := auth.ForgotPasswordData{Email: view.FormEmail(c)}
	return h.page(c, http.StatusOK, "Reset your password", "Enter your email and we'll send you a verification code", pages.ForgotPassword(data))
}

// ForgotPasswordPost starts the reset flow.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var form ForgotPasswordForm
	ok, err := bindForm(c, &form)
	if err != nil {
		return err
	}
	next := flow.StepRequestEmail
	if ok {
		if next, err = h.flow.RequestReset(c.Request().Context(), h.env(c), form.Email); err != nil {
			return err
		}
	}
	if next == flow.StepRequestEmail {
		view.SetFormEmail(c, form.Email)
	}
	return redirect(c, next.Route())
}

// --- Validate identity ---

// ValidateEmailGet renders the code entry page (GET /validate-email). A
// fresh visit restarts the resend countdown; a redirect back from an action
// on this page keeps it running.
func (h *AuthHandler) ValidateEmailGet(c echo.Context) error {
	ctx := c.Request().Context()
	enter := h.flow.EnterValidateIdentity
	if view.TakeResume(c) {
		enter = h.flow.ResumeValidateIdentity
	}
	v, step, err := enter(ctx, h.env(c))
	if err != nil {
		return err
	}
	if step != flow.StepValidateIdentity {
		return redirect(c, step.Route())
	}
	data := auth.ValidateEmailData{
		Email:  v.Email,
		Resend: auth.ResendData{Remaining: v.Remaining, Resending: v.Resending},
	}
	return h.page(c, http.StatusOK, "Verify your identity", pages.ValidateEmailSubtitle(v.Email), pages.ValidateEmail(data))
}

// ValidateEmailPost checks the submitted code.
func (h *AuthHandler) ValidateEmailPost(c echo.Context) error {
	var form VerifyCodeForm
	ok, err := bindForm(c, &form)
	if err != nil {
		return err
	}
	next := flow.StepValidateIdentity
	if ok {
		if next, err = h.flow.VerifyCode(c.Request().Context(), h.env(c), form.Code); err != nil {
			return err
		}
	}
	if next == flow.StepValidateIdentity {
		view.MarkResume(c)
	}
	return redirect(c, next.Route())
}

// ResendCodePost asks for a new code (POST /validate-email/resend).
func (h *AuthHandler) ResendCodePost(c echo.Context) error {
	next, err := h.flow.ResendCode(c.Request().Context(), h.env(c))
	if err != nil {
		return err
	}
	if next == flow.StepValidateIdentity {
		view.MarkResume(c)
	}
	return redirect(c, next.Route())
}

// --- Set new password ---

// ResetPasswordGet renders the new password form (GET /reset-password).
func (h *AuthHandler) ResetPasswordGet(c echo.Context) error {
	email, step, err := h.flow.EnterSetNewPassword(c.Request().Context(), h.env(c))
	if err != nil {
		return err
	}
	if step != flow.StepSetNewPassword {
		return redirect(c, step.Route())
	}
	data := auth.ResetPasswordData{
		Email:    email,
		Strength: auth.StrengthData{Result: password.Evaluate("", "")},
	}
	return h.page(c, http.StatusOK, "Set new password", "Create a new password for your account", pages.ResetPassword(data))
}

// ResetPasswordPost sets the new password. On success the completion page
// is shown and the browser moves on to sign in after the redirect delay.
func (h *AuthHandler) ResetPasswordPost(c echo.Context) error {
	var form ResetPasswordForm
	ok, err := bindForm(c, &form)
	if err != nil {
		return err
	}
	next := flow.StepSetNewPassword
	if ok {
		if next, err = h.flow.ResetPassword(c.Request().Context(), h.env(c), form.Password, form.ConfirmPassword); err != nil {
			return err
		}
	}
	if next != flow.StepComplete {
		return redirect(c, next.Route())
	}

	secs := int((h.redirectDelay + time.Second - 1) / time.Second)
	refresh := strconv.Itoa(secs) + ";url=" + next.Route()
	c.Response().Header().Set("Refresh", refresh)
	data := auth.ResetCompleteData{Next: next.Route(), DelaySeconds: secs}
	return h.page(c, http.StatusOK, "Password reset", "", pages.ResetComplete(data),
		g.Meta(cmp.Attr("http-equiv", "refresh"), g.Content(refresh)))
}

// StrengthPost renders the strength checklist for the submitted pair
// (POST /reset-password/strength). It is called on every keystroke.
func (h *AuthHandler) StrengthPost(c echo.Context) error {
	var form ResetPasswordForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	data := auth.StrengthData{
		Result:     password.Evaluate(form.Password, form.ConfirmPassword),
		Confirming: form.ConfirmPassword != "",
	}
	return h.renderer.RenderPage(c, http.StatusOK, components.StrengthChecklist(data))
}
