package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator around v, or a fresh validator when v is nil.
func NewValidator(v *validator.Validate) *CustomValidator {
	if v == nil {
		v = validator.New()
	}
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// The form DTOs below only bound field sizes. Whether a value is acceptable
// for its step is decided by the flow controller, which also produces the
// user-facing notification.

// SignUpForm is the payload of POST /signup.
type SignUpForm struct {
	FullName     string `form:"full_name" validate:"max=200"`
	Email        string `form:"email" validate:"max=320"`
	Password     string `form:"password" validate:"max=1024"`
	AgreeToTerms bool   `form:"agree_to_terms"`
}

// SignInForm is the payload of POST /signin.
type SignInForm struct {
	Email    string `form:"email" validate:"max=320"`
	Password string `form:"password" validate:"max=1024"`
}

// ForgotPasswordForm is the payload of POST /forgot-password.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"max=320"`
}

// VerifyCodeForm is the payload of POST /validate-email. It has no length
// bound: longer input is clamped to six characters, not refused.
type VerifyCodeForm struct {
	Code string `form:"code"`
}

// ResetPasswordForm is the payload of POST /reset-password and of the
// strength fragment endpoint.
type ResetPasswordForm struct {
	Password        string `form:"password" validate:"max=1024"`
	ConfirmPassword string `form:"confirm_password" validate:"max=1024"`
}
