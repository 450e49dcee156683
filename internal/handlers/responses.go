package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/domain"
	"github.com/nfrund/authflow/internal/view"
)

var notifyMalformed = domain.Notification{
	Title:       "Check your details",
	Description: "One of the fields is too long.",
	Severity:    domain.SeverityDestructive,
}

// bindForm binds and validates the form into dst. A form that fails
// validation is reported to the user and ok is false; any other error is
// returned.
func bindForm(c echo.Context, dst any) (ok bool, err error) {
	if err := c.Bind(dst); err != nil {
		return false, err
	}
	if err := c.Validate(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			view.Notify(c, notifyMalformed)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// redirect answers a form post with a See Other to path.
func redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusSeeOther, path)
}
