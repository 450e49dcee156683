package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/flow"
	"github.com/nfrund/authflow/internal/logging"
	"github.com/nfrund/authflow/internal/rendering"
	"github.com/nfrund/authflow/internal/view"
	"github.com/nfrund/authflow/web/src/templates/layouts"
	"github.com/nfrund/authflow/web/src/templates/pages"
)

// PageHandler serves the pages outside the flows.
type PageHandler struct {
	renderer rendering.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(r rendering.Renderer) *PageHandler {
	return &PageHandler{renderer: r}
}

// Home sends visitors to the sign-in page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, flow.RouteSignIn)
}

// Terms renders the terms of service.
func (h *PageHandler) Terms(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Standalone("Terms of Service", view.GetFlashData(c), pages.Terms()))
}

// Privacy renders the privacy policy.
func (h *PageHandler) Privacy(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Standalone("Privacy Policy", view.GetFlashData(c), pages.Privacy()))
}

// NotFound renders the 404 page for any unknown path and logs the attempt.
func (h *PageHandler) NotFound(c echo.Context) error {
	logging.FromContext(c.Request().Context()).Error("404 Error: User attempted to access non-existent route", "path", c.Request().URL.Path)
	return h.renderer.RenderPage(c, http.StatusNotFound, layouts.Standalone("Page not found", view.FlashData{}, pages.NotFound()))
}

// Health reports that the process is serving.
func (h *PageHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
