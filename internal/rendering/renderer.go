// Package rendering writes templ and gomponents views to echo responses and
// to byte slices for fragments pushed over WebSockets.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/authflow/internal/logging"
)

// Renderer renders any supported component type.
type Renderer interface {
	// RenderComponent renders a component to bytes, for WebSocket pushes.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full response with the given status.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles templ.Component and anything with a
// Render(io.Writer) error method (gomponents.Node).
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements Renderer. The component is rendered into a buffer
// first so a failure can still become a 500.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	ctx := c.Request().Context()
	body, err := r.RenderComponent(ctx, component)
	if err != nil {
		logging.FromContext(ctx).Error("Failed to render page", "path", c.Request().URL.Path, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, component).
// The name is ignored; the component is passed as data.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	return r.render(c.Request().Context(), data, w)
}
