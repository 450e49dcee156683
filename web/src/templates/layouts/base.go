package layouts

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/authflow/internal/view"
	"github.com/nfrund/authflow/web/src/templates/components"
	cmp "maragu.dev/gomponents"
)

const headAssets = `<meta charset="utf-8">` +
	`<meta name="viewport" content="width=device-width, initial-scale=1">` +
	`<script src="https://cdn.tailwindcss.com"></script>` +
	`<script src="https://unpkg.com/htmx.org@2.0.4"></script>` +
	`<script src="https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"></script>` +
	`<link rel="stylesheet" href="/static/app.css">`

// Base is the HTML document shell. Queued notifications are rendered as
// toasts before content; head nodes are appended to the document head.
func Base(title string, flashes view.FlashData, content templ.Component, head ...cmp.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
		buf.WriteString(headAssets)
		buf.WriteString(`<title>`)
		buf.WriteString(templ.EscapeString(CalculateTitle(title)))
		buf.WriteString(`</title>`)
		if err := cmp.Group(head).Render(&buf); err != nil {
			return err
		}
		buf.WriteString(`</head><body class="min-h-screen bg-white text-slate-900 antialiased">`)
		if err := components.Toasts(flashes).Render(&buf); err != nil {
			return err
		}
		if err := content.Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteString(`</body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}
