package view_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/authflow/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		c := view.AdaptGomponentToTempl(h.P(g.Text("a < b")))
		require.NoError(t, c.Render(context.Background(), &buf))
		assert.Equal(t, "<p>a &lt; b</p>", buf.String())
	})

	t.Run("nil node renders nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, view.AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
		assert.Empty(t, buf.String())
	})
}
