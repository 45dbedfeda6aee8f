package layouts

import (
	"github.com/nfrund/signon/internal/view"
	"github.com/nfrund/signon/web/src/templates/partials"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Base wraps page content in the HTML document, with flash messages above it.
func Base(title string, flashes view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/login.css")),
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
		},
		Body: []g.Node{
			view.AdaptTemplToGomponent(partials.Flash(flashes)),
			content,
		},
	})
}
