package view

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// StylesheetPath is where the server mounts web/static/signin.css.
const StylesheetPath = "/static/signin.css"

// CalculateTitle returns the document title for a page.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Sign In Forms"
	}
	return "Sign In Forms"
}

// Base wraps page content in the HTML document shell. The result is a templ
// component so it can flow through the universal renderer.
func Base(title string, content g.Node) templ.Component {
	return AdaptGomponentToTempl(c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Script(h.Src(htmxSrc)),
			h.Link(h.Rel("stylesheet"), h.Href(StylesheetPath)),
		},
		Body: []g.Node{content},
	}))
}
