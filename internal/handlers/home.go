package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/view"
)

// Link is an entry on the index page.
type Link struct {
	Href  string
	Title string
}

// HomeHandler renders the index page linking to each form variant.
type HomeHandler struct {
	renderer rendering.Renderer
	links    []Link
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer rendering.Renderer, links []Link) *HomeHandler {
	return &HomeHandler{renderer: renderer, links: links}
}

// HomeGet handles GET /.
func (hh *HomeHandler) HomeGet(c echo.Context) error {
	content := h.Div(
		h.Class("container"),
		h.H1(g.Text("Sign-in form variants")),
		h.Ul(g.Map(hh.links, func(l Link) g.Node {
			return h.Li(h.A(h.Href(l.Href), g.Text(l.Title)))
		})),
	)
	return hh.renderer.RenderPage(c, http.StatusOK, view.Base("", content))
}
