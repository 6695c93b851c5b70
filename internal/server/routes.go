package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/handlers"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/web"
)

// RegisterRoutes runs the module lifecycle (Register, then Boot) and mounts
// the index and health routes.
func (s *Server) RegisterRoutes() error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	var links []handlers.Link
	for _, m := range s.modules {
		slog.Debug("Booting module", "module", m.Name())
		if err := m.Boot(s.ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		if n, ok := m.(module.Navigable); ok {
			href, title := n.NavLink()
			links = append(links, handlers.Link{Href: href, Title: title})
		}
	}

	homeHandler := handlers.NewHomeHandler(s.renderer, links)
	s.E.GET("/", homeHandler.HomeGet)
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return nil
}
