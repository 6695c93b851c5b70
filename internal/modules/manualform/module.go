package manualform

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/handlers"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/internal/registry"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/sink"
)

// Name is the variant name; it is also the registry key prefix.
const Name = "manual"

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Renderer         rendering.Renderer
	Sink             sink.Sink
	SubmitMiddleware []echo.MiddlewareFunc
}

// Module serves the sign-in form validated by a hand-written function.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string { return Name }

// NavLink implements module.Navigable.
func (m *Module) NavLink() (string, string) {
	return "/" + Name, "Manual validation"
}

// Register publishes the validator for the CLI and other modules.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, registry.ValidatorKey(Name), Validator)
	return nil
}

// Boot mounts the form routes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting manual form module")
	handler := handlers.NewFormHandler(handlers.FormOptions{
		Name:      Name,
		Title:     "Manual validation",
		BasePath:  "/" + Name,
		Validator: registry.MustGet(reg, registry.ValidatorKey(Name)),
		Template:  SignInForm,
		Sink:      m.deps.Sink,
		Renderer:  m.deps.Renderer,
	})
	handler.Mount(g, m.deps.SubmitMiddleware...)
	return nil
}
