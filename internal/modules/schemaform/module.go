package schemaform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/form"
	"github.com/nfrund/signin/internal/form/schema"
	"github.com/nfrund/signin/internal/handlers"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/internal/registry"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/sink"
	"github.com/nfrund/signin/internal/storage"
)

// Name is the variant name; it is also the registry key prefix.
const Name = "schema"

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Renderer         rendering.Renderer
	Sink             sink.Sink
	SubmitMiddleware []echo.MiddlewareFunc
	// Store reads SchemaFile. Both are optional; without a file the built-in
	// SignInSchema is used.
	Store      storage.Reader
	SchemaFile string
}

// Module serves the sign-in form validated by a declarative schema.
type Module struct {
	module.BaseModule
	deps Dependencies
	live *schema.Live
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string { return Name }

// NavLink implements module.Navigable.
func (m *Module) NavLink() (string, string) {
	return "/" + Name, "Schema validation"
}

// Register loads the schema and publishes it as the variant's validator.
func (m *Module) Register(reg *registry.Registry) error {
	s := SignInSchema
	if m.deps.SchemaFile != "" {
		loaded, err := schema.LoadFile(context.Background(), m.deps.Store, m.deps.SchemaFile)
		if err != nil {
			return fmt.Errorf("schema form: %w", err)
		}
		s = loaded
		slog.Info("Loaded sign-in schema from file", "path", m.deps.SchemaFile)
	}
	m.live = schema.NewLive(s)
	registry.Set[form.Validator](reg, registry.ValidatorKey(Name), m.live)
	return nil
}

// Boot mounts the form routes and, when a schema file is configured, starts
// watching it for changes.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting schema form module")
	if m.deps.SchemaFile != "" {
		if err := m.live.Watch(ctx, m.deps.Store, m.deps.SchemaFile); err != nil {
			return fmt.Errorf("schema form: %w", err)
		}
	}
	handler := handlers.NewFormHandler(handlers.FormOptions{
		Name:      Name,
		Title:     "Schema validation",
		BasePath:  "/" + Name,
		Validator: registry.MustGet(reg, registry.ValidatorKey(Name)),
		Template:  SignInForm,
		Sink:      m.deps.Sink,
		Renderer:  m.deps.Renderer,
	})
	handler.Mount(g, m.deps.SubmitMiddleware...)
	return nil
}
