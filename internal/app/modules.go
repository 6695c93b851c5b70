package app

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/internal/modules/manualform"
	"github.com/nfrund/signin/internal/modules/schemaform"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/sink"
	"github.com/nfrund/signin/internal/storage"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Renderer         rendering.Renderer
	Sink             sink.Sink
	Store            storage.Reader
	SchemaFile       string
	SubmitMiddleware []echo.MiddlewareFunc
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		manualform.New(manualDeps(deps)),
		schemaform.New(schemaDeps(deps)),
	}
}
