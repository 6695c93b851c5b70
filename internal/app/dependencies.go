package app

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/signin/internal/config"
	"github.com/nfrund/signin/internal/logging"
	"github.com/nfrund/signin/internal/middleware"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/internal/modules/manualform"
	"github.com/nfrund/signin/internal/modules/schemaform"
	"github.com/nfrund/signin/internal/rendering"
	"github.com/nfrund/signin/internal/sink"
	"github.com/nfrund/signin/internal/storage"
	"github.com/samber/do/v2"
)

// NewInjector registers the application's services. Services are built
// lazily on first invocation.
func NewInjector(cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		c := do.MustInvoke[config.Provider](i)
		return logging.New(c.GetLogFormat(), c.GetLogLevel()), nil
	})
	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (storage.Reader, error) {
		return storage.NewOSStore(), nil
	})
	do.Provide(i, func(i do.Injector) (sink.Sink, error) {
		return sink.NewLogSink(do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) ([]module.Module, error) {
		c := do.MustInvoke[config.Provider](i)
		return NewModules(Dependencies{
			Renderer:         do.MustInvoke[rendering.Renderer](i),
			Sink:             do.MustInvoke[sink.Sink](i),
			Store:            do.MustInvoke[storage.Reader](i),
			SchemaFile:       c.GetSchemaFile(),
			SubmitMiddleware: []echo.MiddlewareFunc{middleware.RateLimiter(c.GetRateLimit())},
		}), nil
	})

	return i
}

// manualDeps creates the dependency struct for the manual form module.
func manualDeps(deps Dependencies) manualform.Dependencies {
	return manualform.Dependencies{
		Renderer:         deps.Renderer,
		Sink:             deps.Sink,
		SubmitMiddleware: deps.SubmitMiddleware,
	}
}

// schemaDeps creates the dependency struct for the schema form module.
func schemaDeps(deps Dependencies) schemaform.Dependencies {
	return schemaform.Dependencies{
		Renderer:         deps.Renderer,
		Sink:             deps.Sink,
		SubmitMiddleware: deps.SubmitMiddleware,
		Store:            deps.Store,
		SchemaFile:       deps.SchemaFile,
	}
}
