package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/signin/internal/config"
	"github.com/nfrund/signin/internal/handlers"
	"github.com/nfrund/signin/internal/middleware"
	"github.com/nfrund/signin/internal/module"
	"github.com/nfrund/signin/internal/registry"
	"github.com/nfrund/signin/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry
	modules  []module.Module
	renderer rendering.Renderer

	// ctx scopes background work started by modules during Boot.
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Server from the services in the injector.
func New(i do.Injector) (*Server, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	// Resolving the logger installs it as the slog default.
	if _, err := do.Invoke[*slog.Logger](i); err != nil {
		return nil, fmt.Errorf("resolve logger: %w", err)
	}
	renderer, err := do.Invoke[rendering.Renderer](i)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}
	modules, err := do.Invoke[[]module.Module](i)
	if err != nil {
		return nil, fmt.Errorf("resolve modules: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(requestLogger())
	setupErrorHandling(e)

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(),
		modules:  modules,
		renderer: renderer,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// requestLogger logs one line per request through the request-scoped logger.
func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	})
}
