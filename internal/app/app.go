package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/gospec/internal/config"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/handlers"
	"github.com/specialistvlad/gospec/internal/hcl"
	"github.com/specialistvlad/gospec/internal/yamlspec"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loaders    []config.Loader
	handlers   *handlers.Handlers
	metrics    *prometheus.Registry
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own logger, handler registry and metrics
// registry. Without modules, the core modules are registered.
func NewApp(outW io.Writer, appConfig *Config, modules ...handlers.Module) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	h := handlers.New().Use(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules), "blocks", h.BlockNames())

	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		loaders:  []config.Loader{hcl.NewLoader(), yamlspec.NewLoader()},
		handlers: h,
		metrics:  prometheus.NewRegistry(),
	}
}

// Handlers returns the application's handler registry. This is primarily for testing.
func (a *App) Handlers() *handlers.Handlers {
	return a.handlers
}

// Metrics returns the registry the runner records into.
func (a *App) Metrics() *prometheus.Registry {
	return a.metrics
}
