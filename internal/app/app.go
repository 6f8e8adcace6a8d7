package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/aoc2023/internal/config"
	"github.com/vk/aoc2023/internal/ctxlog"
	"github.com/vk/aoc2023/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	loader   config.Loader
	config   *Config
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. When no modules are given, every puzzle compiled
// into the binary is registered.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	level, err := ParseLogLevel(appConfig.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := newLogger(level, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All puzzle modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		loader:   loader,
		config:   appConfig,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// listPuzzles prints every registered puzzle with its description.
func (a *App) listPuzzles() error {
	for _, name := range a.registry.Names() {
		p, _ := a.registry.Lookup(name)
		if _, err := fmt.Fprintf(a.outW, "%s\t%d part(s)\t%s\n", name, len(p.Parts), p.Description); err != nil {
			return err
		}
	}
	return nil
}
