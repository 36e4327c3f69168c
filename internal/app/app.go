package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/vcfconvert/internal/ctxlog"
	"github.com/specialistvlad/vcfconvert/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	now      func() time.Time
}

// NewApp is the constructor for the main application. Rendered output goes to
// outW; logs and the progress counter go to errW. When no modules are given
// the core modules are registered.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "renderers", reg.Names())

	if err := reg.Validate(ctx, cfg.Formats); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		now:      time.Now,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)
	defer a.logger.Debug("App.Run method finished.")

	switch a.config.Command {
	case CommandConvert:
		return a.convert(ctx)
	case CommandStats:
		return a.stats(ctx)
	default:
		return fmt.Errorf("unknown command %q", a.config.Command)
	}
}
