package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/benchgridgo/internal/console"
	"github.com/vk/benchgridgo/internal/options"
	"github.com/vk/benchgridgo/internal/session"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	console  *console.Console
	registry *options.Registry
	config   *Config
	runID    string

	// settings holds session defaults once Resolve has loaded them.
	settings session.Settings
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, console sink
// and option registry.
func NewApp(outW io.Writer, config *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(config.LogLevel, config.LogFormat, outW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		console:  console.New(outW, config.NoColor),
		registry: options.NewRegistry(),
		config:   config,
		runID:    runID,
	}
}

// Registry returns the application's option registry. This is primarily for
// testing.
func (a *App) Registry() *options.Registry {
	return a.registry
}

// RunID returns the identifier assigned to this App instance.
func (a *App) RunID() string {
	return a.runID
}
