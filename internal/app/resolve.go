package app

import (
	"context"
	"fmt"

	"github.com/vk/benchgridgo/internal/ctxlog"
	"github.com/vk/benchgridgo/internal/options"
	"github.com/vk/benchgridgo/internal/runcfg"
	"github.com/vk/benchgridgo/internal/session"
)

// Resolve turns session defaults and command-line option arguments into a
// run configuration. Defaults resolve first, so explicit arguments
// accumulate after them. It is separate from Run so tests can exercise
// resolution without the reporting output.
func (a *App) Resolve(ctx context.Context) (*runcfg.Config, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	args, err := a.defaultArgs(ctx)
	if err != nil {
		return nil, err
	}
	args = append(args, a.config.RawArgs...)

	cfg, err := options.Resolve(ctx, args, a.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve options: %w", err)
	}
	return cfg, nil
}

// defaultArgs loads session defaults, keeps their settings for later, and
// renders their selections as resolver arguments. Selections under keys no
// category claims are dropped with a warning; the command line gets the
// same tolerance from the resolver itself, silently.
func (a *App) defaultArgs(ctx context.Context) ([]string, error) {
	if a.config.ConfigPath == "" {
		return nil, nil
	}

	defaults, err := session.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session defaults: %w", err)
	}
	a.settings = defaults.Settings

	var args []string
	for _, arg := range defaults.Args() {
		if !a.registry.IsOptionArg(arg) {
			a.logger.Warn("Ignoring unknown option key from session defaults.", "arg", arg)
			continue
		}
		args = append(args, arg)
	}
	a.logger.Debug("Session defaults applied.", "selections", len(args))
	return args, nil
}
