package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/benchgridgo/internal/console"
	"github.com/vk/benchgridgo/internal/ctxlog"
	"github.com/vk/benchgridgo/internal/diagnostics"
	"github.com/vk/benchgridgo/internal/helptext"
	"github.com/vk/benchgridgo/internal/runcfg"
)

// Run executes the main application logic based on the provided
// configuration: either the option listing, or resolution followed by a
// report of the effective selection.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListOnly {
		// The listing comes straight from the registry; session defaults
		// play no part in it and are not loaded.
		helptext.Render(a.console, a.registry, helptext.Options{Width: a.outputWidth()})
		return nil
	}

	cfg, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	a.report(cfg)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// outputWidth picks the effective width: the explicit flag wins, then the
// session setting, then the detected terminal width clamped into bounds,
// then the rendering default.
func (a *App) outputWidth() int {
	if a.config.Width > 0 {
		return a.config.Width
	}
	if a.settings.OutputWidth > 0 {
		return a.settings.OutputWidth
	}
	if width, ok := console.DetectWidth(a.outW); ok {
		if width < MinWidth {
			return MinWidth
		}
		if width > MaxWidth {
			return MaxWidth
		}
		return width
	}
	return helptext.DefaultWidth
}

// report prints the effective selection through the console sink.
func (a *App) report(cfg *runcfg.Config) {
	a.console.WriteLineInfo("Effective run configuration:")

	a.reportGroup("jobs", jobNames(cfg))
	a.reportGroup("columns", columnTitles(cfg))
	a.reportGroup("exporters", exporterNames(cfg))
	a.reportGroup("diagnosers", diagnoserNames(cfg))
	a.reportGroup("analysers", analyserNames(cfg))
	a.reportGroup("validators", validatorNames(cfg))

	total := len(cfg.Jobs()) + len(cfg.Columns()) + len(cfg.Exporters()) +
		len(cfg.Diagnosers()) + len(cfg.Analysers()) + len(cfg.Validators())
	a.console.WriteLineResult(fmt.Sprintf("Resolved %d option item(s).", total))
}

func (a *App) reportGroup(label string, names []string) {
	if len(names) == 0 {
		return
	}
	a.console.Write(fmt.Sprintf("  %-12s", label))
	a.console.WriteLine(strings.Join(names, ", "))
}

func jobNames(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Jobs()))
	for _, j := range cfg.Jobs() {
		names = append(names, j.ID)
	}
	return names
}

func columnTitles(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Columns()))
	for _, c := range cfg.Columns() {
		names = append(names, c.Title)
	}
	return names
}

func exporterNames(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Exporters()))
	for _, e := range cfg.Exporters() {
		names = append(names, e.ID)
	}
	return names
}

func diagnoserNames(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Diagnosers()))
	for _, d := range cfg.Diagnosers() {
		names = append(names, diagnostics.DisplayName(d))
	}
	return names
}

func analyserNames(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Analysers()))
	for _, an := range cfg.Analysers() {
		names = append(names, an.ID)
	}
	return names
}

func validatorNames(cfg *runcfg.Config) []string {
	names := make([]string, 0, len(cfg.Validators()))
	for _, v := range cfg.Validators() {
		names = append(names, v.ID)
	}
	return names
}
