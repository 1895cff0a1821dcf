package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/benchgridgo/internal/app"
	"github.com/vk/benchgridgo/internal/helptext"
	"github.com/vk/benchgridgo/internal/logging"
	"github.com/vk/benchgridgo/internal/options"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Arguments of the form "key=value" whose key names an option category are
// kept away from the flag set (it would reject them) and reach the app
// untouched through the raw argument list, alongside every other argument.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	reg := options.NewRegistry()

	flagSet := flag.NewFlagSet("benchgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BenchGridGo - a command-line benchmark harness.

Usage:
  benchgridgo [flags] [category=value[,value...]] ...

Option arguments select what a run measures and reports. Keys are
case-insensitive, singular or plural, with or without a leading "--":

`)
		helptext.Render(logging.NewWriterLogger(output), reg, helptext.Options{})
		fmt.Fprint(output, "\nFlags:\n")
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a session defaults file or directory.")
	cFlag := flagSet.String("c", "", "Path to a session defaults file or directory (shorthand).")
	listFlag := flagSet.Bool("list", false, "Print the option listing and exit.")
	widthFlag := flagSet.Int("width", 0, "Output width in columns. 0 auto-detects the terminal width.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable styled output.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(flagArgs(reg, args)); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *widthFlag != 0 && (*widthFlag < app.MinWidth || *widthFlag > app.MaxWidth) {
		return nil, false, &ExitError{
			Code:    2,
			Message: fmt.Sprintf("invalid width: must be between %d and %d, or 0 for auto-detection", app.MinWidth, app.MaxWidth),
		}
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}
	slog.Debug("CLI parameter validation complete.", "configPath", configPath)

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		RawArgs:    args,
		ListOnly:   *listFlag,
		Width:      *widthFlag,
		NoColor:    *noColorFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// flagArgs strips option arguments out of args so the flag set only sees
// what it can parse.
func flagArgs(reg *options.Registry, args []string) []string {
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if reg.IsOptionArg(arg) {
			continue
		}
		kept = append(kept, arg)
	}
	return kept
}
