package app

import "fmt"

// Output width bounds. The -width flag and the session output_width setting
// are held to the same range.
const (
	MinWidth = 40
	MaxWidth = 240
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath points at a session defaults file or directory. Empty
	// means no defaults are loaded.
	ConfigPath string

	// RawArgs is the full original argument list. The option resolver
	// picks the option arguments out of it and skips the rest.
	RawArgs []string

	// ListOnly prints the option listing instead of resolving a run.
	ListOnly bool

	// Width fixes the output width. 0 auto-detects the terminal width,
	// falling back to a default when detection fails.
	Width int

	NoColor   bool
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Width != 0 && (cfg.Width < MinWidth || cfg.Width > MaxWidth) {
		return nil, fmt.Errorf("width must be between %d and %d, or 0 for auto-detection", MinWidth, MaxWidth)
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
