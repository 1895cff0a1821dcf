package options

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/benchgridgo/internal/ctxlog"
	"github.com/vk/benchgridgo/internal/runcfg"
)

// Resolve maps raw command-line arguments onto a fresh run configuration.
//
// Each argument of the form "[--]key=value[,value...]" is matched against
// the registry: the key is normalized (case-insensitive, singular or
// plural, optional "--" prefix) and every comma-separated value is looked
// up independently, left to right. A single value "all" selects the
// category's entire aggregate. Arguments without '=' and arguments whose
// key names no category are skipped, so flags consumed by other layers pass
// through harmlessly.
//
// The first failed lookup aborts the call; no partial configuration is
// returned.
func Resolve(ctx context.Context, args []string, reg *Registry) (*runcfg.Config, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := runcfg.New()

	for _, arg := range args {
		if !strings.Contains(arg, "=") {
			continue
		}

		// Lower-casing the whole argument makes values case-insensitive
		// along with the key.
		key, rawValues, _ := strings.Cut(strings.ToLower(arg), "=")
		category, ok := reg.Category(NormalizeKey(key))
		if !ok {
			logger.Debug("Skipping argument with unrecognized option key.", "arg", arg)
			continue
		}

		values := strings.Split(rawValues, ",")
		if len(values) == 1 && values[0] == "all" {
			logger.Debug("Applying full category aggregate.", "category", category.Key())
			if err := category.ApplyAll(cfg); err != nil {
				return nil, fmt.Errorf("resolving option '%s': %w", arg, err)
			}
			continue
		}

		for _, value := range values {
			if err := category.Apply(value, cfg); err != nil {
				return nil, fmt.Errorf("resolving option '%s': %w", arg, err)
			}
			logger.Debug("Applied option value.", "category", category.Key(), "value", value)
		}
	}

	return cfg, nil
}
