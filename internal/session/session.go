// Package session loads optional defaults files. A defaults file supplies
// the same category/value selections as the command line plus display
// settings; the application resolves file selections before CLI arguments,
// so explicit flags accumulate after (never instead of) the defaults.
//
// Two formats are supported through the Loader seam: HCL and huJSON (JSON
// with comments and trailing commas). A directory merges every matching
// file it contains.
package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/benchgridgo/internal/ctxlog"
	"github.com/vk/benchgridgo/internal/fsutil"
)

const (
	extHCL    = ".hcl"
	extJSON   = ".json"
	extHuJSON = ".hujson"
)

// Loader is the interface for a format-specific defaults loader.
type Loader interface {
	// Extensions lists the file suffixes the loader accepts.
	Extensions() []string

	// Load reads one defaults file into the format-agnostic model.
	Load(ctx context.Context, path string) (*Defaults, error)
}

// loaders holds the built-in format loaders in dispatch order.
var loaders = []Loader{
	&HCLLoader{},
	&HuJSONLoader{},
}

// Load reads session defaults from path. A file dispatches on its
// extension; a directory merges every matching file in lexicographic path
// order, with later files overriding earlier explicit settings. The merged
// defaults are validated before they are returned.
func Load(ctx context.Context, path string) (*Defaults, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("inspecting session path: %w", err)
	}

	var defaults *Defaults
	if info.IsDir() {
		defaults, err = loadDir(ctx, path)
	} else {
		defaults, err = loadFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	if err := defaults.validate(); err != nil {
		return nil, fmt.Errorf("invalid session defaults in %s: %w", path, err)
	}

	logger.Debug("Session defaults loaded.", "path", path, "selections", len(defaults.Options))
	return defaults, nil
}

func loadFile(ctx context.Context, path string) (*Defaults, error) {
	loader, ok := loaderFor(path)
	if !ok {
		return nil, fmt.Errorf("unsupported session file format: %s", path)
	}
	defaults, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading session file %s: %w", path, err)
	}
	return defaults, nil
}

func loadDir(ctx context.Context, dir string) (*Defaults, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(dir, extHCL, extJSON, extHuJSON)
	if err != nil {
		return nil, fmt.Errorf("finding session files in %s: %w", dir, err)
	}

	merged := &Defaults{}
	if len(files) == 0 {
		logger.Warn("No session files found in directory, using empty defaults.", "path", dir)
		return merged, nil
	}

	for _, file := range files {
		defaults, err := loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		merged.merge(defaults)
	}
	return merged, nil
}

func loaderFor(path string) (Loader, bool) {
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			if strings.HasSuffix(path, ext) {
				return l, true
			}
		}
	}
	return nil, false
}
