// Package runcfg holds the run configuration assembled by option
// resolution: the ordered, typed groups of items a run was asked to use.
package runcfg

import (
	"fmt"

	"github.com/vk/benchgridgo/internal/analysers"
	"github.com/vk/benchgridgo/internal/columns"
	"github.com/vk/benchgridgo/internal/diagnostics"
	"github.com/vk/benchgridgo/internal/exporters"
	"github.com/vk/benchgridgo/internal/jobs"
	"github.com/vk/benchgridgo/internal/logging"
	"github.com/vk/benchgridgo/internal/validators"
)

// Config accumulates selected option items by capability. The zero value is
// ready to use. Within each group the order of addition is preserved and
// duplicates are kept; collapsing repeats is a consumer concern.
type Config struct {
	jobs       []*jobs.Job
	columns    []*columns.Column
	exporters  []*exporters.Exporter
	analysers  []*analysers.Analyser
	validators []*validators.Validator
	diagnosers []diagnostics.Diagnoser
	loggers    []logging.Logger
}

// New returns an empty configuration.
func New() *Config {
	return &Config{}
}

// Add dispatches each item into the group matching its capability. An item
// of a type no group accepts is a programmer error in a registry table, so
// it panics.
func (c *Config) Add(items ...any) {
	for _, item := range items {
		switch it := item.(type) {
		case *jobs.Job:
			c.jobs = append(c.jobs, it)
		case *columns.Column:
			c.columns = append(c.columns, it)
		case *exporters.Exporter:
			c.exporters = append(c.exporters, it)
		case *analysers.Analyser:
			c.analysers = append(c.analysers, it)
		case *validators.Validator:
			c.validators = append(c.validators, it)
		case diagnostics.Diagnoser:
			c.diagnosers = append(c.diagnosers, it)
		case logging.Logger:
			c.loggers = append(c.loggers, it)
		default:
			panic(fmt.Sprintf("configuration does not accept items of type %T", item))
		}
	}
}

// Jobs returns the selected measurement plans in selection order. Callers
// must not mutate the returned slice.
func (c *Config) Jobs() []*jobs.Job { return c.jobs }

// Columns returns the selected summary columns in selection order.
func (c *Config) Columns() []*columns.Column { return c.columns }

// Exporters returns the selected report formats in selection order.
func (c *Config) Exporters() []*exporters.Exporter { return c.exporters }

// Analysers returns the selected analysers in selection order.
func (c *Config) Analysers() []*analysers.Analyser { return c.analysers }

// Validators returns the selected validators in selection order.
func (c *Config) Validators() []*validators.Validator { return c.validators }

// Diagnosers returns the selected diagnosers in selection order.
func (c *Config) Diagnosers() []diagnostics.Diagnoser { return c.diagnosers }

// Loggers returns the attached output sinks in selection order.
func (c *Config) Loggers() []logging.Logger { return c.loggers }
