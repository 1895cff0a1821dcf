package options

import (
	"github.com/vk/benchgridgo/internal/analysers"
	"github.com/vk/benchgridgo/internal/columns"
	"github.com/vk/benchgridgo/internal/exporters"
	"github.com/vk/benchgridgo/internal/jobs"
	"github.com/vk/benchgridgo/internal/validators"
)

// builtinCategories returns the compiled-in category set in registration
// order. The order is user-facing: the option listing renders it as is.
func builtinCategories() []Category {
	return []Category{
		newStaticCategory("jobs", "Job", []entry{
			{"default", []any{jobs.Default}},
			{"dry", []any{jobs.Dry}},
			{"short", []any{jobs.Short}},
			{"medium", []any{jobs.Medium}},
			{"long", []any{jobs.Long}},
			{"allsizes", []any{jobs.Short, jobs.Medium, jobs.Long}},
		}),
		newStaticCategory("columns", "Column", []entry{
			{"mean", []any{columns.Mean}},
			{"stderr", []any{columns.StdErr}},
			{"stddev", []any{columns.StdDev}},
			{"min", []any{columns.Min}},
			{"q1", []any{columns.Q1}},
			{"median", []any{columns.Median}},
			{"q3", []any{columns.Q3}},
			{"max", []any{columns.Max}},
			{"p90", []any{columns.P90}},
			{"p95", []any{columns.P95}},
			{"ops", []any{columns.OpsPerSecond}},
			// allquartiles overlaps the individual quartile names, so the
			// category aggregate carries those columns twice.
			{"allquartiles", []any{columns.Q1, columns.Median, columns.Q3}},
		}),
		newStaticCategory("exporters", "Exporter", []entry{
			{"csv", []any{exporters.CSV}},
			{"json", []any{exporters.JSON}},
			{"markdown", []any{exporters.Markdown}},
			{"html", []any{exporters.HTML}},
			{"plain", []any{exporters.Plain}},
		}),
		&diagnoserCategory{},
		newStaticCategory("analysers", "Analyser", []entry{
			{"outliers", []any{analysers.Outliers}},
			{"multimodal", []any{analysers.Multimodal}},
			{"zeromeasurement", []any{analysers.ZeroMeasurement}},
		}),
		newStaticCategory("validators", "Validator", []entry{
			{"baseline", []any{validators.Baseline}},
			{"duplicates", []any{validators.Duplicates}},
			{"runmode", []any{validators.RunMode}},
		}),
		&unsupportedCategory{key: "loggers", kind: "Logger"},
	}
}
